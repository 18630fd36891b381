package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/domain"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/repository"
	"github.com/shopspring/decimal"
)

// Бизнес-логика отчётов: история цен за период плюс статистика по ней.

type Service interface {
	// ListCoins — список всех отслеживаемых монет
	ListCoins(ctx context.Context) ([]domain.Asset, error)
	// BuildReport — отчёт по символу за необязательный период.
	// from и to — сырые строки запроса; пустая строка значит "без границы".
	BuildReport(ctx context.Context, symbol, from, to string) (domain.Report, error)
}

type AssetReader interface {
	List(ctx context.Context) ([]domain.Asset, error)
	GetBySymbol(ctx context.Context, symbol string) (*domain.Asset, error)
}

type PriceReader interface {
	ListRange(ctx context.Context, assetID int64, from, to *time.Time) ([]domain.PricePoint, error)
}

type service struct {
	assetRepo AssetReader
	priceRepo PriceReader
	logger    *slog.Logger
}

func NewService(assetRepo AssetReader, priceRepo PriceReader, logger *slog.Logger) Service {
	return &service{
		assetRepo: assetRepo,
		priceRepo: priceRepo,
		logger:    logger,
	}
}

func (s *service) ListCoins(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list assets", "err", err)
		return nil, err
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, nil
}

func (s *service) BuildReport(ctx context.Context, symbol, from, to string) (domain.Report, error) {
	// Символ матчится как есть: нормализация — забота вызывающей стороны
	asset, err := s.assetRepo.GetBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("asset not found", "symbol", symbol)
			return domain.Report{}, fmt.Errorf("%w: %q", ErrAssetNotFound, symbol)
		}
		s.logger.Error("failed to get asset by symbol", "symbol", symbol, "err", err)
		return domain.Report{}, err
	}

	fromTime, err := parseBound(from)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%w: from=%q", ErrInvalidPeriod, from)
	}
	toTime, err := parseBound(to)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%w: to=%q", ErrInvalidPeriod, to)
	}

	points, err := s.priceRepo.ListRange(ctx, asset.ID, fromTime, toTime)
	if err != nil {
		s.logger.Error("failed to list prices", "symbol", symbol, "err", err)
		return domain.Report{}, err
	}

	history := make([]domain.HistoryPoint, 0, len(points))
	for _, p := range points {
		history = append(history, domain.HistoryPoint{Value: p.Value, Date: p.ObservedAt})
	}

	rep := domain.Report{
		Asset:  domain.AssetInfo{Name: asset.Name, Symbol: asset.Symbol},
		Period: domain.Period{From: fromTime, To: toTime},
		// Пустой период — не ошибка: Summary остаётся nil, история пустая
		Summary: nil,
		History: history,
	}
	if len(points) == 0 {
		s.logger.Debug("no prices in period", "symbol", symbol)
		return rep, nil
	}

	rep.Summary = buildSummary(points)
	s.logger.Info("report built",
		"symbol", asset.Symbol,
		"points", len(points),
		"min", rep.Summary.Min.Value.String(),
		"max", rep.Summary.Max.Value.String(),
	)
	return rep, nil
}

// buildSummary — статистика по непустой, упорядоченной по времени выборке
func buildSummary(points []domain.PricePoint) *domain.Summary {
	minP, maxP := points[0], points[0]
	sum := 0.0
	for _, p := range points[1:] {
		// Строгое сравнение: при равных значениях остаётся более ранняя точка
		if p.Value.LessThan(minP.Value) {
			minP = p
		}
		if p.Value.GreaterThan(maxP.Value) {
			maxP = p
		}
	}
	for _, p := range points {
		sum += p.Value.InexactFloat64()
	}

	summary := &domain.Summary{
		Min:     domain.HistoryPoint{Value: minP.Value, Date: minP.ObservedAt},
		Max:     domain.HistoryPoint{Value: maxP.Value, Date: maxP.ObservedAt},
		Average: sum / float64(len(points)),
	}

	// Вариация считается по хронологически первой и последней точкам.
	// Нулевая первая цена оставляет вариацию пустой вместо NaN/Inf
	first, last := points[0], points[len(points)-1]
	if !first.Value.IsZero() {
		pct, _ := last.Value.Sub(first.Value).
			Div(first.Value).
			Mul(decimal.NewFromInt(100)).
			Float64()
		summary.VariationPercent = &pct
	}
	return summary
}

// parseBound — разбор необязательной границы периода.
// Принимаем RFC3339 или дату без времени (2006-01-02), обе в UTC.
func parseBound(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, fmt.Errorf("unsupported date format: %q", raw)
}

package report_test

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/domain"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/repository"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/service/report"
	reportmocks "github.com/NastyaGoryachaya/crypto-price-history/internal/service/report/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

var btc = &domain.Asset{ID: 1, Symbol: "btc", Name: "Bitcoin"}

func newSvc(t *testing.T) (*gomock.Controller, *reportmocks.MockAssetReader, *reportmocks.MockPriceReader, report.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	assetRepo := reportmocks.NewMockAssetReader(ctrl)
	priceRepo := reportmocks.NewMockPriceReader(ctrl)
	return ctrl, assetRepo, priceRepo, report.NewService(assetRepo, priceRepo, slog.Default())
}

func point(val int64, day int) domain.PricePoint {
	return domain.PricePoint{
		ID:         int64(day),
		AssetID:    1,
		Value:      decimal.NewFromInt(val),
		ObservedAt: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
	}
}

// EmptyHistory: точек в периоде нет — summary == nil, history пустая (не nil),
// границы периода — разобранные даты
func TestBuildReport_EmptyHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl, assetRepo, priceRepo, svc := newSvc(t)
	defer ctrl.Finish()

	assetRepo.EXPECT().GetBySymbol(gomock.Any(), "btc").Return(btc, nil).Times(1)
	priceRepo.EXPECT().ListRange(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	rep, err := svc.BuildReport(ctx, "btc", "2024-01-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Summary != nil {
		t.Errorf("summary must be nil for empty history, got %+v", rep.Summary)
	}
	if rep.History == nil || len(rep.History) != 0 {
		t.Errorf("history must be empty non-nil slice, got %v", rep.History)
	}
	if rep.Asset.Symbol != "btc" || rep.Asset.Name != "Bitcoin" {
		t.Errorf("asset mismatch: %+v", rep.Asset)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if rep.Period.From == nil || !rep.Period.From.Equal(want) {
		t.Errorf("period.from must be parsed date, got %v", rep.Period.From)
	}
	if rep.Period.To != nil {
		t.Errorf("period.to must be nil when not passed, got %v", rep.Period.To)
	}
}

// Fixture: цены [100, 150, 120] за три дня
func TestBuildReport_Statistics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl, assetRepo, priceRepo, svc := newSvc(t)
	defer ctrl.Finish()

	points := []domain.PricePoint{point(100, 1), point(150, 2), point(120, 3)}

	assetRepo.EXPECT().GetBySymbol(gomock.Any(), "btc").Return(btc, nil).Times(1)
	priceRepo.EXPECT().ListRange(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(points, nil).Times(1)

	rep, err := svc.BuildReport(ctx, "btc", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Summary == nil {
		t.Fatal("summary must not be nil")
	}

	if !rep.Summary.Min.Value.Equal(decimal.NewFromInt(100)) {
		t.Errorf("min mismatch: %s", rep.Summary.Min.Value)
	}
	if !rep.Summary.Max.Value.Equal(decimal.NewFromInt(150)) {
		t.Errorf("max mismatch: %s", rep.Summary.Max.Value)
	}
	if math.Abs(rep.Summary.Average-123.33) > 0.01 {
		t.Errorf("average mismatch: %v", rep.Summary.Average)
	}
	// Вариация по первой и последней точкам: (120-100)/100*100 = 20,
	// а не по экстремумам
	if rep.Summary.VariationPercent == nil {
		t.Fatal("variation must not be nil")
	}
	if math.Abs(*rep.Summary.VariationPercent-20.0) > 0.01 {
		t.Errorf("variation mismatch: %v", *rep.Summary.VariationPercent)
	}
	if len(rep.History) != 3 {
		t.Errorf("history length mismatch: %d", len(rep.History))
	}
	// История в хронологическом порядке
	for i := 1; i < len(rep.History); i++ {
		if rep.History[i].Date.Before(rep.History[i-1].Date) {
			t.Errorf("history out of order at %d", i)
		}
	}
}

// TieBreak: при равных значениях экстремум — самая ранняя точка
func TestBuildReport_MinMaxTieBreak(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl, assetRepo, priceRepo, svc := newSvc(t)
	defer ctrl.Finish()

	points := []domain.PricePoint{point(100, 1), point(150, 2), point(100, 3), point(150, 4)}

	assetRepo.EXPECT().GetBySymbol(gomock.Any(), "btc").Return(btc, nil).Times(1)
	priceRepo.EXPECT().ListRange(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(points, nil).Times(1)

	rep, err := svc.BuildReport(ctx, "btc", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMinAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	wantMaxAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !rep.Summary.Min.Date.Equal(wantMinAt) {
		t.Errorf("min must keep earliest occurrence, got %v", rep.Summary.Min.Date)
	}
	if !rep.Summary.Max.Date.Equal(wantMaxAt) {
		t.Errorf("max must keep earliest occurrence, got %v", rep.Summary.Max.Date)
	}
}

// ZeroFirstValue: первая цена в периоде нулевая — вариации нет вместо NaN/Inf
func TestBuildReport_ZeroFirstValueVariation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl, assetRepo, priceRepo, svc := newSvc(t)
	defer ctrl.Finish()

	points := []domain.PricePoint{point(0, 1), point(10, 2)}

	assetRepo.EXPECT().GetBySymbol(gomock.Any(), "btc").Return(btc, nil).Times(1)
	priceRepo.EXPECT().ListRange(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(points, nil).Times(1)

	rep, err := svc.BuildReport(ctx, "btc", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Summary == nil {
		t.Fatal("summary must not be nil")
	}
	if rep.Summary.VariationPercent != nil {
		t.Errorf("variation must be nil when first value is zero, got %v", *rep.Summary.VariationPercent)
	}
}

// UnknownSymbol: единственная жёсткая ошибка отчёта, символ в сообщении
func TestBuildReport_UnknownSymbol(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl, assetRepo, priceRepo, svc := newSvc(t)
	defer ctrl.Finish()

	assetRepo.EXPECT().GetBySymbol(gomock.Any(), "doge").Return(nil, repository.ErrNotFound).Times(1)
	priceRepo.EXPECT().ListRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.BuildReport(ctx, "doge", "", "")
	if !errors.Is(err, report.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "doge") {
		t.Errorf("error must name the symbol: %v", err)
	}
}

// Bounds: строки границ разбираются и доходят до репозитория как даты
func TestBuildReport_PassesParsedBounds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl, assetRepo, priceRepo, svc := newSvc(t)
	defer ctrl.Finish()

	assetRepo.EXPECT().GetBySymbol(gomock.Any(), "btc").Return(btc, nil).Times(1)

	wantFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 2, 1, 15, 4, 5, 0, time.UTC)
	priceRepo.EXPECT().
		ListRange(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, from, to *time.Time) ([]domain.PricePoint, error) {
			if from == nil || !from.Equal(wantFrom) {
				t.Errorf("from mismatch: %v", from)
			}
			if to == nil || !to.Equal(wantTo) {
				t.Errorf("to mismatch: %v", to)
			}
			return nil, nil
		}).
		Times(1)

	if _, err := svc.BuildReport(ctx, "btc", "2024-01-01", "2024-02-01T15:04:05Z"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// InvalidPeriod: мусор вместо даты — ошибка разбора, в репозиторий не ходим
func TestBuildReport_InvalidPeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl, assetRepo, priceRepo, svc := newSvc(t)
	defer ctrl.Finish()

	assetRepo.EXPECT().GetBySymbol(gomock.Any(), "btc").Return(btc, nil).Times(1)
	priceRepo.EXPECT().ListRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.BuildReport(ctx, "btc", "not-a-date", "")
	if !errors.Is(err, report.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

// ListCoins: репозиторий вернул nil — отдаём пустой срез, не nil
func TestListCoins_EmptyIsNotNil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl, assetRepo, _, svc := newSvc(t)
	defer ctrl.Finish()

	assetRepo.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

	items, err := svc.ListCoins(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty slice, got %v", items)
	}
}

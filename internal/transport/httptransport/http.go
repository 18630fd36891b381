package httptransport

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/domain"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/ports/errcode"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Percent — число с плавающей точкой, представляющее процентное изменение.
// Кастомный JSON-маршалер выводит число с 3 знаками после запятой.
type Percent float64

func (p Percent) MarshalJSON() ([]byte, error) {
	v := float64(p)
	return []byte(strconv.FormatFloat(v, 'f', 3, 64)), nil
}

// ReportService — абстракция для построения отчётов.
type ReportService interface {
	ListCoins(ctx context.Context) ([]domain.Asset, error)
	BuildReport(ctx context.Context, symbol, from, to string) (domain.Report, error)
}

// Coin — DTO для списка отслеживаемых монет.
type Coin struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// HistoryPoint — DTO одной точки истории.
type HistoryPoint struct {
	Value decimal.Decimal `json:"value"`
	Date  time.Time       `json:"date"`
}

// Summary — DTO статистики за период; отсутствует, когда история пуста.
type Summary struct {
	Min              HistoryPoint `json:"min"`
	Max              HistoryPoint `json:"max"`
	Average          float64      `json:"average"`
	VariationPercent *Percent     `json:"variation_percent"`
}

// Period — DTO границ периода; null для незаданной границы.
type Period struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// Report — DTO ответа API с отчётом по монете.
type Report struct {
	Asset   Coin           `json:"asset"`
	Period  Period         `json:"period"`
	Summary *Summary       `json:"summary"`
	History []HistoryPoint `json:"history"`
}

func makeReport(item domain.Report) Report {
	r := Report{
		Asset:   Coin{Symbol: item.Asset.Symbol, Name: item.Asset.Name},
		Period:  Period{From: item.Period.From, To: item.Period.To},
		History: make([]HistoryPoint, 0, len(item.History)),
	}
	for _, h := range item.History {
		r.History = append(r.History, HistoryPoint{Value: h.Value, Date: h.Date})
	}
	if item.Summary != nil {
		s := &Summary{
			Min:     HistoryPoint{Value: item.Summary.Min.Value, Date: item.Summary.Min.Date},
			Max:     HistoryPoint{Value: item.Summary.Max.Value, Date: item.Summary.Max.Date},
			Average: item.Summary.Average,
		}
		if item.Summary.VariationPercent != nil {
			p := Percent(*item.Summary.VariationPercent)
			s.VariationPercent = &p
		}
		r.Summary = s
	}
	return r
}

// PricesHandler — HTTP‑handler для истории цен.
type PricesHandler struct {
	logger  *slog.Logger
	svc     ReportService
	timeout time.Duration
}

func NewPricesHandler(logger *slog.Logger, svc ReportService, timeout time.Duration) *PricesHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &PricesHandler{
		logger:  logger,
		svc:     svc,
		timeout: timeout,
	}
}

func (h *PricesHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	// Регистрируем маршруты
	r.GET("/prices/coins", h.ListCoins)
	r.GET("/prices/:symbol", h.GetReport)
}

func (h *PricesHandler) ListCoins(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.svc.ListCoins(ctx)
	if err != nil {
		h.logger.Error("ListCoins failed",
			slog.String("op", "ListCoins"),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal_server_error",
		})
	}

	out := make([]Coin, 0, len(items))
	for _, item := range items {
		out = append(out, Coin{Symbol: item.Symbol, Name: item.Name})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PricesHandler) GetReport(c echo.Context) error {
	// Символ передаём как есть: сервис матчит его регистрозависимо
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "symbol_required",
		})
	}

	from := c.QueryParam("from")
	to := c.QueryParam("to")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.svc.BuildReport(ctx, symbol, from, to)
	if err != nil {
		code := FromServiceError(err)
		switch code {
		case errcode.NotFoundAsset:
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":  "asset_not_found",
				"symbol": symbol,
			})
		case errcode.InvalidPeriod:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":  "invalid_period",
				"symbol": symbol,
			})
		default:
			h.logger.Error("BuildReport failed",
				slog.String("op", "GetReport"),
				slog.String("symbol", symbol),
				slog.String("error", err.Error()),
			)
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "internal_server_error",
			})
		}
	}

	return c.JSON(http.StatusOK, makeReport(item))
}

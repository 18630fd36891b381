package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Отчёт строится на лету и нигде не хранится.

// AssetInfo — монета в составе отчёта
type AssetInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Period — границы выборки; nil означает, что граница не была задана
type Period struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// HistoryPoint — элемент истории цен внутри отчёта
type HistoryPoint struct {
	Value decimal.Decimal `json:"value"`
	Date  time.Time       `json:"date"`
}

// Summary — статистика по выборке.
// VariationPercent == nil, если первая цена в периоде равна нулю
// (деление на ноль вместо NaN/Inf отдаём как отсутствие значения).
type Summary struct {
	Min              HistoryPoint `json:"min"`
	Max              HistoryPoint `json:"max"`
	Average          float64      `json:"average"`
	VariationPercent *float64     `json:"variation_percent"`
}

// Report — итог запроса истории: монета, период, статистика и сама история.
// Summary == nil ровно тогда, когда в периоде нет ни одной точки.
type Report struct {
	Asset   AssetInfo      `json:"asset"`
	Period  Period         `json:"period"`
	Summary *Summary       `json:"summary"`
	History []HistoryPoint `json:"history"`
}

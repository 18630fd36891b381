package adapter

import (
	"context"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/bot"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/service/report"
)

// serviceReportsReader — адаптер, который превращает сервис отчётов в интерфейс бота ReportsReader.

type serviceReportsReader struct{ svc report.Service }

// NewReportsReader — конструктор адаптера над сервисом отчётов.
func NewReportsReader(svc report.Service) bot.ReportsReader {
	return serviceReportsReader{svc: svc}
}

// ListCoins — возвращает список отслеживаемых монет в формате DTO бота.
func (a serviceReportsReader) ListCoins(ctx context.Context) ([]bot.CoinDTO, error) {
	items, err := a.svc.ListCoins(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]bot.CoinDTO, 0, len(items))
	for _, it := range items {
		out = append(out, bot.CoinDTO{Symbol: it.Symbol, Name: it.Name})
	}
	return out, nil
}

// Report — строит отчёт по символу и преобразует его в DTO бота.
func (a serviceReportsReader) Report(ctx context.Context, symbol, from, to string) (bot.ReportDTO, error) {
	rep, err := a.svc.BuildReport(ctx, symbol, from, to)
	if err != nil {
		return bot.ReportDTO{}, err
	}

	out := bot.ReportDTO{
		Symbol: rep.Asset.Symbol,
		Name:   rep.Asset.Name,
		Points: len(rep.History),
	}
	if rep.Summary != nil {
		out.Min = rep.Summary.Min.Value
		out.MinAt = rep.Summary.Min.Date
		out.Max = rep.Summary.Max.Value
		out.MaxAt = rep.Summary.Max.Date
		out.Average = rep.Summary.Average
		out.Variation = rep.Summary.VariationPercent
	}
	return out, nil
}

package bot

import (
	"fmt"
	"strings"
)

// formatCoinLine — короткая строка для списка монет
func formatCoinLine(c CoinDTO) string {
	return fmt.Sprintf("%s — %s", strings.ToUpper(c.Symbol), c.Name)
}

// formatReportDetails — подробное сообщение для команды /report {symbol}
func formatReportDetails(r ReportDTO) string {
	if r.Points == 0 {
		return fmt.Sprintf("[%s] %s\nЗа выбранный период наблюдений нет", strings.ToUpper(r.Symbol), r.Name)
	}

	variation := "н/д"
	if r.Variation != nil {
		variation = fmt.Sprintf("%+.2f%%", *r.Variation)
	}
	return fmt.Sprintf(
		"[%s] %s\nТочек в периоде: %d\nМинимум: %s\nМаксимум: %s\nСредняя: %.2f\nИзменение: %s",
		strings.ToUpper(r.Symbol),
		r.Name,
		r.Points,
		r.Min.String(),
		r.Max.String(),
		r.Average,
		variation,
	)
}

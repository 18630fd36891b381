package bot

import (
	"context"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/ports/errcode"
	"gopkg.in/telebot.v4"
)

// handleStart — отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send("Привет! Доступные команды:\n" +
		"/coins - список отслеживаемых монет\n" +
		"/report {symbol} - отчёт по монете за всё время\n" +
		"/report {symbol} {from} {to} - отчёт за период (даты в формате 2006-01-02)")
}

// handleCoins — выводит список отслеживаемых монет
func (b *Bot) handleCoins(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	list, err := b.reports.ListCoins(ctx)
	if err != nil {
		return c.Send(translateBotError(errcode.Internal))
	}
	if len(list) == 0 {
		return c.Send("Монеты ещё не появились — сборщик пока ничего не сохранил")
	}

	var bld strings.Builder
	for _, coin := range list {
		bld.WriteString(formatCoinLine(coin))
		bld.WriteByte('\n')
	}
	return c.Send(bld.String())
}

// handleReport — выводит отчёт по монете: /report btc [from] [to]
func (b *Bot) handleReport(c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Укажи символ монеты: /report btc")
	}

	symbol := args[0]
	var from, to string
	if len(args) > 1 {
		from = args[1]
	}
	if len(args) > 2 {
		to = args[2]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	item, err := b.reports.Report(ctx, symbol, from, to)
	if err != nil {
		return c.Send(translateBotError(fromReaderError(err)))
	}
	return c.Send(formatReportDetails(item))
}

package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/telebot.v4"
)

// Config — конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
}

// CoinDTO — монета из списка отслеживания
type CoinDTO struct {
	Symbol string
	Name   string
}

// ReportDTO — данные отчёта для сообщений бота
type ReportDTO struct {
	Symbol    string
	Name      string
	Points    int
	Min       decimal.Decimal
	MinAt     time.Time
	Max       decimal.Decimal
	MaxAt     time.Time
	Average   float64
	Variation *float64
}

// ReportsReader — интерфейс для чтения отчётов по ценам
type ReportsReader interface {
	ListCoins(ctx context.Context) ([]CoinDTO, error)
	Report(ctx context.Context, symbol, from, to string) (ReportDTO, error)
}

// Bot — основной тип приложения
type Bot struct {
	bot     *telebot.Bot
	reports ReportsReader
	logger  *slog.Logger
}

// New создаёт новый экземпляр приложения
func New(cfg Config, reports ReportsReader, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:     b,
		reports: reports,
		logger:  logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/coins", bot.handleCoins)
	b.Handle("/report", bot.handleReport)
	return bot, nil
}

// Start запускает бота
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}

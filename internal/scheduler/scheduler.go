package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Collector — задача, которую планировщик дёргает раз в интервал.
// Collect сам содержит все свои ошибки, поэтому возврата нет.
type Collector interface {
	Collect(ctx context.Context)
}

type Scheduler struct {
	collector Collector
	interval  time.Duration
	logger    *slog.Logger
}

// NewScheduler — конструктор планировщика фонового сбора цен
func NewScheduler(collector Collector, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		collector: collector,
		interval:  interval,
		logger:    logger,
	}
}

// Start — запускает периодическое выполнение задачи до остановки контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started")
	s.logger.Debug("scheduler interval configured", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// первый запуск сразу
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// runOnce — одна итерация: собрать цены и сохранить их в БД
func (s *Scheduler) runOnce(ctx context.Context) {
	s.logger.Debug("tick: running collect cycle")
	s.collector.Collect(ctx)
	s.logger.Debug("tick: completed")
}

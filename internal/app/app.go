package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	botpkg "github.com/NastyaGoryachaya/crypto-price-history/internal/bot"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/bot/adapter"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/config"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/consts"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/infra/cache"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/infra/coingecko"
	repopg "github.com/NastyaGoryachaya/crypto-price-history/internal/repository/postgres"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/scheduler"
	collectorsvc "github.com/NastyaGoryachaya/crypto-price-history/internal/service/collector"
	reportsvc "github.com/NastyaGoryachaya/crypto-price-history/internal/service/report"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/transport/httptransport"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	db    *pgxpool.Pool
	redis *cache.LatestPriceCache
	e     *echo.Echo
	serv  *http.Server

	assetRepo *repopg.AssetRepo
	priceRepo *repopg.PriceRepo

	reports   reportsvc.Service
	collector collectorsvc.Service

	updater *scheduler.Scheduler

	bot *botpkg.Bot
}

func NewApp(cfg config.Config, log *slog.Logger, db *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: db}

	app.assetRepo = repopg.NewAssetRepository(db)
	app.priceRepo = repopg.NewPriceRepository(db)

	e := echo.New()
	app.e = e

	feed := coingecko.NewClient(cfg.CoinGecko)

	tracked := cfg.CoinGecko.Assets
	if len(tracked) == 0 {
		tracked = consts.TrackedAssets
	}

	// Кэш последних цен необязателен: без Redis коллектор ходит в БД
	var latestCache collectorsvc.LatestCache
	if cfg.Redis.Enabled {
		rc, err := cache.NewLatestPriceCache(cfg.Redis)
		if err != nil {
			log.Error("redis init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.redis = rc
		latestCache = rc
	}

	app.reports = reportsvc.NewService(app.assetRepo, app.priceRepo, log)
	app.collector = collectorsvc.NewService(feed, app.assetRepo, app.priceRepo, latestCache, tracked, log)

	ph := httptransport.NewPricesHandler(log, app.reports, cfg.Server.ReadTimeout)
	ph.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Scheduler.Enabled {
		app.updater = scheduler.NewScheduler(app.collector, cfg.Scheduler.Interval, log)
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{Token: token, LongPollTimeout: 10 * time.Second},
			adapter.NewReportsReader(app.reports),
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.bot = botApp
	}
	log.Info("app initialized",
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.Bool("redis_enabled", cfg.Redis.Enabled),
		slog.Int("tracked_assets", len(tracked)),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.updater != nil {
		a.log.Info("starting updater")
		go a.updater.Start(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		go a.bot.Start(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.shutdownTimeout())
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if a.db != nil {
		a.db.Close()
	}

	a.log.Info("application stopped")
	return nil
}

// shutdownTimeout — таймаут graceful shutdown из конфигурации, с запасным значением
func (a *App) shutdownTimeout() time.Duration {
	if a.cfg.Server.ShutdownTimeout > 0 {
		return a.cfg.Server.ShutdownTimeout
	}
	return 5 * time.Second
}

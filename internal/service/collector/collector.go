package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/config"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/domain"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/infra/coingecko"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/repository"
	"github.com/shopspring/decimal"
)

// Сбор цен: один батчевый запрос к фиду, затем независимая запись по каждой монете.

type Service interface {
	// Collect — один цикл сбора. Никогда не возвращает ошибку наружу:
	// сбой фида пропускает цикл целиком, сбой по монете — только эту монету.
	Collect(ctx context.Context)
}

// PriceFeed — внешний фид цен: id фида -> цена
type PriceFeed interface {
	FetchPrices(ctx context.Context, ids []string) (map[string]decimal.Decimal, error)
}

// AssetUpserter — создание или поиск монеты по уникальному символу
type AssetUpserter interface {
	Upsert(ctx context.Context, symbol, name string) (domain.Asset, error)
}

// PriceStore — чтение последней цены и добавление новой
type PriceStore interface {
	Latest(ctx context.Context, assetID int64) (*domain.PricePoint, error)
	Append(ctx context.Context, assetID int64, value decimal.Decimal, observedAt time.Time) error
}

// LatestCache — необязательный кэш последней сохранённой цены по символу
type LatestCache interface {
	Get(ctx context.Context, symbol string) (*decimal.Decimal, error)
	Set(ctx context.Context, symbol string, value decimal.Decimal) error
	Del(ctx context.Context, symbol string) error
}

type service struct {
	feed      PriceFeed
	assetRepo AssetUpserter
	priceRepo PriceStore
	cache     LatestCache // может быть nil
	assets    []config.TrackedAsset
	clock     Clock
	logger    *slog.Logger

	mu sync.Mutex // защита от наложения тиков
}

// NewService — конструктор сервиса сбора цен. cache может быть nil.
func NewService(feed PriceFeed, assetRepo AssetUpserter, priceRepo PriceStore, cache LatestCache, assets []config.TrackedAsset, logger *slog.Logger) Service {
	return &service{
		feed:      feed,
		assetRepo: assetRepo,
		priceRepo: priceRepo,
		cache:     cache,
		assets:    assets,
		clock:     NewRealClock(),
		logger:    logger,
	}
}

// NewServiceWithClock - Конструктор для тестов: позволяет подставить фиксированные "часы".
func NewServiceWithClock(feed PriceFeed, assetRepo AssetUpserter, priceRepo PriceStore, cache LatestCache, assets []config.TrackedAsset, clk Clock, logger *slog.Logger) Service {
	return &service{
		feed:      feed,
		assetRepo: assetRepo,
		priceRepo: priceRepo,
		cache:     cache,
		assets:    assets,
		clock:     clk,
		logger:    logger,
	}
}

func (s *service) Collect(ctx context.Context) {
	// Если предыдущий цикл ещё идёт, этот тик пропускаем
	if !s.mu.TryLock() {
		s.logger.Warn("previous collect run still in progress, skipping tick")
		return
	}
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.assets))
	for _, a := range s.assets {
		ids = append(ids, a.ID)
	}

	prices, err := s.feed.FetchPrices(ctx, ids)
	if err != nil {
		if errors.Is(err, coingecko.ErrRateLimited) {
			// Троттлинг фида: молча пропускаем цикл, ретраем будет следующий тик
			s.logger.Warn("price feed rate limited, skipping run")
			return
		}
		s.logger.Error("fetch prices failed, skipping run", "err", err)
		return
	}

	now := s.clock.Now()
	saved := 0
	for _, tracked := range s.assets {
		// Каждая монета — независимая единица работы:
		// её сбой не должен останавливать остальные
		appended, err := s.collectAsset(ctx, tracked, prices, now)
		if err != nil {
			s.logger.Warn("asset collect failed", "symbol", tracked.Symbol, "err", err)
			continue
		}
		if appended {
			saved++
		}
	}
	s.logger.Info("collect run finished", "assets", len(s.assets), "saved", saved)
}

// collectAsset — upsert монеты, сравнение с последней ценой и условная запись.
// Возвращает true, если добавлена новая точка.
func (s *service) collectAsset(ctx context.Context, tracked config.TrackedAsset, prices map[string]decimal.Decimal, now time.Time) (bool, error) {
	value, ok := prices[tracked.ID]
	if !ok {
		return false, fmt.Errorf("feed response has no price for %q", tracked.ID)
	}

	asset, err := s.assetRepo.Upsert(ctx, tracked.Symbol, tracked.Name)
	if err != nil {
		return false, fmt.Errorf("upsert asset: %w", err)
	}

	// Быстрый путь: кэш может только подтвердить совпадение со свежей ценой.
	// Промах, расхождение или ошибка кэша всегда ведут к чтению из БД —
	// иначе устаревший кэш позволил бы записать дубль последней точки
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, asset.Symbol)
		if err != nil {
			s.logger.Debug("latest price cache get failed", "symbol", asset.Symbol, "err", err)
		} else if cached != nil && cached.Equal(value) {
			s.logger.Debug("price unchanged, skipping write", "symbol", asset.Symbol, "value", value.String())
			return false, nil
		}
	}

	latest, err := s.latestValue(ctx, asset)
	if err != nil {
		return false, fmt.Errorf("read latest price: %w", err)
	}

	// Дедупликация: сравниваем ровно с последней сохранённой точкой.
	// Сравнение точное, десятичное, без epsilon
	if latest != nil && latest.Equal(value) {
		s.logger.Debug("price unchanged, skipping write", "symbol", asset.Symbol, "value", value.String())
		// кэш разошёлся с БД — чиним его попутно
		if s.cache != nil {
			if err := s.cache.Set(ctx, asset.Symbol, value); err != nil {
				s.logger.Debug("latest price cache set failed", "symbol", asset.Symbol, "err", err)
			}
		}
		return false, nil
	}

	// Сбрасываем кэш до записи: если упадём между Append и Set,
	// устаревшее значение в кэше не останется
	if s.cache != nil {
		if err := s.cache.Del(ctx, asset.Symbol); err != nil {
			s.logger.Debug("latest price cache del failed", "symbol", asset.Symbol, "err", err)
		}
	}

	if err := s.priceRepo.Append(ctx, asset.ID, value, now); err != nil {
		return false, fmt.Errorf("append price: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, asset.Symbol, value); err != nil {
			// кэш не источник истины, но неудачную запись нельзя оставлять:
			// стираем ключ, чтобы следующий тик пошёл в БД
			s.logger.Debug("latest price cache set failed", "symbol", asset.Symbol, "err", err)
			_ = s.cache.Del(ctx, asset.Symbol)
		}
	}

	s.logger.Debug("price point appended", "symbol", asset.Symbol, "value", value.String())
	return true, nil
}

// latestValue — последняя сохранённая цена из БД.
// nil без ошибки означает, что наблюдений ещё не было.
func (s *service) latestValue(ctx context.Context, asset domain.Asset) (*decimal.Decimal, error) {
	point, err := s.priceRepo.Latest(ctx, asset.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point.Value, nil
}

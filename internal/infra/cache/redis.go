package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// LatestPriceCache — кэш последней сохранённой цены по тикеру.
// Нужен только как быстрый путь для дедупликации в коллекторе:
// промах или ошибка кэша означают чтение из БД, но не сбой.
type LatestPriceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLatestPriceCache(cfg config.RedisConfig) (*LatestPriceCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &LatestPriceCache{client: client, ttl: cfg.TTL}, nil
}

// Get — последняя известная цена по символу; (nil, nil) при промахе.
func (c *LatestPriceCache) Get(ctx context.Context, symbol string) (*decimal.Decimal, error) {
	raw, err := c.client.Get(ctx, key(symbol)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest price from redis: %w", err)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cached price: %w", err)
	}
	return &v, nil
}

// Set — запомнить последнюю цену по символу.
func (c *LatestPriceCache) Set(ctx context.Context, symbol string, value decimal.Decimal) error {
	if err := c.client.Set(ctx, key(symbol), value.String(), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set latest price in redis: %w", err)
	}
	return nil
}

// Del — стереть запомненную цену по символу; отсутствие ключа — не ошибка.
func (c *LatestPriceCache) Del(ctx context.Context, symbol string) error {
	if err := c.client.Del(ctx, key(symbol)).Err(); err != nil {
		return fmt.Errorf("failed to delete latest price from redis: %w", err)
	}
	return nil
}

func (c *LatestPriceCache) Close() error {
	return c.client.Close()
}

func key(symbol string) string {
	return "latest:" + symbol
}

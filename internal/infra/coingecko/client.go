package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/config"
	"github.com/shopspring/decimal"
)

// ErrRateLimited — фид ответил 429, запрос повторит следующий тик планировщика
var ErrRateLimited = errors.New("coingecko: rate limited")

type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchPrices — один батчевый запрос цен для всех монет из списка.
// Возвращает отображение id фида -> цена в валюте котировки.
// Цены декодируются через json.Number, чтобы не терять точность на float64.
func (c *Client) FetchPrices(ctx context.Context, ids []string) (map[string]decimal.Decimal, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path, _ = url.JoinPath(u.Path, "simple", "price")

	currency := strings.ToLower(c.cfg.Currency)
	q := u.Query()
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", currency)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "crypto-price-history/1.0 (+https://github.com/NastyaGoryachaya/crypto-price-history)"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed: %s", resp.Status)
	}

	// Ответ вида {"bitcoin":{"usd":70123.45},...}
	var data map[string]map[string]json.Number
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	result := make(map[string]decimal.Decimal, len(data))
	for id, quotes := range data {
		raw, ok := quotes[currency]
		if !ok {
			continue // нет котировки в запрошенной валюте
		}
		v, err := decimal.NewFromString(raw.String())
		if err != nil {
			return nil, fmt.Errorf("parsing price for %s: %w", id, err)
		}
		result[id] = v
	}
	return result, nil
}

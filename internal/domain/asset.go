package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset - отслеживаемая криптовалюта
type Asset struct {
	ID     int64  `json:"id"`
	Symbol string `json:"symbol"` // уникальный тикер в нижнем регистре (btc, eth)
	Name   string `json:"name"`   // отображаемое имя (Bitcoin)
}

// PricePoint - одно наблюдение цены. Неизменяемое, только добавление
type PricePoint struct {
	ID         int64           `json:"id"`
	AssetID    int64           `json:"asset_id"`
	Value      decimal.Decimal `json:"value"`       // точное десятичное значение, без float
	ObservedAt time.Time       `json:"observed_at"` // время записи на сервере (UTC)
}

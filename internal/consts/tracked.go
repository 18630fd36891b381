package consts

import "github.com/NastyaGoryachaya/crypto-price-history/internal/config"

// Статический список отслеживаемых монет.
// Используется, когда в конфигурации список не задан.
var TrackedAssets = []config.TrackedAsset{
	{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
	{ID: "solana", Symbol: "sol", Name: "Solana"},
	{ID: "binancecoin", Symbol: "bnb", Name: "BNB"},
}

package postgres

import (
	"context"
	"errors"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/domain"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetRepo struct {
	db *pgxpool.Pool
}

// NewAssetRepository - Создаёт новый репозиторий монет на основе пула соединений.
func NewAssetRepository(db *pgxpool.Pool) *AssetRepo {
	return &AssetRepo{db: db}
}

// Upsert — создать монету или вернуть существующую по уникальному символу.
// Один запрос, поэтому создание и поиск атомарны для конкурентных тиков.
func (r *AssetRepo) Upsert(ctx context.Context, symbol, name string) (domain.Asset, error) {
	const query = `
		INSERT INTO assets (symbol, name)
		VALUES ($1, $2)
		ON CONFLICT (symbol) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, symbol, name
	`
	var a domain.Asset
	err := r.db.QueryRow(ctx, query, symbol, name).Scan(&a.ID, &a.Symbol, &a.Name)
	return a, err
}

// List - Получить список всех монет из таблицы assets
func (r *AssetRepo) List(ctx context.Context) ([]domain.Asset, error) {
	const query = `SELECT id, symbol, name FROM assets ORDER BY symbol;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.Symbol, &a.Name); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return assets, nil
}

// GetBySymbol - Найти монету по символу (регистрозависимо)
func (r *AssetRepo) GetBySymbol(ctx context.Context, symbol string) (*domain.Asset, error) {
	const query = `SELECT id, symbol, name FROM assets WHERE symbol = $1;`
	row := r.db.QueryRow(ctx, query, symbol)

	var a domain.Asset
	if err := row.Scan(&a.ID, &a.Symbol, &a.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

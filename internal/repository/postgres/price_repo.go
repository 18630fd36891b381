package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/domain"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PriceRepo — репозиторий для работы с таблицей цен (prices).
// Цены лежат в NUMERIC и ходят через строку, чтобы не терять точность.
type PriceRepo struct {
	db *pgxpool.Pool
}

// NewPriceRepository - Создаёт новый репозиторий цен на основе пула соединений.
func NewPriceRepository(db *pgxpool.Pool) *PriceRepo {
	return &PriceRepo{db: db}
}

// Append - Добавляет новое наблюдение цены в таблицу prices (только вставка).
func (r *PriceRepo) Append(ctx context.Context, assetID int64, value decimal.Decimal, observedAt time.Time) error {
	const query = `
		INSERT INTO prices (asset_id, value, observed_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, assetID, value.String(), observedAt)
	return err
}

// Latest - Получить последнее наблюдение по монете.
func (r *PriceRepo) Latest(ctx context.Context, assetID int64) (*domain.PricePoint, error) {
	const query = `
		SELECT id, asset_id, value::text, observed_at
		FROM prices
		WHERE asset_id = $1
		ORDER BY observed_at DESC
		LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, assetID)

	p, err := scanPricePoint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListRange - История наблюдений по монете за период, по возрастанию observed_at.
// Каждая граница применяется, только если она задана; границы включительные.
func (r *PriceRepo) ListRange(ctx context.Context, assetID int64, from, to *time.Time) ([]domain.PricePoint, error) {
	const query = `
		SELECT id, asset_id, value::text, observed_at
		FROM prices
		WHERE asset_id = $1
		  AND ($2::timestamptz IS NULL OR observed_at >= $2)
		  AND ($3::timestamptz IS NULL OR observed_at <= $3)
		ORDER BY observed_at
	`
	rows, err := r.db.Query(ctx, query, assetID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PricePoint
	for rows.Next() {
		p, err := scanPricePoint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func scanPricePoint(row pgx.Row) (*domain.PricePoint, error) {
	var (
		p        domain.PricePoint
		valueStr string
	)
	if err := row.Scan(&p.ID, &p.AssetID, &valueStr, &p.ObservedAt); err != nil {
		return nil, err
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return nil, err
	}
	p.Value = value
	return &p, nil
}

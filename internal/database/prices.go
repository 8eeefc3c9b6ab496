package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/popcornshop/dashboard/internal/models"
)

const (
	SelectLatestPopcornPriceQuery = `
		SELECT
			id,
			price_caramel, price_respresso, price_butter, price_cheddar, price_kettle,
			updated_at
		FROM
		    popcorn_prices
		ORDER BY
		    updated_at DESC
		LIMIT 1
	`
	InsertPopcornPriceQuery = `
		INSERT INTO
			popcorn_prices (price_caramel, price_respresso, price_butter, price_cheddar, price_kettle)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, updated_at
	`
	UpdatePopcornPriceQuery = `
		UPDATE
			popcorn_prices
		SET
			price_caramel = $2,
			price_respresso = $3,
			price_butter = $4,
			price_cheddar = $5,
			price_kettle = $6,
			updated_at = now()
		WHERE
		    id = $1
		RETURNING updated_at
	`
)

// PopcornPriceDB is the popcorn_prices table row. The most recently
// updated row is treated as the effective configuration; nothing enforces
// a single row.
type PopcornPriceDB struct {
	ID        int64
	Prices    models.FlavorPrices
	UpdatedAt time.Time
}

// FindLatestPopcornPrice returns the most recently updated price
// configuration, or nil without error when none exists yet.
func (d *Database) FindLatestPopcornPrice(ctx context.Context) (*PopcornPriceDB, error) {
	price := &PopcornPriceDB{}

	err := d.db.QueryRow(ctx, SelectLatestPopcornPriceQuery).Scan(
		&price.ID,
		&price.Prices.Caramel, &price.Prices.Respresso, &price.Prices.Butter,
		&price.Prices.Cheddar, &price.Prices.Kettle,
		&price.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find popcorn prices: %w", err)
	}

	return price, nil
}

// CreatePopcornPrice inserts a new price configuration row.
func (d *Database) CreatePopcornPrice(ctx context.Context, prices models.FlavorPrices) (*PopcornPriceDB, error) {
	price := &PopcornPriceDB{Prices: prices}

	err := d.db.QueryRow(ctx, InsertPopcornPriceQuery,
		prices.Caramel, prices.Respresso, prices.Butter, prices.Cheddar, prices.Kettle,
	).Scan(&price.ID, &price.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create popcorn prices: %w", err)
	}

	return price, nil
}

// UpdatePopcornPrice overwrites the configuration row with the given id.
func (d *Database) UpdatePopcornPrice(ctx context.Context, id int64, prices models.FlavorPrices) (*PopcornPriceDB, error) {
	price := &PopcornPriceDB{ID: id, Prices: prices}

	err := d.db.QueryRow(ctx, UpdatePopcornPriceQuery,
		id, prices.Caramel, prices.Respresso, prices.Butter, prices.Cheddar, prices.Kettle,
	).Scan(&price.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update popcorn prices: %w", err)
	}

	return price, nil
}

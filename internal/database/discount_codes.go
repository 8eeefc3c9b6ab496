package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/popcornshop/dashboard/internal/models"
)

var (
	ErrDuplicateCode = errors.New("discount code already exists")
)

const (
	discountCodeColumns = `
		id, code, price,
		price_caramel, price_respresso, price_butter, price_cheddar, price_kettle,
		description, is_active, created_at, updated_at
	`
	InsertDiscountCodeQuery = `
		INSERT INTO
			discount_codes (
				id, code, price,
				price_caramel, price_respresso, price_butter, price_cheddar, price_kettle,
				description, is_active
			)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	SelectDiscountCodeQuery = `
		SELECT ` + discountCodeColumns + `
		FROM
		    discount_codes
		WHERE
		    id = $1
	`
	SelectDiscountCodeByCodeQuery = `
		SELECT ` + discountCodeColumns + `
		FROM
		    discount_codes
		WHERE
		    code = $1
	`
	SelectAllDiscountCodesQuery = `
		SELECT ` + discountCodeColumns + `
		FROM
		    discount_codes
		ORDER BY
		    created_at DESC
	`
	UpdateDiscountCodeQuery = `
		UPDATE
			discount_codes
		SET
			code = $2,
			price = $3,
			price_caramel = $4,
			price_respresso = $5,
			price_butter = $6,
			price_cheddar = $7,
			price_kettle = $8,
			description = $9,
			is_active = $10,
			updated_at = now()
		WHERE
		    id = $1
	`
	DeleteDiscountCodeQuery = `
		DELETE FROM discount_codes WHERE id = $1
	`
)

// DiscountCodeDB is the discount_codes table row.
type DiscountCodeDB struct {
	ID          string
	Code        string
	Price       float64
	Prices      models.FlavorPrices
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func scanDiscountCode(row pgx.Row) (*DiscountCodeDB, error) {
	code := &DiscountCodeDB{}

	err := row.Scan(
		&code.ID, &code.Code, &code.Price,
		&code.Prices.Caramel, &code.Prices.Respresso, &code.Prices.Butter,
		&code.Prices.Cheddar, &code.Prices.Kettle,
		&code.Description, &code.IsActive, &code.CreatedAt, &code.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return code, nil
}

// CreateDiscountCode inserts a new code. A unique violation on the code
// string is reported as ErrDuplicateCode.
func (d *Database) CreateDiscountCode(ctx context.Context, code DiscountCodeDB) error {
	_, err := d.db.Exec(ctx, InsertDiscountCodeQuery,
		code.ID, code.Code, code.Price,
		code.Prices.Caramel, code.Prices.Respresso, code.Prices.Butter,
		code.Prices.Cheddar, code.Prices.Kettle,
		code.Description, code.IsActive,
	)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateCode
		}
		return fmt.Errorf("failed to create discount code: %w", err)
	}

	return nil
}

// FindDiscountCode looks a code up by id. Returns nil without error when
// it doesn't exist.
func (d *Database) FindDiscountCode(ctx context.Context, id string) (*DiscountCodeDB, error) {
	code, err := scanDiscountCode(d.db.QueryRow(ctx, SelectDiscountCodeQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find discount code: %w", err)
	}

	return code, nil
}

// FindDiscountCodeByCode looks a code up by its code string.
func (d *Database) FindDiscountCodeByCode(ctx context.Context, codeStr string) (*DiscountCodeDB, error) {
	code, err := scanDiscountCode(d.db.QueryRow(ctx, SelectDiscountCodeByCodeQuery, codeStr))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find discount code by code: %w", err)
	}

	return code, nil
}

// FindAllDiscountCodes returns every code, newest first.
func (d *Database) FindAllDiscountCodes(ctx context.Context) ([]DiscountCodeDB, error) {
	var result []DiscountCodeDB

	rows, err := d.db.Query(ctx, SelectAllDiscountCodesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to find discount codes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item := DiscountCodeDB{}
		if err := rows.Scan(
			&item.ID, &item.Code, &item.Price,
			&item.Prices.Caramel, &item.Prices.Respresso, &item.Prices.Butter,
			&item.Prices.Cheddar, &item.Prices.Kettle,
			&item.Description, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to process discount code row: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate discount code rows: %w", err)
	}

	return result, nil
}

// UpdateDiscountCode overwrites the mutable fields of the code with the
// given id and bumps updated_at.
func (d *Database) UpdateDiscountCode(ctx context.Context, code DiscountCodeDB) error {
	_, err := d.db.Exec(ctx, UpdateDiscountCodeQuery,
		code.ID, code.Code, code.Price,
		code.Prices.Caramel, code.Prices.Respresso, code.Prices.Butter,
		code.Prices.Cheddar, code.Prices.Kettle,
		code.Description, code.IsActive,
	)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateCode
		}
		return fmt.Errorf("failed to update discount code: %w", err)
	}
	return nil
}

// DeleteDiscountCode removes the code with the given id. Reports whether
// a row was actually deleted.
func (d *Database) DeleteDiscountCode(ctx context.Context, id string) (bool, error) {
	tag, err := d.db.Exec(ctx, DeleteDiscountCodeQuery, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete discount code: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

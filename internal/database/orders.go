package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/popcornshop/dashboard/internal/models"
)

var (
	ErrDuplicateOrder = errors.New("order already exists")
)

const (
	InsertOrderQuery = `
		INSERT INTO
			orders (
				uuid, email, first_name, last_name, name, phone_number,
				company, discount_code, discount_price, amount_paid, status,
				qty_caramel, qty_respresso, qty_butter, qty_cheddar, qty_kettle,
				submitted_at
			)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	orderColumns = `
		uuid, email, first_name, last_name, name, phone_number,
		company, discount_code, discount_price, amount_paid, status,
		qty_caramel, qty_respresso, qty_butter, qty_cheddar, qty_kettle,
		submitted_at, created_at, updated_at
	`
	SelectOrderQuery = `
		SELECT ` + orderColumns + `
		FROM
		    orders
		WHERE
		    uuid = $1
	`
	SelectOrderByNameQuery = `
		SELECT ` + orderColumns + `
		FROM
		    orders
		WHERE
		    name = $1
		ORDER BY
		    submitted_at DESC
		LIMIT 1
	`
	SelectAllOrdersQuery = `
		SELECT ` + orderColumns + `
		FROM
		    orders
		ORDER BY
		    submitted_at DESC
	`
	UpdateOrderQuery = `
		UPDATE
			orders
		SET
			email = $2,
			first_name = $3,
			last_name = $4,
			name = $5,
			phone_number = $6,
			company = $7,
			discount_code = $8,
			discount_price = $9,
			amount_paid = $10,
			status = $11,
			qty_caramel = $12,
			qty_respresso = $13,
			qty_butter = $14,
			qty_cheddar = $15,
			qty_kettle = $16,
			updated_at = now()
		WHERE
		    uuid = $1
	`
	DeleteAllOrdersQuery = `
		DELETE FROM orders
	`
	CountOrdersQuery = `
		SELECT count(*) FROM orders
	`
)

// OrderDB is the orders table row.
type OrderDB struct {
	UUID          string
	Email         string
	FirstName     string
	LastName      string
	Name          string
	PhoneNumber   string
	Company       string
	DiscountCode  string
	DiscountPrice float64
	AmountPaid    float64
	Status        OrderStatusDB
	Quantities    models.FlavorQuantities
	SubmittedAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderStatusDB adapts models.OrderStatus to the database.
type OrderStatusDB struct {
	models.OrderStatus
}

func (s *OrderStatusDB) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("order status must be a string, not %T", value)
	}

	*s = OrderStatusDB{models.OrderStatus(strVal)}
	return nil
}

func (s OrderStatusDB) Value() (driver.Value, error) {
	return string(s.OrderStatus), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	order := &OrderDB{}

	err := row.Scan(
		&order.UUID, &order.Email, &order.FirstName, &order.LastName,
		&order.Name, &order.PhoneNumber, &order.Company, &order.DiscountCode,
		&order.DiscountPrice, &order.AmountPaid, &order.Status,
		&order.Quantities.Caramel, &order.Quantities.Respresso,
		&order.Quantities.Butter, &order.Quantities.Cheddar,
		&order.Quantities.Kettle,
		&order.SubmittedAt, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CreateOrder inserts a new order. A unique violation on the uuid is
// reported as ErrDuplicateOrder so that a re-ingestion race stays an
// ordinary per-item failure.
func (d *Database) CreateOrder(ctx context.Context, order OrderDB) error {
	_, err := d.db.Exec(ctx, InsertOrderQuery,
		order.UUID, order.Email, order.FirstName, order.LastName,
		order.Name, order.PhoneNumber, order.Company, order.DiscountCode,
		order.DiscountPrice, order.AmountPaid, order.Status,
		order.Quantities.Caramel, order.Quantities.Respresso,
		order.Quantities.Butter, order.Quantities.Cheddar,
		order.Quantities.Kettle,
		order.SubmittedAt,
	)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateOrder
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// FindOrder looks an order up by uuid. Returns nil without error when the
// order doesn't exist.
func (d *Database) FindOrder(ctx context.Context, uuid string) (*OrderDB, error) {
	order, err := scanOrder(d.db.QueryRow(ctx, SelectOrderQuery, uuid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// FindOrderByName looks an order up by its full contact name.
func (d *Database) FindOrderByName(ctx context.Context, name string) (*OrderDB, error) {
	order, err := scanOrder(d.db.QueryRow(ctx, SelectOrderByNameQuery, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order by name: %w", err)
	}

	return order, nil
}

// FindAllOrders returns every order, newest submission first.
func (d *Database) FindAllOrders(ctx context.Context) ([]OrderDB, error) {
	var result []OrderDB

	rows, err := d.db.Query(ctx, SelectAllOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item := OrderDB{}
		if err := rows.Scan(
			&item.UUID, &item.Email, &item.FirstName, &item.LastName,
			&item.Name, &item.PhoneNumber, &item.Company, &item.DiscountCode,
			&item.DiscountPrice, &item.AmountPaid, &item.Status,
			&item.Quantities.Caramel, &item.Quantities.Respresso,
			&item.Quantities.Butter, &item.Quantities.Cheddar,
			&item.Quantities.Kettle,
			&item.SubmittedAt, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to process order row: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order rows: %w", err)
	}

	return result, nil
}

// UpdateOrder overwrites the mutable fields of the order with the given
// uuid and bumps updated_at.
func (d *Database) UpdateOrder(ctx context.Context, order OrderDB) error {
	_, err := d.db.Exec(ctx, UpdateOrderQuery,
		order.UUID, order.Email, order.FirstName, order.LastName,
		order.Name, order.PhoneNumber, order.Company, order.DiscountCode,
		order.DiscountPrice, order.AmountPaid, order.Status,
		order.Quantities.Caramel, order.Quantities.Respresso,
		order.Quantities.Butter, order.Quantities.Cheddar,
		order.Quantities.Kettle,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// DeleteAllOrders removes every order and returns the removed count.
func (d *Database) DeleteAllOrders(ctx context.Context) (int64, error) {
	tag, err := d.db.Exec(ctx, DeleteAllOrdersQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to delete orders: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountOrders returns the total number of stored orders.
func (d *Database) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.QueryRow(ctx, CountOrdersQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

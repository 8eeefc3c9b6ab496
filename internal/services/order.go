package services

import (
	"context"
	"errors"
	"strings"

	"github.com/popcornshop/dashboard/internal/database"
	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/utils"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderStatus    = errors.New("order status is invalid")
	ErrEmptyOrderEmail       = errors.New("order email cannot be empty")
	ErrNegativeOrderAmount   = errors.New("order amounts must be non-negative")
	ErrNegativeOrderQuantity = errors.New("order quantities must be non-negative")
)

// OrderService reads and edits stored orders. Orders are only ever
// created by ingestion and only ever deleted in bulk.
type OrderService struct {
	storage orderStorage
}

type orderStorage interface {
	FindAllOrders(ctx context.Context) ([]database.OrderDB, error)

	FindOrder(ctx context.Context, uuid string) (*database.OrderDB, error)

	FindOrderByName(ctx context.Context, name string) (*database.OrderDB, error)

	UpdateOrder(ctx context.Context, order database.OrderDB) error

	DeleteAllOrders(ctx context.Context) (int64, error)
}

func NewOrderService(storage orderStorage) *OrderService {
	return &OrderService{storage: storage}
}

// GetOrders returns every order, newest submission first.
func (o *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := o.storage.FindAllOrders(ctx)
	if err != nil {
		return []models.Order{}, err
	}

	result := make([]models.Order, len(orders))
	for i, order := range orders {
		result[i] = orderToModel(order)
	}

	return result, nil
}

// GetOrder resolves an order by uuid, falling back to an exact name
// match.
func (o *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := o.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	result := orderToModel(*order)
	return &result, nil
}

// UpdateOrder applies a partial edit to the order resolved by id. Nil
// fields are left untouched; the uuid is immutable. The full name is
// recomputed whenever a name part or the email changes.
func (o *OrderService) UpdateOrder(ctx context.Context, id string, update models.OrderUpdate) (*models.Order, error) {
	if err := validateOrderUpdate(update); err != nil {
		return nil, err
	}

	order, err := o.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		order.Email = *update.Email
	}
	if update.FirstName != nil {
		order.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		order.LastName = *update.LastName
	}
	if update.FirstName != nil || update.LastName != nil || update.Email != nil {
		name := strings.TrimSpace(order.FirstName + " " + order.LastName)
		if name == "" {
			name = order.Email
		}
		order.Name = name
	}
	if update.PhoneNumber != nil {
		order.PhoneNumber = *update.PhoneNumber
	}
	if update.Company != nil {
		order.Company = *update.Company
	}
	if update.DiscountCode != nil {
		order.DiscountCode = *update.DiscountCode
	}
	if update.DiscountPrice != nil {
		order.DiscountPrice = *update.DiscountPrice
	}
	if update.AmountPaid != nil {
		order.AmountPaid = *update.AmountPaid
	}
	if update.Status != nil {
		order.Status = database.OrderStatusDB{OrderStatus: *update.Status}
	}
	if update.PopcornQuantities != nil {
		order.Quantities = *update.PopcornQuantities
	}

	if err := o.storage.UpdateOrder(ctx, *order); err != nil {
		return nil, err
	}

	// Re-read to pick up the bumped updated_at.
	updated, err := o.storage.FindOrder(ctx, order.UUID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	result := orderToModel(*updated)
	return &result, nil
}

// DeleteAllOrders removes every stored order and returns the count.
func (o *OrderService) DeleteAllOrders(ctx context.Context) (int64, error) {
	return o.storage.DeleteAllOrders(ctx)
}

func (o *OrderService) findOrder(ctx context.Context, id string) (*database.OrderDB, error) {
	order, err := o.storage.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order == nil {
		order, err = o.storage.FindOrderByName(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

func validateOrderUpdate(update models.OrderUpdate) error {
	if update.Email != nil && *update.Email == "" {
		return ErrEmptyOrderEmail
	}
	if update.Status != nil && !update.Status.Valid() {
		return ErrInvalidOrderStatus
	}
	if (update.DiscountPrice != nil && *update.DiscountPrice < 0) ||
		(update.AmountPaid != nil && *update.AmountPaid < 0) {
		return ErrNegativeOrderAmount
	}
	if update.PopcornQuantities != nil && update.PopcornQuantities.HasNegative() {
		return ErrNegativeOrderQuantity
	}
	return nil
}

func orderToModel(order database.OrderDB) models.Order {
	return models.Order{
		OrderID:           order.UUID,
		UUID:              order.UUID,
		Email:             order.Email,
		FirstName:         order.FirstName,
		LastName:          order.LastName,
		Name:              order.Name,
		PhoneNumber:       order.PhoneNumber,
		Company:           order.Company,
		DiscountCode:      order.DiscountCode,
		DiscountPrice:     order.DiscountPrice,
		AmountPaid:        order.AmountPaid,
		Status:            order.Status.OrderStatus,
		PopcornQuantities: order.Quantities,
		SubmittedAt:       utils.RFC3339Date{Time: order.SubmittedAt},
		CreatedAt:         utils.RFC3339Date{Time: order.CreatedAt},
		UpdatedAt:         utils.RFC3339Date{Time: order.UpdatedAt},
	}
}

package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_auth.go . AuthService
type AuthService interface {
	Login(ctx context.Context, login, password string) error
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	GetOrders(ctx context.Context) ([]Order, error)

	GetOrder(ctx context.Context, id string) (*Order, error)

	UpdateOrder(ctx context.Context, id string, update OrderUpdate) (*Order, error)

	DeleteAllOrders(ctx context.Context) (int64, error)
}

//go:generate mockgen -destination=mocks/mock_ingest.go . IngestService
type IngestService interface {
	Ingest(ctx context.Context, formID string) (*IngestResult, error)
}

//go:generate mockgen -destination=mocks/mock_discount_code.go . DiscountCodeService
type DiscountCodeService interface {
	GetCodes(ctx context.Context) ([]DiscountCode, error)

	GetCode(ctx context.Context, id string) (*DiscountCode, error)

	CreateCode(ctx context.Context, input DiscountCodeInput) (*DiscountCode, error)

	UpdateCode(ctx context.Context, id string, input DiscountCodeInput) (*DiscountCode, error)

	DeleteCode(ctx context.Context, id string) error
}

//go:generate mockgen -destination=mocks/mock_price.go . PriceService
type PriceService interface {
	GetPrices(ctx context.Context) (*PopcornPrice, error)

	UpdatePrices(ctx context.Context, update PopcornPriceUpdate) (*PopcornPrice, error)
}

package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/popcornshop/dashboard/internal/models"
)

type key int

const (
	AuthServiceKey key = iota
	JwtServiceKey
	OrderServiceKey
	IngestServiceKey
	DiscountCodeServiceKey
	PriceServiceKey
)

func ServiceInjectorMiddleware(
	authService models.AuthService,
	jwtService models.JWTService,
	orderService models.OrderService,
	ingestService models.IngestService,
	discountCodeService models.DiscountCodeService,
	priceService models.PriceService,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), AuthServiceKey, authService)
			ctx = context.WithValue(ctx, JwtServiceKey, jwtService)
			ctx = context.WithValue(ctx, OrderServiceKey, orderService)
			ctx = context.WithValue(ctx, IngestServiceKey, ingestService)
			ctx = context.WithValue(ctx, DiscountCodeServiceKey, discountCodeService)
			ctx = context.WithValue(ctx, PriceServiceKey, priceService)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}

package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/popcornshop/dashboard/internal/logger"
	"github.com/popcornshop/dashboard/internal/middlewares"
	"github.com/popcornshop/dashboard/internal/models"
)

type Config struct {
	Endpoint string
}

type Router struct {
	config              Config
	authService         models.AuthService
	jwtService          models.JWTService
	orderService        models.OrderService
	ingestService       models.IngestService
	discountCodeService models.DiscountCodeService
	priceService        models.PriceService
}

func New(
	config Config,
	authService models.AuthService,
	jwtService models.JWTService,
	orderService models.OrderService,
	ingestService models.IngestService,
	discountCodeService models.DiscountCodeService,
	priceService models.PriceService,
) *Router {
	return &Router{
		config,
		authService,
		jwtService,
		orderService,
		ingestService,
		discountCodeService,
		priceService,
	}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			router.authService,
			router.jwtService,
			router.orderService,
			router.ingestService,
			router.discountCodeService,
			router.priceService,
		),
		logger.RequestLogger,
		middlewares.AuthMiddleware().WithExcludedPaths(
			"/api/login",
		).Middleware,
	)

	r.Route("/api", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.Credentials]).Post("/login", Login)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", GetOrders)
			r.Delete("/", DeleteAllOrders)
			r.Post("/ingest/{formID}", IngestOrders)
			r.Get("/{id}", GetOrder)
			r.With(middlewares.JSONMiddleware[models.OrderUpdate]).Put("/{id}", UpdateOrder)
		})

		r.Route("/discount-codes", func(r chi.Router) {
			r.Get("/", GetDiscountCodes)
			r.With(middlewares.JSONMiddleware[models.DiscountCodeInput]).Post("/", CreateDiscountCode)
			r.Get("/{id}", GetDiscountCode)
			r.With(middlewares.JSONMiddleware[models.DiscountCodeInput]).Put("/{id}", UpdateDiscountCode)
			r.Delete("/{id}", DeleteDiscountCode)
		})

		r.Route("/popcorn-prices", func(r chi.Router) {
			r.Get("/", GetPopcornPrices)
			r.With(middlewares.JSONMiddleware[models.PopcornPriceUpdate]).Put("/", UpdatePopcornPrices)
		})
	})

	return r
}

func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}

package main

import (
	"context"
	"log"

	"github.com/popcornshop/dashboard/internal/database"
	router "github.com/popcornshop/dashboard/internal/http"
	"github.com/popcornshop/dashboard/internal/logger"
	"github.com/popcornshop/dashboard/internal/services"
	"github.com/popcornshop/dashboard/internal/typeform"
	"github.com/popcornshop/dashboard/internal/utils"
)

func main() {
	ctx := context.Background()
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	db, err := database.New(ctx, config.dsn)

	if err != nil {
		log.Fatalf("Database wasn't initialized due to %s", err)
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Migrations weren't run due to %s", err)
	}

	utils.HandleTerminationProcess(func() {
		db.Close()
	})

	log.Printf("Running server on %s\n", config.endpoint)

	typeformClient := typeform.NewClient(config.typeformEndpoint, config.typeformAPIKey)
	mapper := services.NewMapperService(services.DefaultFieldMap())

	router.New(
		router.Config{Endpoint: config.endpoint},
		services.NewAuthService(config.adminLogin, config.adminPasswordHash),
		services.NewJWTService(config.authSecretKey),
		services.NewOrderService(db),
		services.NewIngestService(db, typeformClient, mapper),
		services.NewDiscountCodeService(db),
		services.NewPriceService(db),
	).Run()
}

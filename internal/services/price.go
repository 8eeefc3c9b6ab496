package services

import (
	"context"
	"errors"

	"github.com/popcornshop/dashboard/internal/database"
	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/utils"
)

var (
	ErrMissingPrice  = errors.New("a price for every flavor is required")
	ErrNegativePrice = errors.New("prices must be non-negative")
)

// PriceService manages the base-price configuration. The most recently
// updated row is the effective one; a zero-valued configuration is
// created lazily on first read.
type PriceService struct {
	storage priceStorage
}

type priceStorage interface {
	FindLatestPopcornPrice(ctx context.Context) (*database.PopcornPriceDB, error)

	CreatePopcornPrice(ctx context.Context, prices models.FlavorPrices) (*database.PopcornPriceDB, error)

	UpdatePopcornPrice(ctx context.Context, id int64, prices models.FlavorPrices) (*database.PopcornPriceDB, error)
}

func NewPriceService(storage priceStorage) *PriceService {
	return &PriceService{storage: storage}
}

// GetPrices returns the current configuration, creating an all-zero one
// when none exists yet.
func (p *PriceService) GetPrices(ctx context.Context) (*models.PopcornPrice, error) {
	price, err := p.storage.FindLatestPopcornPrice(ctx)
	if err != nil {
		return nil, err
	}

	if price == nil {
		price, err = p.storage.CreatePopcornPrice(ctx, models.FlavorPrices{})
		if err != nil {
			return nil, err
		}
	}

	return priceToModel(price), nil
}

// UpdatePrices replaces the configuration. Every flavor must be present
// and non-negative or nothing is written.
func (p *PriceService) UpdatePrices(ctx context.Context, update models.PopcornPriceUpdate) (*models.PopcornPrice, error) {
	if update.Caramel == nil || update.Respresso == nil || update.Butter == nil ||
		update.Cheddar == nil || update.Kettle == nil {
		return nil, ErrMissingPrice
	}

	prices := models.FlavorPrices{
		Caramel:   *update.Caramel,
		Respresso: *update.Respresso,
		Butter:    *update.Butter,
		Cheddar:   *update.Cheddar,
		Kettle:    *update.Kettle,
	}

	if prices.HasNegative() {
		return nil, ErrNegativePrice
	}

	current, err := p.storage.FindLatestPopcornPrice(ctx)
	if err != nil {
		return nil, err
	}

	var price *database.PopcornPriceDB
	if current != nil {
		price, err = p.storage.UpdatePopcornPrice(ctx, current.ID, prices)
	} else {
		price, err = p.storage.CreatePopcornPrice(ctx, prices)
	}
	if err != nil {
		return nil, err
	}

	return priceToModel(price), nil
}

func priceToModel(price *database.PopcornPriceDB) *models.PopcornPrice {
	return &models.PopcornPrice{
		FlavorPrices: price.Prices,
		UpdatedAt:    utils.RFC3339Date{Time: price.UpdatedAt},
	}
}

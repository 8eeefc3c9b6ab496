package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/popcornshop/dashboard/internal/database"
	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/utils"
)

var (
	ErrDiscountCodeNotFound  = errors.New("discount code not found")
	ErrDiscountCodeExists    = errors.New("discount code already exists")
	ErrNegativeDiscountPrice = errors.New("discount code prices must be non-negative")
)

// DiscountCodeService manages pricing-override codes. The single price
// field is kept equal to the mean of the five flavor prices for
// single-price consumers.
type DiscountCodeService struct {
	storage discountCodeStorage
}

type discountCodeStorage interface {
	CreateDiscountCode(ctx context.Context, code database.DiscountCodeDB) error

	FindDiscountCode(ctx context.Context, id string) (*database.DiscountCodeDB, error)

	FindDiscountCodeByCode(ctx context.Context, codeStr string) (*database.DiscountCodeDB, error)

	FindAllDiscountCodes(ctx context.Context) ([]database.DiscountCodeDB, error)

	UpdateDiscountCode(ctx context.Context, code database.DiscountCodeDB) error

	DeleteDiscountCode(ctx context.Context, id string) (bool, error)
}

func NewDiscountCodeService(storage discountCodeStorage) *DiscountCodeService {
	return &DiscountCodeService{storage: storage}
}

// GetCodes returns every discount code, newest first.
func (d *DiscountCodeService) GetCodes(ctx context.Context) ([]models.DiscountCode, error) {
	codes, err := d.storage.FindAllDiscountCodes(ctx)
	if err != nil {
		return []models.DiscountCode{}, err
	}

	result := make([]models.DiscountCode, len(codes))
	for i, code := range codes {
		result[i] = codeToModel(code)
	}

	return result, nil
}

// GetCode returns one discount code by id.
func (d *DiscountCodeService) GetCode(ctx context.Context, id string) (*models.DiscountCode, error) {
	code, err := d.storage.FindDiscountCode(ctx, id)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, ErrDiscountCodeNotFound
	}

	result := codeToModel(*code)
	return &result, nil
}

// CreateCode creates a discount code. The code string defaults to a
// random identifier when not supplied; pricing follows the input per
// resolvePricing.
func (d *DiscountCodeService) CreateCode(ctx context.Context, input models.DiscountCodeInput) (*models.DiscountCode, error) {
	codeStr := uuid.NewString()
	if input.Code != nil && *input.Code != "" {
		codeStr = *input.Code
	}

	existing, err := d.storage.FindDiscountCodeByCode(ctx, codeStr)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDiscountCodeExists
	}

	prices, price, err := resolvePricing(input)
	if err != nil {
		return nil, err
	}

	code := database.DiscountCodeDB{
		ID:       uuid.NewString(),
		Code:     codeStr,
		Price:    price,
		Prices:   prices,
		IsActive: true,
	}
	if input.Description != nil {
		code.Description = *input.Description
	}
	if input.IsActive != nil {
		code.IsActive = *input.IsActive
	}

	if err := d.storage.CreateDiscountCode(ctx, code); err != nil {
		if errors.Is(err, database.ErrDuplicateCode) {
			return nil, ErrDiscountCodeExists
		}
		return nil, err
	}

	return d.GetCode(ctx, code.ID)
}

// UpdateCode applies a partial edit to the code with the given id,
// keeping the pricing invariant intact.
func (d *DiscountCodeService) UpdateCode(ctx context.Context, id string, input models.DiscountCodeInput) (*models.DiscountCode, error) {
	code, err := d.storage.FindDiscountCode(ctx, id)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, ErrDiscountCodeNotFound
	}

	if input.Code != nil && *input.Code != code.Code {
		existing, err := d.storage.FindDiscountCodeByCode(ctx, *input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDiscountCodeExists
		}
		code.Code = *input.Code
	}

	if input.PopcornPrices != nil || input.Price != nil {
		prices, price, err := resolvePricing(input)
		if err != nil {
			return nil, err
		}
		code.Prices = prices
		code.Price = price
	}

	if input.Description != nil {
		code.Description = *input.Description
	}
	if input.IsActive != nil {
		code.IsActive = *input.IsActive
	}

	if err := d.storage.UpdateDiscountCode(ctx, *code); err != nil {
		if errors.Is(err, database.ErrDuplicateCode) {
			return nil, ErrDiscountCodeExists
		}
		return nil, err
	}

	return d.GetCode(ctx, id)
}

// DeleteCode removes the code with the given id.
func (d *DiscountCodeService) DeleteCode(ctx context.Context, id string) error {
	deleted, err := d.storage.DeleteDiscountCode(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDiscountCodeNotFound
	}
	return nil
}

// resolvePricing turns the input into a full flavor price map plus the
// backward-compatible single price: an explicit map wins and sets the
// single price to its mean, a single price is applied to every flavor,
// and with neither the default applies across the board.
func resolvePricing(input models.DiscountCodeInput) (models.FlavorPrices, float64, error) {
	if input.PopcornPrices != nil {
		if input.PopcornPrices.HasNegative() {
			return models.FlavorPrices{}, 0, ErrNegativeDiscountPrice
		}
		return *input.PopcornPrices, input.PopcornPrices.Mean(), nil
	}

	if input.Price != nil {
		if *input.Price < 0 {
			return models.FlavorPrices{}, 0, ErrNegativeDiscountPrice
		}
		return models.UniformFlavorPrices(*input.Price), *input.Price, nil
	}

	return models.UniformFlavorPrices(models.DefaultFlavorPrice), models.DefaultFlavorPrice, nil
}

func codeToModel(code database.DiscountCodeDB) models.DiscountCode {
	return models.DiscountCode{
		ID:            code.ID,
		Code:          code.Code,
		Price:         code.Price,
		PopcornPrices: code.Prices,
		Description:   code.Description,
		IsActive:      code.IsActive,
		CreatedAt:     utils.RFC3339Date{Time: code.CreatedAt},
		UpdatedAt:     utils.RFC3339Date{Time: code.UpdatedAt},
	}
}

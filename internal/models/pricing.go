package models

import (
	"github.com/popcornshop/dashboard/internal/utils"
)

// DefaultFlavorPrice is applied when a discount code is created without
// any pricing information.
const DefaultFlavorPrice = 5.75

// FlavorPrices holds a per-flavor price in dollars.
type FlavorPrices struct {
	Caramel   float64 `json:"caramel"`
	Respresso float64 `json:"respresso"`
	Butter    float64 `json:"butter"`
	Cheddar   float64 `json:"cheddar"`
	Kettle    float64 `json:"kettle"`
}

// UniformFlavorPrices returns a price map with every flavor set to price.
func UniformFlavorPrices(price float64) FlavorPrices {
	return FlavorPrices{
		Caramel:   price,
		Respresso: price,
		Butter:    price,
		Cheddar:   price,
		Kettle:    price,
	}
}

// Mean returns the arithmetic mean of the five flavor prices.
func (p FlavorPrices) Mean() float64 {
	return (p.Caramel + p.Respresso + p.Butter + p.Cheddar + p.Kettle) / 5
}

// HasNegative reports whether any flavor price is below zero.
func (p FlavorPrices) HasNegative() bool {
	return p.Caramel < 0 || p.Respresso < 0 || p.Butter < 0 || p.Cheddar < 0 || p.Kettle < 0
}

// DiscountCode is a pricing override, optionally per-flavor. Price is kept
// equal to the mean of PopcornPrices for single-price consumers.
type DiscountCode struct {
	ID            string            `json:"id"`
	Code          string            `json:"code"`
	Price         float64           `json:"price"`
	PopcornPrices FlavorPrices      `json:"popcornPrices"`
	Description   string            `json:"description"`
	IsActive      bool              `json:"isActive"`
	CreatedAt     utils.RFC3339Date `json:"createdAt"`
	UpdatedAt     utils.RFC3339Date `json:"updatedAt"`
}

// DiscountCodeInput is the create/update request body for discount codes.
// Nil fields are defaulted on create and left untouched on update.
type DiscountCodeInput struct {
	Code          *string       `json:"code"`
	Price         *float64      `json:"price"`
	PopcornPrices *FlavorPrices `json:"popcornPrices"`
	Description   *string       `json:"description"`
	IsActive      *bool         `json:"isActive"`
}

// PopcornPrice is the current base-price configuration, one price per
// flavor. The most recently updated record is the effective one.
type PopcornPrice struct {
	FlavorPrices
	UpdatedAt utils.RFC3339Date `json:"updatedAt"`
}

// PopcornPriceUpdate is the update request body for the price
// configuration. Every flavor must be present.
type PopcornPriceUpdate struct {
	Caramel   *float64 `json:"caramel"`
	Respresso *float64 `json:"respresso"`
	Butter    *float64 `json:"butter"`
	Cheddar   *float64 `json:"cheddar"`
	Kettle    *float64 `json:"kettle"`
}

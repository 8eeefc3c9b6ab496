package models

import (
	"github.com/popcornshop/dashboard/internal/utils"
)

type OrderStatus string

const (
	StatusInquiry      OrderStatus = "Inquiry"
	StatusConfirmed    OrderStatus = "Confirmed"
	StatusInProduction OrderStatus = "In Production"
	StatusReadyToShip  OrderStatus = "Ready to Ship"
	StatusShipped      OrderStatus = "Shipped"
	StatusInvoiced     OrderStatus = "Invoiced"
)

// Valid reports whether the status is one of the six known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusInquiry, StatusConfirmed, StatusInProduction,
		StatusReadyToShip, StatusShipped, StatusInvoiced:
		return true
	}
	return false
}

// FlavorQuantities holds the ordered quantity for each of the five flavors.
type FlavorQuantities struct {
	Caramel   int `json:"caramel"`
	Respresso int `json:"respresso"`
	Butter    int `json:"butter"`
	Cheddar   int `json:"cheddar"`
	Kettle    int `json:"kettle"`
}

// HasNegative reports whether any quantity is below zero.
func (q FlavorQuantities) HasNegative() bool {
	return q.Caramel < 0 || q.Respresso < 0 || q.Butter < 0 || q.Cheddar < 0 || q.Kettle < 0
}

// Order is one customer purchase inquiry captured from the form provider.
// OrderID mirrors UUID, the vendor-assigned response identifier that is
// immutable once the order is created.
type Order struct {
	OrderID           string            `json:"orderId"`
	UUID              string            `json:"uuid"`
	Email             string            `json:"email"`
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	Name              string            `json:"name"`
	PhoneNumber       string            `json:"phoneNumber"`
	Company           string            `json:"company"`
	DiscountCode      string            `json:"discountCode"`
	DiscountPrice     float64           `json:"discountPrice"`
	AmountPaid        float64           `json:"amountPaid"`
	Status            OrderStatus       `json:"status"`
	PopcornQuantities FlavorQuantities  `json:"popcornQuantities"`
	SubmittedAt       utils.RFC3339Date `json:"submittedAt"`
	CreatedAt         utils.RFC3339Date `json:"createdAt"`
	UpdatedAt         utils.RFC3339Date `json:"updatedAt"`
}

// OrderUpdate carries a partial order edit. Nil fields are left untouched.
// The uuid itself is never updatable.
type OrderUpdate struct {
	Email             *string           `json:"email"`
	FirstName         *string           `json:"firstName"`
	LastName          *string           `json:"lastName"`
	PhoneNumber       *string           `json:"phoneNumber"`
	Company           *string           `json:"company"`
	DiscountCode      *string           `json:"discountCode"`
	DiscountPrice     *float64          `json:"discountPrice"`
	AmountPaid        *float64          `json:"amountPaid"`
	Status            *OrderStatus      `json:"status"`
	PopcornQuantities *FlavorQuantities `json:"popcornQuantities"`
}

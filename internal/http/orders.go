package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/popcornshop/dashboard/internal/middlewares"
	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/services"
	"github.com/popcornshop/dashboard/internal/typeform"
)

func GetOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	orders, err := (*orderService).GetOrders(r.Context())

	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting orders: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, orders)
}

func GetOrder(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	order, err := (*orderService).GetOrder(r.Context(), chi.URLParam(r, "id"))

	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting order: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, order)
}

func UpdateOrder(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.OrderUpdate](w, r)
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	order, err := (*orderService).UpdateOrder(r.Context(), chi.URLParam(r, "id"), data)

	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrInvalidOrderStatus) ||
			errors.Is(err, services.ErrEmptyOrderEmail) ||
			errors.Is(err, services.ErrNegativeOrderAmount) ||
			errors.Is(err, services.ErrNegativeOrderQuantity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during updating order: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, order)
}

type deleteAllOrdersResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

func DeleteAllOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	count, err := (*orderService).DeleteAllOrders(r.Context())

	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during deleting orders: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, deleteAllOrdersResponse{
		Message:      "All orders deleted successfully",
		DeletedCount: count,
	})
}

func IngestOrders(w http.ResponseWriter, r *http.Request) {
	ingestService := middlewares.GetServiceFromContext[models.IngestService](w, r, middlewares.IngestServiceKey)

	result, err := (*ingestService).Ingest(r.Context(), chi.URLParam(r, "formID"))

	if err != nil {
		if errors.Is(err, services.ErrNoFormID) {
			http.Error(w, "Form ID is required", http.StatusBadRequest)
			return
		}

		if errors.Is(err, typeform.ErrNoAPIKey) {
			http.Error(w, "Typeform API key is not configured", http.StatusInternalServerError)
			return
		}

		if errors.Is(err, typeform.ErrRequestFailed) {
			http.Error(w, fmt.Sprintf("Typeform API error: %s", err.Error()), http.StatusBadGateway)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during ingesting orders: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, result)
}

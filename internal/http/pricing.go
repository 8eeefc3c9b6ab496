package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/popcornshop/dashboard/internal/middlewares"
	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/services"
)

func GetDiscountCodes(w http.ResponseWriter, r *http.Request) {
	codeService := middlewares.GetServiceFromContext[models.DiscountCodeService](w, r, middlewares.DiscountCodeServiceKey)

	codes, err := (*codeService).GetCodes(r.Context())

	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting discount codes: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, codes)
}

func GetDiscountCode(w http.ResponseWriter, r *http.Request) {
	codeService := middlewares.GetServiceFromContext[models.DiscountCodeService](w, r, middlewares.DiscountCodeServiceKey)

	code, err := (*codeService).GetCode(r.Context(), chi.URLParam(r, "id"))

	if err != nil {
		if errors.Is(err, services.ErrDiscountCodeNotFound) {
			http.Error(w, "Discount code not found", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting discount code: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, code)
}

func CreateDiscountCode(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.DiscountCodeInput](w, r)
	codeService := middlewares.GetServiceFromContext[models.DiscountCodeService](w, r, middlewares.DiscountCodeServiceKey)

	code, err := (*codeService).CreateCode(r.Context(), data)

	if err != nil {
		if errors.Is(err, services.ErrDiscountCodeExists) {
			http.Error(w, "Discount code already exists", http.StatusConflict)
			return
		}

		if errors.Is(err, services.ErrNegativeDiscountPrice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during creating discount code: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	middlewares.EncodeJSONResponse(w, code)
}

func UpdateDiscountCode(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.DiscountCodeInput](w, r)
	codeService := middlewares.GetServiceFromContext[models.DiscountCodeService](w, r, middlewares.DiscountCodeServiceKey)

	code, err := (*codeService).UpdateCode(r.Context(), chi.URLParam(r, "id"), data)

	if err != nil {
		if errors.Is(err, services.ErrDiscountCodeNotFound) {
			http.Error(w, "Discount code not found", http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrDiscountCodeExists) {
			http.Error(w, "Discount code already exists", http.StatusConflict)
			return
		}

		if errors.Is(err, services.ErrNegativeDiscountPrice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during updating discount code: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, code)
}

type deleteDiscountCodeResponse struct {
	Message string `json:"message"`
}

func DeleteDiscountCode(w http.ResponseWriter, r *http.Request) {
	codeService := middlewares.GetServiceFromContext[models.DiscountCodeService](w, r, middlewares.DiscountCodeServiceKey)

	if err := (*codeService).DeleteCode(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, services.ErrDiscountCodeNotFound) {
			http.Error(w, "Discount code not found", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during deleting discount code: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, deleteDiscountCodeResponse{
		Message: "Discount code deleted successfully",
	})
}

func GetPopcornPrices(w http.ResponseWriter, r *http.Request) {
	priceService := middlewares.GetServiceFromContext[models.PriceService](w, r, middlewares.PriceServiceKey)

	prices, err := (*priceService).GetPrices(r.Context())

	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting popcorn prices: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, prices)
}

func UpdatePopcornPrices(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.PopcornPriceUpdate](w, r)
	priceService := middlewares.GetServiceFromContext[models.PriceService](w, r, middlewares.PriceServiceKey)

	prices, err := (*priceService).UpdatePrices(r.Context(), data)

	if err != nil {
		if errors.Is(err, services.ErrMissingPrice) || errors.Is(err, services.ErrNegativePrice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during updating popcorn prices: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, prices)
}

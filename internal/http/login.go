package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/popcornshop/dashboard/internal/middlewares"
	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/services"
)

func Login(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.Credentials](w, r)
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)

	if data.Login == nil || data.Password == nil {
		http.Error(w, "Request doesn't contain login or password", http.StatusBadRequest)
		return
	}

	if err := (*authService).Login(r.Context(), *data.Login, *data.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			http.Error(w, "Login or password is not correct", http.StatusUnauthorized)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during login: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	token, err := (*jwtService).GenerateJWT(*data.Login)

	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during generating jwt token: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
}

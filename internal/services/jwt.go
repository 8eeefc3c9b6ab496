package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenIsInvalid = errors.New("token is invalid")
	ErrTokenIsExpired = errors.New("token is expired")
)

// JWTService issues and validates the bearer tokens protecting the API.
type JWTService struct {
	authSecretKey string
}

func NewJWTService(authSecretKey string) *JWTService {
	return &JWTService{authSecretKey: authSecretKey}
}

// GenerateJWT issues a token for the subject, valid for 24 hours.
func (j *JWTService) GenerateJWT(subject string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(j.authSecretKey))
	if err != nil {
		return "", fmt.Errorf("error while generating token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken checks the signature and expiry of a token.
func (j *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.authSecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenIsExpired
		}

		return nil, fmt.Errorf("error while validating token: %w", err)
	}

	if !parsedToken.Valid {
		return nil, ErrTokenIsInvalid
	}

	return parsedToken, nil
}

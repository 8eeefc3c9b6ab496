package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	service := NewAuthService("admin", string(hash))

	testCases := []struct {
		testName    string
		login       string
		password    string
		expectedErr error
	}{
		{
			testName: "valid credentials",
			login:    "admin",
			password: "correct horse",
		},
		{
			testName:    "wrong password",
			login:       "admin",
			password:    "battery staple",
			expectedErr: ErrInvalidCredentials,
		},
		{
			testName:    "wrong login",
			login:       "root",
			password:    "correct horse",
			expectedErr: ErrInvalidCredentials,
		},
		{
			testName:    "empty login",
			password:    "correct horse",
			expectedErr: ErrInvalidCredentials,
		},
		{
			testName:    "empty password",
			login:       "admin",
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			err := service.Login(context.Background(), tc.login, tc.password)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginWithoutConfiguredHash(t *testing.T) {
	service := NewAuthService("admin", "")

	err := service.Login(context.Background(), "admin", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	service := NewJWTService("secret")

	token, err := service.GenerateJWT("admin")
	require.NoError(t, err)

	parsed, err := service.ValidateToken(token)
	require.NoError(t, err)

	subject, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestValidateTokenWithWrongKey(t *testing.T) {
	token, err := NewJWTService("secret").GenerateJWT("admin")
	require.NoError(t, err)

	_, err = NewJWTService("other secret").ValidateToken(token)
	assert.Error(t, err)
}

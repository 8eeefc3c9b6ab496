package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	endpoint          string
	dsn               string
	typeformEndpoint  string
	typeformAPIKey    string
	logLevel          string
	env               string
	authSecretKey     string
	adminLogin        string
	adminPasswordHash string
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func NewConfig() Config {
	var (
		endpoint         string
		dsn              string
		typeformEndpoint string
	)

	// .env is optional, real deployments set variables directly
	_ = godotenv.Load()

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&typeformEndpoint, "t", "https://api.typeform.com", "base URL of the Typeform API")
	flag.StringVar(&dsn, "d", "", "data source name for database connection")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if t := os.Getenv("TYPEFORM_API_URL"); t != "" {
		typeformEndpoint = t
	}

	if d := os.Getenv("DATABASE_URI"); d != "" {
		dsn = d
	}

	typeformAPIKey := os.Getenv("TYPEFORM_API_KEY")

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "error"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "production"
	}

	authSecretKey := os.Getenv("AUTH_SECRET_KEY")
	if authSecretKey == "" {
		if env == "production" {
			authSecretKey = generateRandomString(10)
			log.Printf("WARNING: AUTH_SECRET_KEY has to be defined for production environment\n")
		} else {
			authSecretKey = "development-key"
		}
	}

	adminLogin := os.Getenv("ADMIN_LOGIN")
	if adminLogin == "" {
		adminLogin = "admin"
	}

	adminPasswordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminPasswordHash == "" && env == "production" {
		log.Printf("WARNING: ADMIN_PASSWORD_HASH has to be defined for production environment\n")
	}

	return Config{
		endpoint:          endpoint,
		dsn:               dsn,
		typeformEndpoint:  typeformEndpoint,
		typeformAPIKey:    typeformAPIKey,
		logLevel:          logLevel,
		env:               env,
		authSecretKey:     authSecretKey,
		adminLogin:        adminLogin,
		adminPasswordHash: adminPasswordHash,
	}
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not override existing vars).
//
// Recognized variables:
//
//	BOOKSHELF_API_URL        base URL of the catalog API
//	BOOKSHELF_TIMEOUT        request timeout in seconds
//	BOOKSHELF_STORE_PATH     path to the local session database
//	COGNITO_REGION           user pool region
//	COGNITO_CLIENT_ID        app client id
//	COGNITO_CLIENT_SECRET    app client secret (optional)
//	COGNITO_ENDPOINT         endpoint override for local emulators (optional)
//	LOG_LEVEL                minimum log level
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.APIBaseURL = getEnv("BOOKSHELF_API_URL", cfg.APIBaseURL)
	cfg.StorePath = getEnv("BOOKSHELF_STORE_PATH", cfg.StorePath)
	cfg.CognitoRegion = getEnv("COGNITO_REGION", cfg.CognitoRegion)
	cfg.CognitoClientID = getEnv("COGNITO_CLIENT_ID", cfg.CognitoClientID)
	cfg.CognitoClientSecret = getEnv("COGNITO_CLIENT_SECRET", cfg.CognitoClientSecret)
	cfg.CognitoEndpoint = getEnv("COGNITO_ENDPOINT", cfg.CognitoEndpoint)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if secs := getEnvAsInt("BOOKSHELF_TIMEOUT", 0); secs > 0 {
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	RP_KEY_ID         string
	RP_KEY_SECRET     string
	RP_WEBHOOK_SECRET string

	RESEND_API_KEY string
	EMAIL_FROM     string

	INS_REG_URL      string
	REGISTER_API_URL string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	RP_KEY_ID = mustEnv("RP_KEY_ID")
	RP_KEY_SECRET = mustEnv("RP_KEY_SECRET")
	// Razorpay signs webhooks with the dashboard webhook secret when one is
	// configured, otherwise with the key secret.
	RP_WEBHOOK_SECRET = getEnv("RP_WEBHOOK_SECRET", RP_KEY_SECRET)

	RESEND_API_KEY = mustEnv("RESEND_API_KEY")
	EMAIL_FROM = getEnv("EMAIL_FROM", "Academy <noreply@academy.app>")

	INS_REG_URL = getEnv("INS_REG_URL", "")
	REGISTER_API_URL = getEnv("REGISTER_API_URL", "")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

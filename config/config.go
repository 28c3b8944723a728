package config

import (
	"os"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	AdminEmail    string
	AdminPassword string

	Currency      string
	MerchantEmail string
	PayPalURL     string

	FrontendURL string
	UploadDir   string
}

func LoadConfig() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "shop"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),

		// Seeded on startup when both are set; empty disables seeding.
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		Currency:      getEnv("PAYPAL_CURRENCY", "HKD"),
		MerchantEmail: getEnv("PAYPAL_MERCHANT_EMAIL", "merchant@example.com"),
		PayPalURL:     getEnv("PAYPAL_URL", "https://www.sandbox.paypal.com/cgi-bin/webscr"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		UploadDir:   getEnv("UPLOAD_DIR", "./public/images/products"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

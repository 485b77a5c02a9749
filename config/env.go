package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds every configuration value the application needs.
// It is built once in main and handed down by injection; nothing reads
// the environment at request time.
type AppConfig struct {
	Port            string
	Env             string
	MongoURI        string
	DBName          string
	PasetoSecretKey []byte

	BraintreeEnv        string
	BraintreeMerchantID string
	BraintreePublicKey  string
	BraintreePrivateKey string
}

// Load reads configuration from a .env file or environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENVIRONMENT", "development"),
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017/velomart"),
		DBName:   getEnv("MONGO_DB", "velomart"),

		BraintreeEnv:        getEnv("BRAINTREE_ENVIRONMENT", "sandbox"),
		BraintreeMerchantID: getEnv("BRAINTREE_MERCHANT_ID", ""),
		BraintreePublicKey:  getEnv("BRAINTREE_PUBLIC_KEY", ""),
		BraintreePrivateKey: getEnv("BRAINTREE_PRIVATE_KEY", ""),
	}

	key := getEnv("PASETO_SECRET_KEY", "")
	if len(key) != 32 {
		log.Fatal("PASETO_SECRET_KEY must be 32 characters long!")
	}
	cfg.PasetoSecretKey = []byte(key)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	AdminKeyHash string
	KafkaAddress string
	ESURL        string
	ESUser       string
	ESPassword   string
	OTLPEndpoint string
	LogLevel     string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		Port:         getDefault("PORT", "5000"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      getDefault("MONGO_DB", "storefront"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AdminKeyHash: os.Getenv("ADMIN_KEY_HASH"),
		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),
		OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
		LogLevel:     getDefault("LOG_LEVEL", "info"),
	}

	MustNonEmpty(cfg.MongoURI, "MONGO_URI")
	MustNonEmpty(cfg.JWTSecret, "JWT_SECRET")
	MustNonEmpty(cfg.AdminKeyHash, "ADMIN_KEY_HASH")

	return cfg
}

func getDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

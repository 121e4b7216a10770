package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment. A .env file
// is loaded when present but is never required.
type Config struct {
	HTTPAddr    string
	MongoURI    string
	Database    string
	KafkaBroker string
	GatewayURL  string
	FrontendURL string
	MerchantID  string
}

func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		MongoURI:    getenv("MONGODB_URI", defaultMongoURI()),
		Database:    getenv("MONGO_DB", "storefront"),
		KafkaBroker: getenv("KAFKA_BROKER", "localhost:9092"),
		GatewayURL:  getenv("GATEWAY_URL", "https://securegw-stage.paytm.in"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),
		MerchantID:  os.Getenv("PAYTM_MID"),
	}
}

func defaultMongoURI() string {
	// Docker compose networking uses the service name as the host
	if _, inDocker := os.LookupEnv("DOCKER_CONTAINER"); inDocker {
		return "mongodb://mongodb:27017"
	}
	return "mongodb://localhost:27017"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

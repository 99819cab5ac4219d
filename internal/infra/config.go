package infra

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all ambient configuration. It is loaded once at startup and
// injected where needed; business logic never reads the environment directly.
type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	TokenExpiry     time.Duration
	AllowedOrigin   string
	AIProvider      string
	AIModel         string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	GenerateTimeout time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "5000"),
		MongoURI:        getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnvWithDefault("MONGO_DB", "wanderai"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenExpiry:     7 * 24 * time.Hour,
		AllowedOrigin:   getEnvWithDefault("FRONTEND_ORIGIN", "http://localhost:3000"),
		AIProvider:      getEnvWithDefault("AI_PROVIDER", "gemini"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		GenerateTimeout: 30 * time.Second,
	}

	switch cfg.AIProvider {
	case "openai":
		cfg.AIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	default:
		cfg.AIModel = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func (c *Config) AIAPIKey() string {
	if c.AIProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

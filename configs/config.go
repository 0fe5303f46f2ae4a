package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	APIBaseURL   string
	MenuCacheTTL time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "chatpata.db"),
		Port:         getEnv("PORT", "8000"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       getDuration("JWT_TTL", 24*time.Hour),
		APIBaseURL:   getEnv("API_BASE_URL", "https://chatpata-ai-backend-production.up.railway.app"),
		MenuCacheTTL: getDuration("MENU_CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

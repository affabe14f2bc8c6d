package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultUsersAPIURL = "https://bancodequestoes-api.onrender.com/users"

type Settings struct {
	Port            string
	StoreDriver     string
	DatabaseDSN     string
	JWTTTL          time.Duration
	UsersAPIURL     string
	UsersAPITimeout time.Duration
	CorsOrigin      string
	CookieDomain    string
}

// LoadEnv reads a .env file when present; variables already set in the
// environment win.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		Logger.Debug("Arquivo .env não encontrado, usando variáveis do ambiente")
	}
}

func Load() Settings {
	return Settings{
		Port:            getEnv("PORT", "8080"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", "postgres")),
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
		JWTTTL:          getDuration("JWT_TTL", 24*time.Hour),
		UsersAPIURL:     getEnv("USERS_API_URL", DefaultUsersAPIURL),
		UsersAPITimeout: getDuration("USERS_API_TIMEOUT", 10*time.Second),
		CorsOrigin:      getEnv("CORS_ORIGIN", "*"),
		CookieDomain:    os.Getenv("COOKIE_DOMAIN"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		Logger.WithError(err).Warnf("Valor inválido para %s, usando padrão %s", key, defaultValue)
		return defaultValue
	}
	return d
}

package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	JwtSecret      string
	JwtTTL         time.Duration
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "qpurpose"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "qpurpose"),
		DbName:         getEnv("MYSQL_DATABASE", "qpurpose"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		JwtSecret:      getEnv("JWT_SECRET", "jwtsecretkey"),
		JwtTTL:         parseTTL(os.Getenv("JWT_TTL")),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTTL(value string) time.Duration {
	if value == "" {
		return time.Hour
	}

	ttl, err := time.ParseDuration(value)
	if err != nil || ttl <= 0 {
		return time.Hour
	}

	return ttl
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}

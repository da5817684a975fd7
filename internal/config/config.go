package config

import (
	"os"
)

type Config struct {
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
	GinMode      string
	Port         string
	OpenAIAPIKey string
	WorkloadCron string
}

func Load() *Config {
	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "mysql"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBUser:       getEnv("DB_USER", "synergy"),
		DBPassword:   getEnv("DB_PASSWORD", "synergy"),
		DBName:       getEnv("DB_NAME", "synergysphere"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		Port:         getEnv("PORT", "8080"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		WorkloadCron: getEnv("WORKLOAD_CRON", "0 3 * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	DbHost      string
	DbPort      string
	DbUser      string
	DbPassword  string
	DbName      string
	DatabaseURL string
	ServerPort  string

	AuditRetentionDays int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "formbuilder")
	// DATABASE_URL takes precedence over the discrete DB_* values
	DatabaseURL = getEnv("DATABASE_URL", "")
	ServerPort = getEnv("SERVER_PORT", "8080")
	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 90)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

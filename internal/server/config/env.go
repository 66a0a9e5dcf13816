package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables, loading an
// optional .env file first. Unset variables leave the current values alone.
//
// Recognized variables: ADDRESS, DATABASE_DSN, CRON_SECRET, UNLOCK_SECRET,
// GEMINI_API_KEY, GEMINI_MODEL.
func parseEnv(config *Config) {
	// .env is optional; real environment variables take precedence anyway
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("CRON_SECRET"); ok {
		config.SweepSecret = v
	}
	if v, ok := os.LookupEnv("UNLOCK_SECRET"); ok {
		config.UnlockSecret = v
	}
	if v, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
		config.GeminiAPIKey = v
	}
	if v, ok := os.LookupEnv("GEMINI_MODEL"); ok {
		config.GeminiModel = v
	}
}

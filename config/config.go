package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env               string
	Port              string
	DBURL             string
	AccessTokenSecret string

	// Session token lifetime in minutes.
	TokenExpiryMin int

	// One-time-code knobs.
	SMSCodeTTLMin  int
	SMSCooldownSec int

	// Rate-limit rules: the general API window and the stricter window for
	// code issuance.
	APIRateWindowMin int
	APIRateMax       int
	SMSRateWindowMin int
	SMSRateMax       int
}

func Load() *Config {
	return &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "3000"),
		DBURL:             mustGetEnv("DB_URL"),
		AccessTokenSecret: mustGetEnv("ACCESS_TOKEN_SECRET"),
		TokenExpiryMin:    getEnvAsInt("TOKEN_EXPIRY_MIN", 1440),
		SMSCodeTTLMin:     getEnvAsInt("SMS_CODE_TTL_MIN", 5),
		SMSCooldownSec:    getEnvAsInt("SMS_COOLDOWN_SEC", 60),
		APIRateWindowMin:  getEnvAsInt("API_RATE_WINDOW_MIN", 15),
		APIRateMax:        getEnvAsInt("API_RATE_MAX", 100),
		SMSRateWindowMin:  getEnvAsInt("SMS_RATE_WINDOW_MIN", 60),
		SMSRateMax:        getEnvAsInt("SMS_RATE_MAX", 5),
	}
}

// IsProduction reports whether secrets such as issued SMS codes must stay out
// of responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

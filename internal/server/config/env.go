package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Only set
// variables override; malformed numeric/boolean values are ignored rather
// than crashing startup.
//
// Recognized variables:
//
//	ADDRESS        HTTP bind address (e.g. ":5000")
//	DATABASE_DSN   PostgreSQL DSN
//	JWT_SECRET     HMAC secret for session tokens
//	TOKEN_VALIDITY session token lifetime (Go duration, e.g. "24h")
//	BCRYPT_COST    bcrypt cost factor
//	FRONTEND_URL   allowed CORS origin
//	COOKIE_DOMAIN  session cookie domain (e.g. ".example.com")
//	COOKIE_SECURE  "true"/"false"
//	ENVIRONMENT    "development" or "production"
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("FRONTEND_URL"); ok {
		config.AllowedOrigin = v
	}
	if v, ok := os.LookupEnv("COOKIE_DOMAIN"); ok {
		config.CookieDomain = v
	}
	if v, ok := os.LookupEnv("COOKIE_SECURE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.CookieSecure = b
		}
	}
	if v, ok := os.LookupEnv("ENVIRONMENT"); ok {
		config.Environment = v
	}
}

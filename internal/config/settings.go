package config

import (
	"strconv"
	"strings"
)

const defaultTokenExpireMinutes = 30

// TokenSecret returns the HS256 signing secret for access tokens.
func TokenSecret() string {
	return getEnv("JWT_SECRET", "supersecret")
}

// TokenExpireMinutes returns the access-token lifetime.
func TokenExpireMinutes() int {
	raw := getEnv("TOKEN_EXPIRE_MINUTES", "")
	if raw == "" {
		return defaultTokenExpireMinutes
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return defaultTokenExpireMinutes
	}
	return minutes
}

// CORSAllowedOrigins returns the configured origin whitelist; empty
// means any origin is echoed back.
func CORSAllowedOrigins() []string {
	raw := getEnv("CORS_ALLOWED_ORIGINS", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// ServerAddr returns the listen address for the HTTP server.
func ServerAddr() string {
	return getEnv("SERVER_ADDR", "0.0.0.0:8080")
}

// StockPolicyName selects how order creation treats product stock:
// "keep" (default) leaves stock untouched, "decrement" reserves it.
func StockPolicyName() string {
	return getEnv("ORDER_STOCK_POLICY", "keep")
}

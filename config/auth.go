package config

import (
	"log/slog"
	"os"
)

// JwtKey signs and verifies session tokens. Loaded once at startup.
var JwtKey []byte

// LoadAuth reads the JWT signing secret. Serving protected routes without a
// secret would make every token forgeable, so an empty JWT_SECRET is fatal.
func LoadAuth() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("environment variable JWT_SECRET is not set")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}

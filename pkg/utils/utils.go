package utils

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/inkwell/inkwell/api/internal/config"
)

// TokenValidity is how long an issued session token stays usable.
const TokenValidity = 4 * time.Hour

// GenerateShortID generates a short record ID (first char alphabetic, rest
// alphanumeric) safe for use in URLs.
func GenerateShortID() string {
	firstChar, _ := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz", 1)
	rest, _ := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz0123456789", 19)
	return firstChar + rest
}

// GenerateToken generates a JWT session token for the admin user
func GenerateToken(userID, username string) (string, error) {
	cfg := config.Get()
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"exp":      time.Now().Add(TokenValidity).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// NormalizeUsername trims and lowercases a username for storage and lookup.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

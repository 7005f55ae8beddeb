package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell/inkwell/api/internal/config"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and attaches the resolved admin
// user to the request context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authenticate(c, cfg.JWTSecret)
		if err != nil {
			return response.Unauthorized(c, err.Error())
		}

		c.Locals("user", user)
		return c.Next()
	}
}

func authenticate(c *fiber.Ctx, jwtSecret string) (*models.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("No token provided")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, errors.New("No token provided")
	}

	claims, err := parseJWT(parts[1], jwtSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("Token expired")
		}
		return nil, errors.New("Invalid token")
	}

	db := database.GetDatabase()

	var user models.User
	if err := db.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		return nil, errors.New("User not found")
	}

	return &user, nil
}

func parseJWT(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token claims")
}

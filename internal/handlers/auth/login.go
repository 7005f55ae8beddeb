package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
	"github.com/inkwell/inkwell/api/pkg/utils"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	db := database.GetDatabase()

	// Same message for unknown user and wrong password so the caller cannot
	// tell which half failed.
	var user models.User
	if err := db.Where("username = ?", utils.NormalizeUsername(req.Username)).First(&user).Error; err != nil {
		return response.Unauthorized(c, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return response.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return response.InternalServerError(c, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

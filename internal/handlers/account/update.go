package account

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
	"github.com/inkwell/inkwell/api/pkg/utils"
)

type UpdateAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PUT /api/admin/account
//
// Re-issues a session token on success: the old token still carries the
// previous username.
func Update(c *fiber.Ctx) error {
	db := database.GetDatabase()

	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	var req UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if utils.IsBlank(req.Username) {
		return response.BadRequest(c, "Username is required")
	}
	if utils.IsBlank(req.Password) {
		return response.BadRequest(c, "Password is required")
	}

	username := utils.NormalizeUsername(req.Username)
	if len(username) < 3 {
		return response.BadRequest(c, "Username must be at least 3 characters long")
	}

	password := strings.TrimSpace(req.Password)
	if len(password) < 6 {
		return response.BadRequest(c, "Password must be at least 6 characters long")
	}

	// The new username must not belong to a different account
	var existing models.User
	err := db.Where("username = ? AND id <> ?", username, user.ID).First(&existing).Error
	if err == nil {
		return response.BadRequest(c, "Username is already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return response.InternalServerError(c, "Failed to update account")
	}

	updates := map[string]interface{}{
		"username": username,
		"password": string(hashed),
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update account")
	}

	token, err := utils.GenerateToken(user.ID, username)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return response.InternalServerError(c, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Account updated successfully",
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": username,
		},
	})
}

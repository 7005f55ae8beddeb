package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// GET /api/auth/verify
func Verify(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

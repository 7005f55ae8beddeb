package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// GET /api/admin/dashboard
func Dashboard(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return response.Unauthorized(c, "Invalid authentication")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin dashboard data",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/config"
	"github.com/inkwell/inkwell/api/internal/handlers/account"
	"github.com/inkwell/inkwell/api/internal/handlers/admin"
	"github.com/inkwell/inkwell/api/internal/handlers/auth"
	"github.com/inkwell/inkwell/api/internal/handlers/blogs"
	"github.com/inkwell/inkwell/api/internal/handlers/comments"
	"github.com/inkwell/inkwell/api/internal/handlers/tags"
	"github.com/inkwell/inkwell/api/internal/middleware"
)

func Setup(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "Server is running"})
	})

	// Auth
	authRoutes := api.Group("/auth")
	{
		authRoutes.Post("/login", auth.Login)
		authRoutes.Get("/verify", middleware.AuthMiddleware(cfg), auth.Verify)
	}

	// Public blog reads
	blogRoutes := api.Group("/blogs")
	{
		blogRoutes.Get("/", blogs.ListPublished)
		blogRoutes.Get("/:id", blogs.GetPublished)
	}

	// Public comment submission and reads
	commentRoutes := api.Group("/comments")
	{
		commentRoutes.Post("/", comments.Create)
		commentRoutes.Get("/blog/:blogId", comments.ListApproved)
	}

	// Admin (bearer token)
	adminRoutes := api.Group("/admin", middleware.AuthMiddleware(cfg))
	{
		adminRoutes.Get("/dashboard", admin.Dashboard)

		adminRoutes.Put("/account", account.Update)

		adminRoutes.Post("/blogs", blogs.Create)
		adminRoutes.Get("/blogs", blogs.ListAdmin)
		adminRoutes.Get("/blogs/:id", blogs.GetAdmin)
		adminRoutes.Put("/blogs/:id", blogs.Update)
		adminRoutes.Delete("/blogs/:id", blogs.Delete)
		adminRoutes.Patch("/blogs/:id/status", blogs.UpdateStatus)

		adminRoutes.Get("/tags", tags.List)
		adminRoutes.Post("/tags", tags.Create)
		adminRoutes.Delete("/tags/:id", tags.Delete)

		adminRoutes.Get("/comments", comments.ListAll)
		adminRoutes.Patch("/comments/:id/status", comments.UpdateStatus)
		adminRoutes.Delete("/comments/:id", comments.Delete)
	}
}

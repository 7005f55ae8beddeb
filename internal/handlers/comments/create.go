package comments

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

type CreateCommentRequest struct {
	BlogID  string `json:"blogId"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// POST /api/comments
//
// Open to any visitor. Whatever the caller sends, a new comment always
// enters moderation as pending.
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.BlogID == "" {
		return response.BadRequest(c, "Blog ID is required")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return response.BadRequest(c, "Comment content is required")
	}

	var blog models.Blog
	if err := db.Where("id = ?", req.BlogID).First(&blog).Error; err != nil {
		return response.NotFound(c, "Blog not found")
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = "Anonymous"
	}

	comment := models.Comment{
		BlogID:  req.BlogID,
		Author:  author,
		Content: content,
		Status:  models.CommentStatusPending,
	}

	if err := db.Create(&comment).Error; err != nil {
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Internal server error", err)
	}

	return response.Created(c, "Comment submitted successfully. It will be reviewed before being published.", comment)
}

package blogs

import (
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwell/inkwell/api/internal/cache"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/pkg/response"
)

// POST /api/admin/blogs
//
// Multipart form: title, subtitle, tag, description, content, status fields
// plus an optional `thumbnail` file and up to 10 `images` files.
func Create(c *fiber.Ctx) error {
	db := database.GetDatabase()

	title := strings.TrimSpace(c.FormValue("title"))
	subtitle := strings.TrimSpace(c.FormValue("subtitle"))
	tag := strings.TrimSpace(c.FormValue("tag"))
	description := strings.TrimSpace(c.FormValue("description"))
	content := strings.TrimSpace(c.FormValue("content"))

	if title == "" {
		return response.BadRequest(c, "Title is required")
	}
	if tag == "" {
		return response.BadRequest(c, "Tag is required")
	}
	if description == "" {
		return response.BadRequest(c, "Description is required")
	}
	if content == "" {
		return response.BadRequest(c, "Content is required")
	}

	status := models.BlogStatusDraft
	if v := strings.TrimSpace(c.FormValue("status")); v != "" {
		status = models.BlogStatus(v)
		if !status.Valid() {
			return response.BadRequest(c, "Status must be 'published' or 'draft'")
		}
	}

	blog := models.Blog{
		Title:       title,
		Subtitle:    subtitle,
		Tag:         tag,
		Description: description,
		Content:     content,
		Status:      status,
	}

	// Every file header is checked before the first remote write: a rejected
	// request must not leave objects behind in the store.
	thumb, err := c.FormFile("thumbnail")
	if err != nil {
		thumb = nil
	}
	if thumb != nil {
		if thumb.Size > maxFileSize {
			return response.BadRequest(c, "File size too large. Maximum size is 5MB")
		}
		if !isImage(thumb) {
			return response.BadRequest(c, errNotAnImage.Error())
		}
	}

	var gallery []*multipart.FileHeader
	var skippedFiles []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["images"]
		if len(files) > maxGalleryFiles {
			return response.BadRequest(c, "Too many files. Maximum is 10 images")
		}
		for _, fh := range files {
			if fh.Size > maxFileSize {
				return response.BadRequest(c, "File size too large. Maximum size is 5MB")
			}
			if !isImage(fh) {
				// Non-image gallery files are dropped, not fatal
				skippedFiles = append(skippedFiles, fh.Filename)
				continue
			}
			gallery = append(gallery, fh)
		}
	}

	// Thumbnail is optional, but once the client declares one it must yield a
	// complete URL + id pair or the whole creation fails.
	var uploaded []string
	if thumb != nil {
		result, err := uploadFile(thumb)
		if err != nil {
			log.Printf("Thumbnail upload error: %v", err)
			return response.InternalServerError(c, "Failed to upload thumbnail image")
		}
		blog.ThumbnailURL = result.URL
		blog.ThumbnailID = result.PublicID
		uploaded = append(uploaded, result.PublicID)
	}

	for _, fh := range gallery {
		result, err := uploadFile(fh)
		if err != nil {
			log.Printf("Image upload error: %v", err)
			discardUploads(uploaded)
			return response.InternalServerError(c, "Failed to upload image")
		}
		blog.Images = append(blog.Images, models.BlogImage{
			URL:      result.URL,
			PublicID: result.PublicID,
		})
		uploaded = append(uploaded, result.PublicID)
	}

	if err := db.Create(&blog).Error; err != nil {
		discardUploads(uploaded)
		return response.ErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to save blog to database", err)
	}

	cache.Invalidate(c.Context(), cache.KeyPublishedBlogs)

	if len(skippedFiles) > 0 {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":      true,
			"message":      "Blog created",
			"data":         blog,
			"skippedFiles": skippedFiles,
		})
	}

	return response.Created(c, "Blog created", blog)
}

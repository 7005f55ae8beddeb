package blogs_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/glebarez/sqlite"

	"github.com/inkwell/inkwell/api/internal/cache"
	"github.com/inkwell/inkwell/api/internal/config"
	"github.com/inkwell/inkwell/api/internal/database"
	"github.com/inkwell/inkwell/api/internal/imagestore"
	"github.com/inkwell/inkwell/api/internal/models"
	"github.com/inkwell/inkwell/api/internal/routes"
	"github.com/inkwell/inkwell/api/pkg/utils"
)

type fakeStore struct {
	uploads    int
	deleted    []string
	failUpload bool
	failAfter  int // fail uploads once this many have succeeded, 0 means never
	failDelete bool
}

func (f *fakeStore) Upload(fileName string, file multipart.File, contentType string) (*imagestore.UploadResult, error) {
	if f.failUpload || (f.failAfter > 0 && f.uploads >= f.failAfter) {
		return nil, errors.New("store unavailable")
	}
	f.uploads++
	key := fmt.Sprintf("blog-images/%d-%s", f.uploads, fileName)
	return &imagestore.UploadResult{URL: "https://img.test/" + key, PublicID: key}, nil
}

func (f *fakeStore) Delete(publicID string) error {
	if f.failDelete {
		return errors.New("store unavailable")
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

type envelope struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	Data         json.RawMessage `json:"data"`
	Error        string          `json:"error"`
	SkippedFiles []string        `json:"skippedFiles"`
}

func setupTest(t *testing.T) (*fiber.App, *gorm.DB, *fakeStore, string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true, NoLowerCase: true},
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Blog{}, &models.BlogImage{}, &models.Comment{}, &models.Tag{},
	))
	database.SetDatabase(db)

	store := &fakeStore{}
	imagestore.SetStore(store)

	admin := models.User{Username: "admin", Password: "hashed"}
	require.NoError(t, db.Create(&admin).Error)
	token, err := utils.GenerateToken(admin.ID, admin.Username)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{BodyLimit: 64 * 1024 * 1024})
	routes.Setup(app, cfg)
	return app, db, store, "Bearer " + token
}

type testFile struct {
	field       string
	name        string
	contentType string
	content     []byte
}

func multipartBody(t *testing.T, fields map[string]string, files []testFile) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func do(t *testing.T, app *fiber.App, method, target, auth string, body io.Reader, contentType string) (*http.Response, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func createBlog(t *testing.T, app *fiber.App, auth string, fields map[string]string, files []testFile) (int, envelope) {
	t.Helper()
	body, contentType := multipartBody(t, fields, files)
	resp, env := do(t, app, http.MethodPost, "/api/admin/blogs", auth, body, contentType)
	return resp.StatusCode, env
}

func blogFields(overrides map[string]string) map[string]string {
	fields := map[string]string{
		"title":       "A Post",
		"tag":         "technology",
		"description": "Summary",
		"content":     "<p>Body</p>",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return fields
}

func TestCreateBlog_DefaultsToDraft(t *testing.T) {
	app, _, _, auth := setupTest(t)

	status, env := createBlog(t, app, auth, blogFields(nil), nil)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))
	assert.Equal(t, models.BlogStatusDraft, blog.Status)
	assert.NotEmpty(t, blog.ID)
	assert.False(t, blog.CreatedAt.IsZero())
}

func TestCreateBlog_ExplicitStatus(t *testing.T) {
	app, _, _, auth := setupTest(t)

	status, env := createBlog(t, app, auth, blogFields(map[string]string{"status": "published"}), nil)
	require.Equal(t, http.StatusCreated, status)

	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))
	assert.Equal(t, models.BlogStatusPublished, blog.Status)
}

func TestCreateBlog_RejectsUnknownStatus(t *testing.T) {
	app, _, _, auth := setupTest(t)

	status, env := createBlog(t, app, auth, blogFields(map[string]string{"status": "archived"}), nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestCreateBlog_MissingRequiredFields(t *testing.T) {
	app, _, _, auth := setupTest(t)

	for _, field := range []string{"title", "tag", "description", "content"} {
		status, env := createBlog(t, app, auth, blogFields(map[string]string{field: "   "}), nil)
		assert.Equal(t, http.StatusBadRequest, status, "blank %s must be rejected", field)
		assert.False(t, env.Success)
	}
}

func TestCreateBlog_RequiresAuth(t *testing.T) {
	app, _, _, _ := setupTest(t)

	status, env := createBlog(t, app, "", blogFields(nil), nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
}

func TestCreateBlog_RoundTripVerbatim(t *testing.T) {
	app, _, _, auth := setupTest(t)

	fields := blogFields(map[string]string{
		"title":       "  Spaced Out  ",
		"subtitle":    " sub ",
		"description": " desc ",
		"content":     " <p>rich</p> ",
		"status":      "published",
	})
	status, env := createBlog(t, app, auth, fields, nil)
	require.Equal(t, http.StatusCreated, status)

	var created models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env := do(t, app, http.MethodGet, "/api/blogs/"+created.ID, "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Spaced Out", fetched.Title)
	assert.Equal(t, "sub", fetched.Subtitle)
	assert.Equal(t, "technology", fetched.Tag)
	assert.Equal(t, "desc", fetched.Description)
	assert.Equal(t, "<p>rich</p>", fetched.Content)
}

func TestCreateBlog_WithThumbnail(t *testing.T) {
	app, _, store, auth := setupTest(t)

	files := []testFile{{field: "thumbnail", name: "cover.png", contentType: "image/png", content: []byte("png-bytes")}}
	status, env := createBlog(t, app, auth, blogFields(nil), files)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 1, store.uploads)

	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))
	assert.NotEmpty(t, blog.ThumbnailURL)
	assert.NotEmpty(t, blog.ThumbnailID)
}

func TestCreateBlog_ThumbnailUploadFailure(t *testing.T) {
	app, db, store, auth := setupTest(t)
	store.failUpload = true

	files := []testFile{{field: "thumbnail", name: "cover.png", contentType: "image/png", content: []byte("png-bytes")}}
	status, env := createBlog(t, app, auth, blogFields(nil), files)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, env.Success)

	var count int64
	db.Model(&models.Blog{}).Count(&count)
	assert.Zero(t, count, "no record may exist after a failed thumbnail upload")
}

func TestCreateBlog_NonImageThumbnail(t *testing.T) {
	app, _, _, auth := setupTest(t)

	files := []testFile{{field: "thumbnail", name: "cover.pdf", contentType: "application/pdf", content: []byte("%PDF")}}
	status, _ := createBlog(t, app, auth, blogFields(nil), files)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateBlog_OversizeFile(t *testing.T) {
	app, _, _, auth := setupTest(t)

	files := []testFile{{field: "thumbnail", name: "big.png", contentType: "image/png", content: bytes.Repeat([]byte("x"), 5*1024*1024+1)}}
	status, env := createBlog(t, app, auth, blogFields(nil), files)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Message, "5MB")
}

func TestCreateBlog_SkipsNonImageGalleryFiles(t *testing.T) {
	app, _, store, auth := setupTest(t)

	files := []testFile{
		{field: "images", name: "one.jpg", contentType: "image/jpeg", content: []byte("jpg")},
		{field: "images", name: "notes.txt", contentType: "text/plain", content: []byte("text")},
	}
	status, env := createBlog(t, app, auth, blogFields(nil), files)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, []string{"notes.txt"}, env.SkippedFiles)
	assert.Equal(t, 1, store.uploads)

	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))
	require.Len(t, blog.Images, 1)
	assert.NotEmpty(t, blog.Images[0].PublicID)
}

func TestCreateBlog_TooManyGalleryFilesUploadsNothing(t *testing.T) {
	app, db, store, auth := setupTest(t)

	files := []testFile{{field: "thumbnail", name: "cover.png", contentType: "image/png", content: []byte("cover")}}
	for i := 0; i < 11; i++ {
		files = append(files, testFile{
			field: "images", name: fmt.Sprintf("img-%d.jpg", i),
			contentType: "image/jpeg", content: []byte("jpg"),
		})
	}
	status, env := createBlog(t, app, auth, blogFields(nil), files)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Message, "Maximum is 10")
	assert.Zero(t, store.uploads, "a rejected request must not write to the remote store")
	assert.Empty(t, store.deleted)

	var count int64
	db.Model(&models.Blog{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateBlog_OversizeGalleryFileUploadsNothing(t *testing.T) {
	app, _, store, auth := setupTest(t)

	files := []testFile{
		{field: "thumbnail", name: "cover.png", contentType: "image/png", content: []byte("cover")},
		{field: "images", name: "huge.jpg", contentType: "image/jpeg", content: bytes.Repeat([]byte("x"), 5*1024*1024+1)},
	}
	status, env := createBlog(t, app, auth, blogFields(nil), files)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Message, "5MB")
	assert.Zero(t, store.uploads)
}

func TestCreateBlog_MidGalleryFailureDiscardsEarlierUploads(t *testing.T) {
	app, db, store, auth := setupTest(t)
	store.failAfter = 2

	files := []testFile{
		{field: "thumbnail", name: "cover.png", contentType: "image/png", content: []byte("cover")},
		{field: "images", name: "one.jpg", contentType: "image/jpeg", content: []byte("jpg")},
		{field: "images", name: "two.jpg", contentType: "image/jpeg", content: []byte("jpg")},
	}
	status, env := createBlog(t, app, auth, blogFields(nil), files)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, env.Success)

	// The thumbnail and first gallery image made it out before the failure
	// and must both be retired again.
	assert.Equal(t, 2, store.uploads)
	assert.Len(t, store.deleted, 2)

	var count int64
	db.Model(&models.Blog{}).Count(&count)
	assert.Zero(t, count)
}

func TestPublicListing_IsPublishedSubset(t *testing.T) {
	app, _, _, auth := setupTest(t)

	createBlog(t, app, auth, blogFields(map[string]string{"title": "Draft one"}), nil)
	createBlog(t, app, auth, blogFields(map[string]string{"title": "Live one", "status": "published"}), nil)
	createBlog(t, app, auth, blogFields(map[string]string{"title": "Live two", "status": "published"}), nil)

	resp, env := do(t, app, http.MethodGet, "/api/blogs", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var public []models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &public))
	require.Len(t, public, 2)
	for _, b := range public {
		assert.Equal(t, models.BlogStatusPublished, b.Status)
	}

	resp, env = do(t, app, http.MethodGet, "/api/admin/blogs", auth, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var all []models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 3)
}

func TestGetPublished_DraftReadsAsNotFound(t *testing.T) {
	app, _, _, auth := setupTest(t)

	_, env := createBlog(t, app, auth, blogFields(nil), nil)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	resp, _ := do(t, app, http.MethodGet, "/api/blogs/"+blog.ID, "", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The admin variant still sees it
	resp, _ = do(t, app, http.MethodGet, "/api/admin/blogs/"+blog.ID, auth, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateBlog_PartialFields(t *testing.T) {
	app, _, _, auth := setupTest(t)

	_, env := createBlog(t, app, auth, blogFields(nil), nil)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	body, contentType := multipartBody(t, map[string]string{"title": "New Title"}, nil)
	resp, env := do(t, app, http.MethodPut, "/api/admin/blogs/"+blog.ID, auth, body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, blog.Tag, updated.Tag)
	assert.Equal(t, blog.Content, updated.Content)
}

func TestUpdateBlog_BlankProvidedFieldRejected(t *testing.T) {
	app, _, _, auth := setupTest(t)

	_, env := createBlog(t, app, auth, blogFields(nil), nil)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	body, contentType := multipartBody(t, map[string]string{"description": "   "}, nil)
	resp, _ := do(t, app, http.MethodPut, "/api/admin/blogs/"+blog.ID, auth, body, contentType)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateBlog_UnknownStatusSilentlyIgnored(t *testing.T) {
	app, _, _, auth := setupTest(t)

	_, env := createBlog(t, app, auth, blogFields(map[string]string{"status": "published"}), nil)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	body, contentType := multipartBody(t, map[string]string{"status": "archived", "title": "Renamed"}, nil)
	resp, env := do(t, app, http.MethodPut, "/api/admin/blogs/"+blog.ID, auth, body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, models.BlogStatusPublished, updated.Status, "unknown status value must be dropped, not applied")
}

func TestUpdateBlog_ReplacingThumbnailRetiresOldImage(t *testing.T) {
	app, _, store, auth := setupTest(t)

	files := []testFile{{field: "thumbnail", name: "old.png", contentType: "image/png", content: []byte("old")}}
	_, env := createBlog(t, app, auth, blogFields(nil), files)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))
	oldID := blog.ThumbnailID

	body, contentType := multipartBody(t, nil, []testFile{
		{field: "thumbnail", name: "new.png", contentType: "image/png", content: []byte("new")},
	})
	resp, env := do(t, app, http.MethodPut, "/api/admin/blogs/"+blog.ID, auth, body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.NotEqual(t, oldID, updated.ThumbnailID)
	assert.Contains(t, store.deleted, oldID)
}

func TestUpdateBlog_OldThumbnailDeleteFailureNotPropagated(t *testing.T) {
	app, _, store, auth := setupTest(t)

	files := []testFile{{field: "thumbnail", name: "old.png", contentType: "image/png", content: []byte("old")}}
	_, env := createBlog(t, app, auth, blogFields(nil), files)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	store.failDelete = true
	body, contentType := multipartBody(t, nil, []testFile{
		{field: "thumbnail", name: "new.png", contentType: "image/png", content: []byte("new")},
	})
	resp, env := do(t, app, http.MethodPut, "/api/admin/blogs/"+blog.ID, auth, body, contentType)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
}

func TestDeleteBlog_RemovesRecordAndRemoteImages(t *testing.T) {
	app, db, store, auth := setupTest(t)

	files := []testFile{
		{field: "thumbnail", name: "cover.png", contentType: "image/png", content: []byte("cover")},
		{field: "images", name: "extra.jpg", contentType: "image/jpeg", content: []byte("extra")},
	}
	_, env := createBlog(t, app, auth, blogFields(nil), files)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	resp, env := do(t, app, http.MethodDelete, "/api/admin/blogs/"+blog.ID, auth, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var count int64
	db.Model(&models.Blog{}).Where("id = ?", blog.ID).Count(&count)
	assert.Zero(t, count)
	assert.Len(t, store.deleted, 2)
}

func TestDeleteBlog_RemoteFailureIsPartialSuccess(t *testing.T) {
	app, db, store, auth := setupTest(t)

	files := []testFile{{field: "thumbnail", name: "cover.png", contentType: "image/png", content: []byte("cover")}}
	_, env := createBlog(t, app, auth, blogFields(nil), files)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	store.failDelete = true
	resp, env := do(t, app, http.MethodDelete, "/api/admin/blogs/"+blog.ID, auth, nil, "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "deleted")

	// The database delete is not rolled back
	var count int64
	db.Model(&models.Blog{}).Where("id = ?", blog.ID).Count(&count)
	assert.Zero(t, count)
}

// setupCacheTest backs the cache package with an embedded Redis for the
// duration of one test. The client is torn down afterwards so the rest of
// the suite keeps running cache-free.
func setupCacheTest(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	t.Cleanup(func() { cache.SetClient(nil, 0) })
	return mr
}

func TestPublicReads_ServedFromCacheOnceWarm(t *testing.T) {
	app, _, _, auth := setupTest(t)
	mr := setupCacheTest(t)

	_, env := createBlog(t, app, auth, blogFields(map[string]string{"status": "published"}), nil)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	// First reads go to the database and warm both keys
	resp, _ := do(t, app, http.MethodGet, "/api/blogs", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, app, http.MethodGet, "/api/blogs/"+blog.ID, "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, mr.Exists(cache.KeyPublishedBlogs))
	assert.True(t, mr.Exists(cache.BlogKey(blog.ID)))

	// A warm key short-circuits the database entirely: overwrite the cached
	// payload and the endpoint must echo the overwrite.
	require.NoError(t, mr.Set(cache.BlogKey(blog.ID), `{"title":"From Cache"}`))
	resp, env = do(t, app, http.MethodGet, "/api/blogs/"+blog.ID, "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cached models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &cached))
	assert.Equal(t, "From Cache", cached.Title)
}

func TestAdminWrites_DropCachedPublicReads(t *testing.T) {
	app, _, _, auth := setupTest(t)
	mr := setupCacheTest(t)

	_, env := createBlog(t, app, auth, blogFields(map[string]string{"status": "published"}), nil)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	warm := func() {
		resp, _ := do(t, app, http.MethodGet, "/api/blogs", "", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp, _ = do(t, app, http.MethodGet, "/api/blogs/"+blog.ID, "", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.True(t, mr.Exists(cache.KeyPublishedBlogs))
		require.True(t, mr.Exists(cache.BlogKey(blog.ID)))
	}

	// Unpublishing drops both keys, and the stale copy must not resurrect
	// the post publicly.
	warm()
	body := strings.NewReader(`{"status":"draft"}`)
	resp, _ := do(t, app, http.MethodPatch, "/api/admin/blogs/"+blog.ID+"/status", auth, body, "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, mr.Exists(cache.KeyPublishedBlogs))
	assert.False(t, mr.Exists(cache.BlogKey(blog.ID)))
	resp, _ = do(t, app, http.MethodGet, "/api/blogs/"+blog.ID, "", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body = strings.NewReader(`{"status":"published"}`)
	resp, _ = do(t, app, http.MethodPatch, "/api/admin/blogs/"+blog.ID+"/status", auth, body, "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Editing drops both keys
	warm()
	mpBody, contentType := multipartBody(t, map[string]string{"title": "Edited"}, nil)
	resp, _ = do(t, app, http.MethodPut, "/api/admin/blogs/"+blog.ID, auth, mpBody, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, mr.Exists(cache.KeyPublishedBlogs))
	assert.False(t, mr.Exists(cache.BlogKey(blog.ID)))

	// Deleting drops both keys
	warm()
	resp, _ = do(t, app, http.MethodDelete, "/api/admin/blogs/"+blog.ID, auth, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, mr.Exists(cache.KeyPublishedBlogs))
	assert.False(t, mr.Exists(cache.BlogKey(blog.ID)))
}

func TestUpdateStatus_TogglesAndIsIdempotent(t *testing.T) {
	app, _, _, auth := setupTest(t)

	_, env := createBlog(t, app, auth, blogFields(nil), nil)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	patch := func(status string) (*http.Response, envelope) {
		body := strings.NewReader(fmt.Sprintf(`{"status":%q}`, status))
		return do(t, app, http.MethodPatch, "/api/admin/blogs/"+blog.ID+"/status", auth, body, "application/json")
	}

	resp, env := patch("published")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.BlogStatusPublished, updated.Status)

	// Same value again: still OK, still published
	resp, env = patch("published")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.BlogStatusPublished, updated.Status)

	resp, env = patch("draft")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.BlogStatusDraft, updated.Status)
}

func TestUpdateStatus_RejectsUnknownValue(t *testing.T) {
	app, _, _, auth := setupTest(t)

	_, env := createBlog(t, app, auth, blogFields(nil), nil)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(env.Data, &blog))

	body := strings.NewReader(`{"status":"archived"}`)
	resp, _ := do(t, app, http.MethodPatch, "/api/admin/blogs/"+blog.ID+"/status", auth, body, "application/json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

package blogs

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/inkwell/inkwell/api/internal/imagestore"
)

const (
	// Per-file upload cap, matching the public contract
	maxFileSize = 5 * 1024 * 1024

	// Upper bound on the additional image gallery
	maxGalleryFiles = 10
)

var errNotAnImage = errors.New("Only image files are allowed")

func isImage(fh *multipart.FileHeader) bool {
	return strings.HasPrefix(fh.Header.Get("Content-Type"), "image/")
}

// uploadFile pushes one multipart file to the remote image store and returns
// the URL + object key pair. The pair is treated as atomic: a result missing
// either half is an upload failure.
func uploadFile(fh *multipart.FileHeader) (*imagestore.UploadResult, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	result, err := imagestore.GetStore().Upload(fh.Filename, file, fh.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	if result.URL == "" || result.PublicID == "" {
		return nil, errors.New("image store returned an incomplete reference")
	}
	return result, nil
}

// discardUploads removes objects written for a request that was abandoned
// mid-flight. Best effort: a failed delete leaves the object orphaned and is
// only logged.
func discardUploads(publicIDs []string) {
	store := imagestore.GetStore()
	for _, id := range publicIDs {
		if err := store.Delete(id); err != nil {
			log.Printf("Failed to delete orphaned remote image %s: %v", id, err)
		}
	}
}

// Package storage persists uploaded images (profile pictures, room and menu
// photos) on the local filesystem. Stored names are random so nothing about
// the uploader leaks into the URL.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the public route prefix the HTTP layer serves uploads under.
const URLPrefix = "/uploads"

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// Uploads writes files into a single directory and hands back the public
// path they will be served from.
type Uploads struct {
	dir string
}

// NewUploads ensures the upload directory exists.
func NewUploads(dir string) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Uploads{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (u *Uploads) Dir() string {
	return u.dir
}

// Save stores the uploaded file under a random name and returns its public
// path (e.g. "/uploads/5e0a…e1.png").
func (u *Uploads) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return URLPrefix + "/" + name, nil
}

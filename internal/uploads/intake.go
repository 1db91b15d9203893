// Package uploads stores candidate resume files. Only the file name
// extension and declared size are validated; content is never inspected.
package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/shared/storage/object"
)

// MaxFileBytes is the upload size ceiling.
const MaxFileBytes = 5 << 20 // 5 MiB

// PublicPathPrefix is the URL prefix under which stored files are served.
const PublicPathPrefix = "/uploads/"

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// StoredFile references a persisted upload.
type StoredFile struct {
	Name      string // generated storage name, e.g. resumeFile-1712345678901-a1b2c3d4.pdf
	URL       string // public path, e.g. /uploads/resumeFile-1712345678901-a1b2c3d4.pdf
	SizeBytes int64
}

// Intake validates and persists uploaded files.
type Intake struct {
	Store object.ObjectStore
}

// NewIntake constructs an Intake backed by the given object store.
func NewIntake(store object.ObjectStore) *Intake {
	return &Intake{Store: store}
}

// StoreFile validates extension and declared size, writes the bytes under a
// collision-resistant generated name and returns the stored reference.
// Failures are terminal per request; there are no retries.
func (i *Intake) StoreFile(ctx context.Context, field, originalName string, declaredSize int64, r io.Reader) (StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return StoredFile{}, ErrInvalidFileType
	}
	if declaredSize > MaxFileBytes {
		return StoredFile{}, ErrFileTooLarge
	}
	if strings.TrimSpace(field) == "" {
		field = "resumeFile"
	}

	name := generateName(field, ext)
	size, err := i.Store.Save(ctx, name, io.LimitReader(r, MaxFileBytes))
	if err != nil {
		return StoredFile{}, fmt.Errorf("store upload: %w", err)
	}

	return StoredFile{
		Name:      name,
		URL:       PublicPathPrefix + name,
		SizeBytes: size,
	}, nil
}

// Open returns a reader over a stored file. Missing files surface as
// ErrNotFound regardless of the backing store.
func (i *Intake) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := i.Store.Open(ctx, name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// generateName combines the form field, current time and a random component
// so concurrent uploads cannot collide.
func generateName(field, ext string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), random, ext)
}

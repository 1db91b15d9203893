package uploads

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	"jobboard-backend/internal/shared/storage/object/local"
)

func newTestIntake(t *testing.T) *Intake {
	t.Helper()
	return NewIntake(local.New(t.TempDir()))
}

func TestStoreFileRejectsDisallowedExtension(t *testing.T) {
	intake := newTestIntake(t)
	for _, name := range []string{"resume.exe", "resume.txt", "resume", "resume.pdf.sh"} {
		_, err := intake.StoreFile(context.Background(), "resumeFile", name, 10, bytes.NewReader([]byte("x")))
		if !errors.Is(err, ErrInvalidFileType) {
			t.Errorf("StoreFile(%q) error = %v, want ErrInvalidFileType", name, err)
		}
	}
}

func TestStoreFileAllowsExtensionCaseInsensitive(t *testing.T) {
	intake := newTestIntake(t)
	for _, name := range []string{"resume.PDF", "resume.Doc", "resume.DOCX"} {
		if _, err := intake.StoreFile(context.Background(), "resumeFile", name, 10, bytes.NewReader([]byte("x"))); err != nil {
			t.Errorf("StoreFile(%q) unexpected error: %v", name, err)
		}
	}
}

func TestStoreFileRejectsOversizedUpload(t *testing.T) {
	intake := newTestIntake(t)
	_, err := intake.StoreFile(context.Background(), "resumeFile", "resume.pdf", MaxFileBytes+1, bytes.NewReader(nil))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("error = %v, want ErrFileTooLarge", err)
	}
}

func TestStoreFileRoundTrip(t *testing.T) {
	intake := newTestIntake(t)
	content := []byte("%PDF-1.4 fake resume bytes")

	stored, err := intake.StoreFile(context.Background(), "resumeFile", "resume.pdf", int64(len(content)), bytes.NewReader(content))
	if err != nil {
		t.Fatalf("StoreFile: %v", err)
	}

	pattern := regexp.MustCompile(`^resumeFile-\d+-[0-9a-f]{8}\.pdf$`)
	if !pattern.MatchString(stored.Name) {
		t.Errorf("stored name %q does not match pattern", stored.Name)
	}
	if stored.URL != PublicPathPrefix+stored.Name {
		t.Errorf("stored URL %q does not reference stored name", stored.URL)
	}
	if stored.SizeBytes != int64(len(content)) {
		t.Errorf("stored size = %d, want %d", stored.SizeBytes, len(content))
	}

	f, err := intake.Open(context.Background(), stored.Name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("stored bytes differ from input")
	}
}

func TestOpenMissingFileReturnsNotFound(t *testing.T) {
	intake := newTestIntake(t)
	_, err := intake.Open(context.Background(), "resumeFile-1-deadbeef.pdf")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestStoreFileDistinctNamesForIdenticalUploads(t *testing.T) {
	intake := newTestIntake(t)
	content := []byte("same bytes")

	first, err := intake.StoreFile(context.Background(), "resumeFile", "resume.pdf", int64(len(content)), bytes.NewReader(content))
	if err != nil {
		t.Fatalf("first StoreFile: %v", err)
	}
	second, err := intake.StoreFile(context.Background(), "resumeFile", "resume.pdf", int64(len(content)), bytes.NewReader(content))
	if err != nil {
		t.Fatalf("second StoreFile: %v", err)
	}
	if first.Name == second.Name {
		t.Errorf("identical uploads produced the same stored name %q", first.Name)
	}
}

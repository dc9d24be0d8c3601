package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type localStorage struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

// NewLocalStorage writes photos under dir and reports them as urlPrefix/<name>.
// dir is created when missing. File names carry now in milliseconds.
func NewLocalStorage(dir, urlPrefix string, now func() time.Time) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &localStorage{dir: dir, urlPrefix: urlPrefix, now: now}, nil
}

func (s *localStorage) UploadImage(ctx context.Context, r io.Reader, fileName string) (string, error) {
	name := fmt.Sprintf("photo-%d-%s%s", s.now().UnixMilli(), uuid.NewString()[:8], filepath.Ext(filepath.Base(fileName)))
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}

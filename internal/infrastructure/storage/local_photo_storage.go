package storage

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"homeclean/internal/usecase/interfaces"
)

const requestPhotoDir = "service-requests"

// LocalPhotoStorage writes uploaded photos under baseDir and yields the
// relative path the HTTP layer serves them from.
type LocalPhotoStorage struct {
	baseDir string
}

var _ interfaces.IPhotoStorage = (*LocalPhotoStorage)(nil)

func NewLocalPhotoStorage(baseDir string) (*LocalPhotoStorage, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, requestPhotoDir), 0o755); err != nil {
		log.Printf("[storage][photos] failed creating upload dir dir=%s err=%v", baseDir, err)
		return nil, err
	}
	return &LocalPhotoStorage{baseDir: baseDir}, nil
}

func (s *LocalPhotoStorage) Save(ctx context.Context, filename string, contents io.Reader) (string, error) {
	rel := filepath.ToSlash(filepath.Join(requestPhotoDir, filepath.Base(filename)))
	full := filepath.Join(s.baseDir, requestPhotoDir, filepath.Base(filename))

	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, contents); err != nil {
		f.Close()
		os.Remove(full)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", err
	}
	return rel, nil
}

func (s *LocalPhotoStorage) Remove(ctx context.Context, path string) error {
	rel := filepath.FromSlash(strings.TrimPrefix(path, "/"))
	full := filepath.Join(s.baseDir, rel)
	if !strings.HasPrefix(full, filepath.Clean(s.baseDir)+string(os.PathSeparator)) {
		return os.ErrNotExist
	}
	return os.Remove(full)
}

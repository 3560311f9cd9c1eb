package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalPhotoStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("save yields relative path and writes the file", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewLocalPhotoStorage(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		path, err := s.Save(ctx, "abc.jpg", strings.NewReader("photo-bytes"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "service-requests/abc.jpg" {
			t.Fatalf("unexpected path %q", path)
		}

		b, err := os.ReadFile(filepath.Join(dir, "service-requests", "abc.jpg"))
		if err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
		if string(b) != "photo-bytes" {
			t.Fatalf("unexpected contents %q", b)
		}
	})

	t.Run("save strips directory components from the filename", func(t *testing.T) {
		dir := t.TempDir()
		s, _ := NewLocalPhotoStorage(dir)

		path, err := s.Save(ctx, "../../evil.jpg", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "service-requests/evil.jpg" {
			t.Fatalf("unexpected path %q", path)
		}
	})

	t.Run("remove deletes a stored file", func(t *testing.T) {
		dir := t.TempDir()
		s, _ := NewLocalPhotoStorage(dir)

		path, err := s.Save(ctx, "gone.png", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Remove(ctx, path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "service-requests", "gone.png")); !os.IsNotExist(err) {
			t.Fatalf("expected file removed, stat err=%v", err)
		}
	})

	t.Run("remove refuses paths escaping the base dir", func(t *testing.T) {
		dir := t.TempDir()
		s, _ := NewLocalPhotoStorage(dir)

		if err := s.Remove(ctx, "../outside.txt"); err == nil {
			t.Fatalf("expected error for escaping path")
		}
	})
}

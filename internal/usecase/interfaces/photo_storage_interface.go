package interfaces

import (
	"context"
	"io"
)

// IPhotoStorage stores uploaded request photos and yields the public relative
// path under which each stored file is served.

type IPhotoStorage interface {
	Save(ctx context.Context, filename string, contents io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Open when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// StoredObject is an open handle on a stored file. Callers must close Body.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ObjectStorage stores user-uploaded images.
type ObjectStorage interface {
	// PutImage validates size and sniffed content type, stores the image under prefix,
	// and returns its public URL.
	PutImage(ctx context.Context, prefix string, content io.Reader) (publicURL string, err error)

	// Open returns the object stored under key.
	Open(ctx context.Context, key string) (*StoredObject, error)
}

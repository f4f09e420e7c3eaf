package service

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned by ImageStore when the object is absent.
var ErrObjectNotFound = errors.New("object not found")

// ImageStore reads image objects from the platform's blob bucket.
type ImageStore interface {
	// Read returns the raw bytes of the object at the given path.
	Read(ctx context.Context, path string) ([]byte, error)

	// Exists reports whether the object is present in the bucket.
	Exists(ctx context.Context, path string) (bool, error)
}

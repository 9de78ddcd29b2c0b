package service

import (
	"context"
	"io"
)

// FileStore abstracts the object storage that receives uploaded files.
type FileStore interface {
	// Save writes the content under the given key with the given content
	// type, overwriting any existing object.
	Save(ctx context.Context, key, contentType string, r io.Reader) error

	// PublicURL returns the externally reachable URL for a stored key.
	PublicURL(key string) string
}

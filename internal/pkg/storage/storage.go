package storage

import (
	"context"
	"io"
)

// BlobStore is the opaque file store behind attachment uploads. Services only
// see object names; the physical backend is injectable so tests can use an
// in-memory fake.
type BlobStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

// Package storage wraps the S3-compatible bucket that holds trust-center documents.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrObjectNotFound is returned when the requested key is absent from the bucket.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is the read side of an S3-compatible object store.
type Storage interface {
	// Stat returns object metadata, or ErrObjectNotFound.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

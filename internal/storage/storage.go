// Package storage persists uploaded document bytes.
//
// Two backends exist: the local upload directory (default) and an
// S3-compatible bucket through MinIO. Both stream; neither buffers whole files.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned by Get for unknown keys.
var ErrNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for storing objects.
// Size should be the exact number of bytes if known, or -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage stores and retrieves uploads by key.
type Storage interface {
	// Put stores the content of r under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get opens the object stored under key. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
}

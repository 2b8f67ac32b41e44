// Package blobstore abstracts where persisted index files live.
//
// The engine itself only produces and consumes byte streams; a BlobStore
// decides whether those bytes sit on the local filesystem, in memory, or in
// an object store. Remote backends live in the minio and s3 subpackages.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error satisfying errors.Is(err, ErrNotFound);
// the default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// BlobStore stores immutable, whole-file blobs under flat names.
type BlobStore interface {
	// Open opens an existing blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Put writes a blob atomically, replacing any existing blob of the
	// same name.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to stored bytes.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the blob length in bytes.
	Size() int64
}

// Reader adapts a Blob to a sequential io.Reader over its full contents.
func Reader(b Blob) io.Reader {
	return io.NewSectionReader(b, 0, b.Size())
}

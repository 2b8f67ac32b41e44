// Package codec serializes inverted indexes to and from byte streams.
//
// The canonical on-disk representation is the Binary codec; its layout is
// fixed for interoperability and round-trips every valid index, including
// the empty one. JSON is provided as a portable, human-inspectable
// alternative, and the Zstd/LZ4 codecs wrap any inner codec with stream
// compression. Codec selection is a compatibility boundary: bytes written
// by one codec are only readable by the same codec.
package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/madekit/invidx/index"
)

// ErrCorrupt is the sentinel matched by all decode failures. Use
// errors.Is(err, ErrCorrupt) to distinguish data corruption from I/O errors.
var ErrCorrupt = errors.New("corrupt index")

// CorruptError reports a decode failure together with the byte offset into
// the stream at which the violation was detected.
type CorruptError struct {
	Offset int64
	Reason string
	cause  error
}

func (e *CorruptError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("corrupt index at byte %d: %s: %v", e.Offset, e.Reason, e.cause)
	}
	return fmt.Sprintf("corrupt index at byte %d: %s", e.Offset, e.Reason)
}

func (e *CorruptError) Unwrap() error { return e.cause }

func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }

func corrupt(offset int64, reason string, cause error) error {
	return &CorruptError{Offset: offset, Reason: reason, cause: cause}
}

// Codec encodes and decodes inverted indexes.
// Implementations must be stateless and safe for concurrent use.
type Codec interface {
	// Encode writes idx to w. It never fails for a validly-built index;
	// only writer errors propagate.
	Encode(w io.Writer, idx *index.Index) error
	// Decode reads an index from r. It either returns a fully-populated
	// index or an error satisfying errors.Is(err, ErrCorrupt); it never
	// silently returns a partial index.
	Decode(r io.Reader) (*index.Index, error)
	// Name returns the codec's stable registry name.
	Name() string
}

// Default is the codec used when callers do not choose one.
var Default Codec = Binary{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "binary":
		return Binary{}, true
	case "json":
		return JSON{}, true
	case "binary+zstd":
		return Zstd{Inner: Binary{}}, true
	case "binary+lz4":
		return LZ4{Inner: Binary{}}, true
	default:
		return nil, false
	}
}

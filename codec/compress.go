package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/madekit/invidx/index"
)

// Zstd wraps an inner codec with zstd stream compression. Postings lists of
// common words compress well; zstd gives the better ratio and is the right
// choice for cold indexes.
type Zstd struct {
	Inner Codec
}

func (c Zstd) inner() Codec {
	if c.Inner != nil {
		return c.Inner
	}
	return Binary{}
}

// Name returns the inner codec's name with a "+zstd" suffix.
func (c Zstd) Name() string { return c.inner().Name() + "+zstd" }

// Encode compresses the inner encoding with zstd.
func (c Zstd) Encode(w io.Writer, idx *index.Index) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := c.inner().Encode(zw, idx); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// Decode decompresses and delegates to the inner codec. A stream that is not
// valid zstd surfaces as a corrupt-index error.
func (c Zstd) Decode(r io.Reader) (*index.Index, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, corrupt(0, "invalid zstd stream", err)
	}
	defer zr.Close()
	return c.inner().Decode(zr)
}

// LZ4 wraps an inner codec with LZ4 frame compression, trading ratio for
// speed relative to Zstd.
type LZ4 struct {
	Inner Codec
}

func (c LZ4) inner() Codec {
	if c.Inner != nil {
		return c.Inner
	}
	return Binary{}
}

// Name returns the inner codec's name with a "+lz4" suffix.
func (c LZ4) Name() string { return c.inner().Name() + "+lz4" }

// Encode compresses the inner encoding in LZ4 frame format.
func (c LZ4) Encode(w io.Writer, idx *index.Index) error {
	lw := lz4.NewWriter(w)
	if err := c.inner().Encode(lw, idx); err != nil {
		_ = lw.Close()
		return err
	}
	return lw.Close()
}

// Decode decompresses and delegates to the inner codec.
func (c LZ4) Decode(r io.Reader) (*index.Index, error) {
	return c.inner().Decode(lz4.NewReader(r))
}

package invidx

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/madekit/invidx/blobstore"
	"github.com/madekit/invidx/corpus"
	"github.com/madekit/invidx/index"
	"github.com/madekit/invidx/search"
	"github.com/madekit/invidx/tokenizer"
)

// ErrDuplicateDocID is returned by BuildIndex when the corpus contains the
// same document id twice.
var ErrDuplicateDocID = errors.New("duplicate document id")

// BuildIndex tokenizes docs and builds an immutable inverted index.
//
// Tokenization is pure per document and runs on Options.Workers goroutines;
// the postings builder itself stays single-writer, so the result is
// independent of scheduling.
func BuildIndex(ctx context.Context, docs []corpus.Document, opts ...Option) (*index.Index, error) {
	o := applyOptions(opts)

	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		if _, dup := seen[doc.ID]; dup {
			err := fmt.Errorf("%w: %q", ErrDuplicateDocID, doc.ID)
			o.Logger.LogBuild(ctx, len(docs), 0, err)
			return nil, err
		}
		seen[doc.ID] = struct{}{}
	}

	counts := make([]map[string]int, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[i] = tokenizer.Count(doc.Text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.Logger.LogBuild(ctx, len(docs), 0, err)
		return nil, err
	}

	b := index.NewBuilder()
	for i, doc := range docs {
		b.AddCounts(doc.ID, counts[i])
	}
	idx := b.Finalize()

	o.Logger.LogBuild(ctx, len(docs), idx.NumTerms(), nil)
	return idx, nil
}

// SaveIndex encodes idx with the configured codec and writes it to the
// named blob. The write is atomic at the store level; a failed save never
// replaces an existing index.
func SaveIndex(ctx context.Context, store blobstore.BlobStore, name string, idx *index.Index, opts ...Option) error {
	o := applyOptions(opts)

	var buf bytes.Buffer
	if err := o.Codec.Encode(&buf, idx); err != nil {
		o.Logger.LogSave(ctx, name, o.Codec.Name(), 0, err)
		return fmt.Errorf("encode index: %w", err)
	}
	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		o.Logger.LogSave(ctx, name, o.Codec.Name(), buf.Len(), err)
		return fmt.Errorf("store index %q: %w", name, err)
	}

	o.Logger.LogSave(ctx, name, o.Codec.Name(), buf.Len(), nil)
	return nil
}

// LoadIndex reads and decodes the named blob with the configured codec.
// Corruption is surfaced, never recovered: the error satisfies
// errors.Is(err, codec.ErrCorrupt) and is not accompanied by a partial
// index.
func LoadIndex(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*index.Index, error) {
	o := applyOptions(opts)

	blob, err := store.Open(ctx, name)
	if err != nil {
		o.Logger.LogLoad(ctx, name, o.Codec.Name(), 0, err)
		return nil, fmt.Errorf("open index %q: %w", name, err)
	}
	defer blob.Close()

	// Batch reads; the binary decoder issues many small ones and blobs may
	// be remote.
	idx, err := o.Codec.Decode(bufio.NewReaderSize(blobstore.Reader(blob), 256*1024))
	if err != nil {
		o.Logger.LogLoad(ctx, name, o.Codec.Name(), 0, err)
		return nil, fmt.Errorf("decode index %q: %w", name, err)
	}

	o.Logger.LogLoad(ctx, name, o.Codec.Name(), idx.NumTerms(), nil)
	return idx, nil
}

// Query returns up to topN document ids containing every word, best first.
// See search.Engine for the ranking contract.
func Query(idx *index.Index, words []string, topN int) ([]string, error) {
	return search.New(idx).Query(words, topN)
}

package index

import (
	"iter"
	"sort"
)

// Builder accumulates postings while a corpus is indexed.
//
// A Builder is single-writer: concurrent Add calls require external
// synchronization. Adding the same document id twice within one build is
// caller error; the builder does not deduplicate documents. Finalize hands
// the completed, immutable Index to the caller and resets the builder.
type Builder struct {
	lists map[string][]Posting
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		lists: make(map[string][]Posting),
	}
}

// Add tokenizes nothing itself; it consumes an already-normalized token
// sequence for one document and records a posting per distinct token.
func (b *Builder) Add(docID string, tokens iter.Seq[string]) {
	counts := make(map[string]int)
	for t := range tokens {
		counts[t]++
	}
	b.AddCounts(docID, counts)
}

// AddCounts records pre-aggregated term frequencies for one document.
// Tokens with a non-positive count are ignored.
func (b *Builder) AddCounts(docID string, counts map[string]int) {
	for term, count := range counts {
		if count <= 0 {
			continue
		}
		b.lists[term] = append(b.lists[term], Posting{DocID: docID, Frequency: uint32(count)})
	}
}

// Finalize sorts every postings list by ascending document id, returns the
// completed Index, and resets the builder for reuse. Terms that never
// received a posting cannot occur, so the result has no empty entries.
func (b *Builder) Finalize() *Index {
	lists := make(map[string]PostingList, len(b.lists))
	for term, postings := range b.lists {
		sort.Slice(postings, func(i, j int) bool {
			return postings[i].DocID < postings[j].DocID
		})
		lists[term] = postings
	}
	b.lists = make(map[string][]Posting)
	return newIndexUnchecked(lists)
}

// Package index implements the in-memory inverted index: a mapping from
// normalized term to the ordered list of documents containing it.
//
// An Index is immutable once built. Within one term's postings list,
// document ids are strictly increasing and each document appears at most
// once, which allows queries to intersect lists with a sorted merge.
// Construction goes through a Builder (or NewIndex for already-assembled
// postings); after that the index may be shared by any number of concurrent
// readers without locking.
package index

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnsortedPostings indicates a postings list whose document ids are
	// not strictly increasing.
	ErrUnsortedPostings = errors.New("postings not strictly increasing")

	// ErrEmptyPostings indicates a term mapped to an empty postings list.
	ErrEmptyPostings = errors.New("empty postings list")

	// ErrZeroFrequency indicates a posting with a non-positive frequency.
	ErrZeroFrequency = errors.New("posting frequency must be positive")
)

// Posting records that a term occurs Frequency times in the document DocID.
type Posting struct {
	DocID     string
	Frequency uint32
}

// PostingList is the ordered postings of one term, document ids ascending.
type PostingList []Posting

// Index is an immutable inverted index.
type Index struct {
	lists map[string]PostingList
	terms []string // sorted
	docs  []string // sorted union of all posting document ids
}

// NewIndex builds an Index from assembled postings lists, validating the
// format invariants: no empty lists, strictly increasing document ids,
// positive frequencies. The input map is retained; callers must not mutate
// it afterwards.
func NewIndex(lists map[string]PostingList) (*Index, error) {
	for term, postings := range lists {
		if len(postings) == 0 {
			return nil, fmt.Errorf("term %q: %w", term, ErrEmptyPostings)
		}
		for i, p := range postings {
			if p.Frequency == 0 {
				return nil, fmt.Errorf("term %q, document %q: %w", term, p.DocID, ErrZeroFrequency)
			}
			if i > 0 && postings[i-1].DocID >= p.DocID {
				return nil, fmt.Errorf("term %q at position %d: %w", term, i, ErrUnsortedPostings)
			}
		}
	}
	return newIndexUnchecked(lists), nil
}

// newIndexUnchecked assumes lists already satisfy the invariants.
func newIndexUnchecked(lists map[string]PostingList) *Index {
	terms := make([]string, 0, len(lists))
	docSet := make(map[string]struct{})
	for term, postings := range lists {
		terms = append(terms, term)
		for _, p := range postings {
			docSet[p.DocID] = struct{}{}
		}
	}
	sort.Strings(terms)

	docs := make([]string, 0, len(docSet))
	for id := range docSet {
		docs = append(docs, id)
	}
	sort.Strings(docs)

	return &Index{lists: lists, terms: terms, docs: docs}
}

// Postings returns the postings list for term. The returned slice is shared
// and must not be modified.
func (x *Index) Postings(term string) (PostingList, bool) {
	postings, ok := x.lists[term]
	return postings, ok
}

// Terms returns all indexed terms in ascending order. The returned slice is
// shared and must not be modified.
func (x *Index) Terms() []string {
	return x.terms
}

// Documents returns the ids of all documents present in the index, in
// ascending order. A document that produced no tokens is not present.
func (x *Index) Documents() []string {
	return x.docs
}

// NumTerms returns the number of distinct indexed terms.
func (x *Index) NumTerms() int {
	return len(x.terms)
}

// NumDocuments returns the number of documents present in the index.
func (x *Index) NumDocuments() int {
	return len(x.docs)
}

// Equal reports whether two indexes hold structurally identical postings.
func (x *Index) Equal(other *Index) bool {
	if other == nil || len(x.lists) != len(other.lists) {
		return false
	}
	for term, postings := range x.lists {
		theirs, ok := other.lists[term]
		if !ok || len(theirs) != len(postings) {
			return false
		}
		for i, p := range postings {
			if theirs[i] != p {
				return false
			}
		}
	}
	return true
}

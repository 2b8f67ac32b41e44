// Package search answers conjunctive containment queries against an
// immutable inverted index.
//
// A query is a set of normalized words; a document matches when it contains
// every word at least once. Matching document ids are intersected with a
// k-way sorted merge over the per-word postings lists and ranked by the sum
// of per-word frequencies, ties broken by document id, so results are fully
// deterministic. Queries never mutate the index, so a single Engine may be
// used from any number of goroutines.
package search

import (
	"errors"
	"sort"

	"github.com/madekit/invidx/index"
)

// ErrInvalidTopN is returned when the requested result count is not positive.
var ErrInvalidTopN = errors.New("top-n must be positive")

// Match is one ranked query result.
type Match struct {
	DocID string
	// Score is the sum of the query words' frequencies in the document.
	// Documents matched by an empty query score 0.
	Score int
}

// Engine borrows read-only access to an index for the duration of queries.
type Engine struct {
	idx *index.Index
}

// New creates an Engine over idx.
func New(idx *index.Index) *Engine {
	return &Engine{idx: idx}
}

// Query returns up to topN document ids containing every word, ranked by
// descending score with ascending document id as tie-break. Duplicate words
// are collapsed. A word absent from the index makes the result empty; an
// empty word set matches every document in the corpus with score 0.
func (e *Engine) Query(words []string, topN int) ([]string, error) {
	matches, err := e.QueryScored(words, topN)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.DocID
	}
	return ids, nil
}

// QueryScored is Query with scores attached.
func (e *Engine) QueryScored(words []string, topN int) ([]Match, error) {
	if topN <= 0 {
		return nil, ErrInvalidTopN
	}

	unique := dedupe(words)
	if len(unique) == 0 {
		return e.wholeCorpus(topN), nil
	}

	lists := make([]index.PostingList, 0, len(unique))
	for _, word := range unique {
		postings, ok := e.idx.Postings(word)
		if !ok {
			// Conjunctive query: one absent word empties the result.
			return nil, nil
		}
		lists = append(lists, postings)
	}

	matches := intersect(lists)
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].DocID < matches[j].DocID
	})
	if len(matches) > topN {
		matches = matches[:topN]
	}
	return matches, nil
}

func (e *Engine) wholeCorpus(topN int) []Match {
	docs := e.idx.Documents()
	if len(docs) > topN {
		docs = docs[:topN]
	}
	matches := make([]Match, len(docs))
	for i, id := range docs {
		matches[i] = Match{DocID: id}
	}
	return matches
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	unique := words[:0:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		unique = append(unique, w)
	}
	return unique
}

// intersect merges k sorted postings lists, emitting one Match per document
// id present in all of them. Correct because postings are strictly
// increasing and deduplicated within each list.
func intersect(lists []index.PostingList) []Match {
	iters := make([]listIterator, len(lists))
	for i, list := range lists {
		iters[i] = listIterator{postings: list}
	}

	var matches []Match
	candidate, ok := iters[0].doc()
	if !ok {
		return nil
	}
	for {
		// Advance every iterator to the candidate. Whenever one overshoots,
		// its head becomes the new candidate and the pass repeats; the
		// document matches once all heads agree.
		agreed := true
		for i := range iters {
			it := &iters[i]
			it.advance(candidate)
			doc, ok := it.doc()
			if !ok {
				return matches
			}
			if doc > candidate {
				candidate = doc
				agreed = false
			}
		}
		if !agreed {
			continue
		}

		score := 0
		for i := range iters {
			score += int(iters[i].head().Frequency)
			iters[i].next()
		}
		matches = append(matches, Match{DocID: candidate, Score: score})

		candidate, ok = iters[0].doc()
		if !ok {
			return matches
		}
	}
}

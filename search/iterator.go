package search

import "github.com/madekit/invidx/index"

// listIterator walks one postings list during the merge.
type listIterator struct {
	postings index.PostingList
	pos      int
}

// doc returns the current document id, or false when exhausted.
func (it *listIterator) doc() (string, bool) {
	if it.pos >= len(it.postings) {
		return "", false
	}
	return it.postings[it.pos].DocID, true
}

// head returns the current posting. Only valid while doc() reports true.
func (it *listIterator) head() index.Posting {
	return it.postings[it.pos]
}

// next advances to the next posting.
func (it *listIterator) next() {
	it.pos++
}

// advance moves to the first posting with document id >= target.
// Linear scan; postings lists are short relative to binary-search overhead.
func (it *listIterator) advance(target string) {
	for it.pos < len(it.postings) && it.postings[it.pos].DocID < target {
		it.pos++
	}
}

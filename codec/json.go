package codec

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/madekit/invidx/index"
)

// JSON encodes the term-to-postings mapping as a single JSON object.
//
// It is intended for debugging and interchange with tools that cannot speak
// the binary layout; it is larger and slower than Binary but trivially
// inspectable.
type JSON struct{}

type jsonPosting struct {
	DocID     string `json:"d"`
	Frequency uint32 `json:"f"`
}

// Name returns "json".
func (JSON) Name() string { return "json" }

// Encode writes idx as a JSON object. encoding/json emits object keys in
// sorted order, so the output is deterministic.
func (JSON) Encode(w io.Writer, idx *index.Index) error {
	out := make(map[string][]jsonPosting, idx.NumTerms())
	for _, term := range idx.Terms() {
		postings, _ := idx.Postings(term)
		list := make([]jsonPosting, len(postings))
		for i, p := range postings {
			list[i] = jsonPosting{DocID: p.DocID, Frequency: p.Frequency}
		}
		out[term] = list
	}
	return json.NewEncoder(w).Encode(out)
}

// Decode reads a JSON object written by Encode and validates the postings
// invariants before constructing the index.
func (JSON) Decode(r io.Reader) (*index.Index, error) {
	dec := json.NewDecoder(r)

	var raw map[string][]jsonPosting
	if err := dec.Decode(&raw); err != nil {
		return nil, corrupt(dec.InputOffset(), "invalid JSON", err)
	}

	lists := make(map[string]index.PostingList, len(raw))
	for term, postings := range raw {
		list := make(index.PostingList, len(postings))
		for i, p := range postings {
			list[i] = index.Posting{DocID: p.DocID, Frequency: p.Frequency}
		}
		// Tolerate unordered producers; the wire invariant only matters
		// for the binary layout.
		sort.Slice(list, func(i, j int) bool { return list[i].DocID < list[j].DocID })
		lists[term] = list
	}

	idx, err := index.NewIndex(lists)
	if err != nil {
		return nil, corrupt(dec.InputOffset(), "postings invariant violated", err)
	}
	return idx, nil
}

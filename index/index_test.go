package index

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madekit/invidx/tokenizer"
)

func buildFrom(t *testing.T, docs map[string]string) *Index {
	t.Helper()
	b := NewBuilder()
	for id, text := range docs {
		b.Add(id, tokenizer.Tokenize(text))
	}
	return b.Finalize()
}

func TestBuilderBasic(t *testing.T) {
	idx := buildFrom(t, map[string]string{
		"d1": "cat dog cat",
		"d2": "dog bird",
		"d3": "cat",
	})

	assert.Equal(t, 3, idx.NumTerms())
	assert.Equal(t, []string{"bird", "cat", "dog"}, idx.Terms())
	assert.Equal(t, []string{"d1", "d2", "d3"}, idx.Documents())

	cat, ok := idx.Postings("cat")
	require.True(t, ok)
	assert.Equal(t, PostingList{{DocID: "d1", Frequency: 2}, {DocID: "d3", Frequency: 1}}, cat)

	bird, ok := idx.Postings("bird")
	require.True(t, ok)
	assert.Equal(t, PostingList{{DocID: "d2", Frequency: 1}}, bird)

	_, ok = idx.Postings("fish")
	assert.False(t, ok)
}

func TestBuilderEmptyDocuments(t *testing.T) {
	b := NewBuilder()
	b.Add("d1", tokenizer.Tokenize(""))
	b.Add("d2", tokenizer.Tokenize("   ...  "))
	idx := b.Finalize()

	assert.Zero(t, idx.NumTerms())
	assert.Zero(t, idx.NumDocuments())
}

func TestBuilderSortsPostings(t *testing.T) {
	b := NewBuilder()
	// Insert out of document-id order.
	for _, id := range []string{"d9", "d2", "d5", "d1"} {
		b.Add(id, tokenizer.Tokenize("cat"))
	}
	idx := b.Finalize()

	cat, ok := idx.Postings("cat")
	require.True(t, ok)
	for i := 1; i < len(cat); i++ {
		assert.Less(t, cat[i-1].DocID, cat[i].DocID)
	}
}

func TestBuilderResetAfterFinalize(t *testing.T) {
	b := NewBuilder()
	b.Add("d1", tokenizer.Tokenize("cat"))
	first := b.Finalize()
	require.Equal(t, 1, first.NumTerms())

	second := b.Finalize()
	assert.Zero(t, second.NumTerms())
	// The first index is unaffected by further builder use.
	assert.Equal(t, 1, first.NumTerms())
}

func TestSortednessInvariant(t *testing.T) {
	b := NewBuilder()
	for i := 0; i < 50; i++ {
		b.Add(fmt.Sprintf("doc-%03d", (i*37)%50), tokenizer.Tokenize("alpha beta gamma alpha"))
	}
	idx := b.Finalize()

	for _, term := range idx.Terms() {
		postings, ok := idx.Postings(term)
		require.True(t, ok)
		require.NotEmpty(t, postings)
		for i := 1; i < len(postings); i++ {
			assert.Less(t, postings[i-1].DocID, postings[i].DocID, "term %q", term)
		}
	}
}

func TestNewIndexValidation(t *testing.T) {
	valid := map[string]PostingList{
		"cat": {{DocID: "d1", Frequency: 2}, {DocID: "d3", Frequency: 1}},
	}
	idx, err := NewIndex(valid)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, idx.Terms())

	_, err = NewIndex(map[string]PostingList{"cat": {}})
	assert.ErrorIs(t, err, ErrEmptyPostings)

	_, err = NewIndex(map[string]PostingList{
		"cat": {{DocID: "d3", Frequency: 1}, {DocID: "d1", Frequency: 1}},
	})
	assert.ErrorIs(t, err, ErrUnsortedPostings)

	_, err = NewIndex(map[string]PostingList{
		"cat": {{DocID: "d1", Frequency: 1}, {DocID: "d1", Frequency: 2}},
	})
	assert.ErrorIs(t, err, ErrUnsortedPostings)

	_, err = NewIndex(map[string]PostingList{
		"cat": {{DocID: "d1", Frequency: 0}},
	})
	assert.ErrorIs(t, err, ErrZeroFrequency)
}

func TestIndexEqual(t *testing.T) {
	docs := map[string]string{"d1": "cat dog", "d2": "dog"}
	a := buildFrom(t, docs)
	b := buildFrom(t, docs)
	c := buildFrom(t, map[string]string{"d1": "cat dog", "d2": "dog dog"})

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	empty := NewBuilder().Finalize()
	assert.True(t, empty.Equal(NewBuilder().Finalize()))
	assert.False(t, empty.Equal(a))
}

package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madekit/invidx/index"
	"github.com/madekit/invidx/tokenizer"
)

func buildIndex(t *testing.T, docs map[string]string) *index.Index {
	t.Helper()
	b := index.NewBuilder()
	for id, text := range docs {
		b.Add(id, tokenizer.Tokenize(text))
	}
	return b.Finalize()
}

func sampleEngine(t *testing.T) *Engine {
	return New(buildIndex(t, map[string]string{
		"d1": "cat dog cat",
		"d2": "dog bird",
		"d3": "cat",
	}))
}

func TestQuerySingleWord(t *testing.T) {
	e := sampleEngine(t)

	// d1 has cat twice, d3 once; d2 not at all.
	ids, err := e.Query([]string{"cat"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d3"}, ids)
}

func TestQueryConjunction(t *testing.T) {
	e := sampleEngine(t)

	ids, err := e.Query([]string{"cat", "dog"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, ids)
}

func TestQueryUnknownWord(t *testing.T) {
	e := sampleEngine(t)

	ids, err := e.Query([]string{"fish"}, 3)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// One unknown word empties a multi-word query too.
	ids, err = e.Query([]string{"cat", "fish"}, 3)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestQueryScores(t *testing.T) {
	e := sampleEngine(t)

	matches, err := e.QueryScored([]string{"cat"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{DocID: "d1", Score: 2},
		{DocID: "d3", Score: 1},
	}, matches)

	matches, err = e.QueryScored([]string{"cat", "dog"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []Match{{DocID: "d1", Score: 3}}, matches)
}

func TestQueryTieBreakByDocID(t *testing.T) {
	e := New(buildIndex(t, map[string]string{
		"b": "cat",
		"a": "cat",
		"c": "cat",
	}))

	ids, err := e.Query([]string{"cat"}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestQueryTruncation(t *testing.T) {
	e := sampleEngine(t)

	ids, err := e.Query([]string{"cat"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, ids)
}

func TestQueryDuplicateWordsCollapsed(t *testing.T) {
	e := sampleEngine(t)

	matches, err := e.QueryScored([]string{"cat", "cat"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{DocID: "d1", Score: 2},
		{DocID: "d3", Score: 1},
	}, matches)
}

func TestQueryEmptyWordSet(t *testing.T) {
	e := sampleEngine(t)

	matches, err := e.QueryScored(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{DocID: "d1", Score: 0},
		{DocID: "d2", Score: 0},
		{DocID: "d3", Score: 0},
	}, matches)

	ids, err := e.Query([]string{}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, ids)
}

func TestQueryInvalidTopN(t *testing.T) {
	e := sampleEngine(t)

	for _, topN := range []int{0, -1} {
		_, err := e.Query([]string{"cat"}, topN)
		assert.ErrorIs(t, err, ErrInvalidTopN)
	}
}

func TestQueryEmptyIndex(t *testing.T) {
	e := New(index.NewBuilder().Finalize())

	ids, err := e.Query([]string{"cat"}, 3)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = e.Query(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestQueryDeterminism(t *testing.T) {
	e := sampleEngine(t)

	first, err := e.Query([]string{"dog", "cat"}, 5)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.Query([]string{"dog", "cat"}, 5)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQueryConjunctiveCorrectness(t *testing.T) {
	// Documents hold known word subsets; check membership against a direct
	// containment predicate for every word pair.
	docs := make(map[string]string)
	contains := make(map[string]map[string]bool)
	words := []string{"alpha", "beta", "gamma", "delta"}
	for i := 0; i < 16; i++ {
		id := fmt.Sprintf("doc-%02d", i)
		text := ""
		contains[id] = make(map[string]bool)
		for w, word := range words {
			if i&(1<<w) != 0 {
				text += word + " "
				contains[id][word] = true
			}
		}
		docs[id] = text
	}
	e := New(buildIndex(t, docs))

	for i, a := range words {
		for _, b := range words[i:] {
			ids, err := e.Query([]string{a, b}, len(docs))
			require.NoError(t, err)

			got := make(map[string]bool, len(ids))
			for _, id := range ids {
				got[id] = true
			}
			for id, has := range contains {
				want := has[a] && has[b]
				assert.Equal(t, want, got[id], "query {%s,%s} doc %s", a, b, id)
			}
		}
	}
}

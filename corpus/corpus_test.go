package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	input := "d1\tcat dog cat\nd2\tdog bird\nd3\tcat\n"

	docs, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Document{
		{ID: "d1", Text: "cat dog cat"},
		{ID: "d2", Text: "dog bird"},
		{ID: "d3", Text: "cat"},
	}, docs)
}

func TestLoadEmptyTextAndBlankLines(t *testing.T) {
	input := "d1\t\n\n   \nd2\tsome text\n"

	docs, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Document{
		{ID: "d1", Text: ""},
		{ID: "d2", Text: "some text"},
	}, docs)
}

func TestLoadTextKeepsFurtherTabs(t *testing.T) {
	docs, err := Load(strings.NewReader("d1\tleft\tright\n"))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "left\tright", docs[0].Text)
}

func TestLoadMalformedLines(t *testing.T) {
	input := "d1\tfine\nno tab here\n\tmissing id\nd4\talso fine\n"

	docs, err := Load(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)

	// Parsed documents are still returned so the caller can choose to skip.
	assert.Equal(t, []Document{
		{ID: "d1", Text: "fine"},
		{ID: "d4", Text: "also fine"},
	}, docs)

	// Line numbers are reported for each failure.
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "line 3")

	var mle *MalformedLineError
	require.ErrorAs(t, err, &mle)
}

func TestLoadEmpty(t *testing.T) {
	docs, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.tsv")
	require.NoError(t, os.WriteFile(path, []byte("d1\tcat\n"), 0o644))

	docs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Document{{ID: "d1", Text: "cat"}}, docs)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)
}

func TestLoadFileReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tsv")
	require.NoError(t, os.WriteFile(path, []byte("no tab\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.tsv")
}

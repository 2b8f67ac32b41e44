// Package corpus reads line-oriented document datasets.
//
// The input format is one document per line: an opaque document id, a single
// tab, then the raw text. Blank lines are skipped. Malformed lines are
// reported individually with their line number so the caller can decide
// whether to abort or continue with the documents that did parse.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedInput is the sentinel matched by all per-line parse failures.
var ErrMalformedInput = errors.New("malformed corpus input")

// MalformedLineError reports a single unparseable dataset line.
type MalformedLineError struct {
	Line   int
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedInput }

// Document is one input document. Documents are transient: they exist only
// to feed the index build and are not retained afterwards.
type Document struct {
	ID   string
	Text string
}

// maxLineSize bounds a single document line (id + tab + text).
const maxLineSize = 16 * 1024 * 1024

// Load reads all documents from r. Documents that parse are always
// returned; if any lines were malformed, the returned error joins one
// MalformedLineError per bad line and satisfies
// errors.Is(err, ErrMalformedInput).
func Load(r io.Reader) ([]Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var docs []Document
	var errs []error
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		id, body, ok := strings.Cut(text, "\t")
		if !ok {
			errs = append(errs, &MalformedLineError{Line: line, Reason: "missing tab separator"})
			continue
		}
		if id == "" {
			errs = append(errs, &MalformedLineError{Line: line, Reason: "empty document id"})
			continue
		}
		docs = append(docs, Document{ID: id, Text: body})
	}
	if err := scanner.Err(); err != nil {
		return docs, err
	}
	return docs, errors.Join(errs...)
}

// LoadFile reads all documents from the file at path.
func LoadFile(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := Load(f)
	if err != nil {
		return docs, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

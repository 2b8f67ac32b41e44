package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/madekit/invidx/index"
)

// Binary is the canonical codec. Layout, little-endian, all integers u32:
//
//	[ word_count ]
//	repeated word_count times:
//	  [ word_byte_length ][ word_bytes (UTF-8) ]
//	  [ posting_count ]
//	  repeated posting_count times:
//	    [ document_id_byte_length ][ document_id_bytes (UTF-8) ]
//	    [ frequency ]
//
// Terms are written in ascending order so encoding is deterministic; decode
// accepts any term order but enforces the postings invariants.
type Binary struct{}

// Name returns "binary".
func (Binary) Name() string { return "binary" }

// Encode writes idx to w in the canonical layout.
func (Binary) Encode(w io.Writer, idx *index.Index) error {
	enc := binaryEncoder{w: w}

	terms := idx.Terms()
	if err := enc.writeU32(uint32(len(terms))); err != nil {
		return err
	}
	for _, term := range terms {
		postings, _ := idx.Postings(term)
		if err := enc.writeString(term); err != nil {
			return err
		}
		if err := enc.writeU32(uint32(len(postings))); err != nil {
			return err
		}
		for _, p := range postings {
			if err := enc.writeString(p.DocID); err != nil {
				return err
			}
			if err := enc.writeU32(p.Frequency); err != nil {
				return err
			}
		}
	}
	return nil
}

// maxCountHint bounds the capacity preallocated from a declared record
// count before the records themselves have been read.
const maxCountHint = 64 * 1024

// Decode reads an index in the canonical layout from r. Trailing bytes after
// the final record are not consumed and not treated as an error, so the
// format can be embedded in larger streams.
func (Binary) Decode(r io.Reader) (*index.Index, error) {
	dec := binaryDecoder{r: r}

	termCount, err := dec.readU32("word count")
	if err != nil {
		return nil, err
	}

	// Count fields are untrusted input: they only hint capacity, capped so
	// a corrupt stream cannot demand a huge allocation up front. Reads
	// below fail at the true end of input.
	lists := make(map[string]index.PostingList, min(int(termCount), maxCountHint))
	for i := uint32(0); i < termCount; i++ {
		term, err := dec.readString("word")
		if err != nil {
			return nil, err
		}
		if _, exists := lists[term]; exists {
			return nil, corrupt(dec.off, fmt.Sprintf("duplicate word %q", term), nil)
		}

		postingCount, err := dec.readU32("posting count")
		if err != nil {
			return nil, err
		}
		if postingCount == 0 {
			return nil, corrupt(dec.off, fmt.Sprintf("word %q has no postings", term), nil)
		}

		postings := make(index.PostingList, 0, min(int(postingCount), maxCountHint))
		for j := uint32(0); j < postingCount; j++ {
			docID, err := dec.readString("document id")
			if err != nil {
				return nil, err
			}
			if j > 0 && postings[j-1].DocID >= docID {
				return nil, corrupt(dec.off,
					fmt.Sprintf("word %q: document ids not strictly increasing (%q after %q)",
						term, docID, postings[j-1].DocID), nil)
			}
			freq, err := dec.readU32("frequency")
			if err != nil {
				return nil, err
			}
			if freq == 0 {
				return nil, corrupt(dec.off,
					fmt.Sprintf("word %q, document %q: zero frequency", term, docID), nil)
			}
			postings = append(postings, index.Posting{DocID: docID, Frequency: freq})
		}
		lists[term] = postings
	}

	idx, err := index.NewIndex(lists)
	if err != nil {
		return nil, corrupt(dec.off, "postings invariant violated", err)
	}
	return idx, nil
}

type binaryEncoder struct {
	w   io.Writer
	buf [4]byte
}

func (e *binaryEncoder) writeU32(v uint32) error {
	binary.LittleEndian.PutUint32(e.buf[:], v)
	_, err := e.w.Write(e.buf[:])
	return err
}

func (e *binaryEncoder) writeString(s string) error {
	if err := e.writeU32(uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

type binaryDecoder struct {
	r   io.Reader
	off int64
	buf [4]byte
}

func (d *binaryDecoder) readU32(what string) (uint32, error) {
	start := d.off
	n, err := io.ReadFull(d.r, d.buf[:])
	d.off += int64(n)
	if err != nil {
		return 0, corrupt(start, fmt.Sprintf("truncated reading %s", what), err)
	}
	return binary.LittleEndian.Uint32(d.buf[:]), nil
}

// readString reads a length-prefixed UTF-8 string. The payload is filled in
// bounded chunks so that a corrupt length fails at the true end of input
// instead of provoking a giant allocation up front.
func (d *binaryDecoder) readString(what string) (string, error) {
	length, err := d.readU32(what + " length")
	if err != nil {
		return "", err
	}

	const chunk = 64 * 1024
	start := d.off
	buf := make([]byte, 0, int(min(int64(length), chunk)))
	for remaining := int64(length); remaining > 0; {
		step := int(min(remaining, chunk))
		prev := len(buf)
		buf = append(buf, make([]byte, step)...)
		n, err := io.ReadFull(d.r, buf[prev:])
		d.off += int64(n)
		if err != nil {
			return "", corrupt(start,
				fmt.Sprintf("%s: declared length %d exceeds remaining input", what, length), err)
		}
		remaining -= int64(step)
	}
	return string(buf), nil
}

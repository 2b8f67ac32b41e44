// Package tokenizer splits raw document text into normalized word tokens.
//
// Normalization lower-cases the input and splits on runs of characters that
// are neither letters nor digits, so punctuation and whitespace both act as
// token boundaries. Tokenization is a pure function of its input: the
// returned sequence can be ranged over any number of times and never fails,
// regardless of content.
package tokenizer

import (
	"iter"
	"strings"
	"unicode"
)

// Tokenize returns a lazy sequence of normalized tokens extracted from text.
// Empty text yields an empty sequence.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var b strings.Builder
		for _, r := range text {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToLower(r))
				continue
			}
			if b.Len() > 0 {
				if !yield(b.String()) {
					return
				}
				b.Reset()
			}
		}
		if b.Len() > 0 {
			yield(b.String())
		}
	}
}

// Count tokenizes text and returns the frequency of each token.
func Count(text string) map[string]int {
	counts := make(map[string]int)
	for t := range Tokenize(text) {
		counts[t]++
	}
	return counts
}

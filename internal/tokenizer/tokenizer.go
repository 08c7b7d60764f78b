// Package tokenizer splits text into words made of ASCII letters.
package tokenizer

import (
	"io"
	"strings"
)

// IsLetter reports whether b is one of A-Z or a-z.
func IsLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Letters returns the 52 letters in display order, A-Z then a-z.
func Letters() []byte {
	out := make([]byte, 0, 52)
	for c := byte('A'); c <= 'Z'; c++ {
		out = append(out, c)
	}
	for c := byte('a'); c <= 'z'; c++ {
		out = append(out, c)
	}
	return out
}

// NextWord reads the next run of letters from r.
// The separator ending a word is consumed. An empty result means r is exhausted.
func NextWord(r io.ByteReader) string {
	var b strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			return b.String()
		}
		if IsLetter(c) {
			b.WriteByte(c)
			continue
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
}

// Words returns every word in line, in order.
func Words(line string) []string {
	r := strings.NewReader(line)
	var words []string
	for {
		word := NextWord(r)
		if word == "" {
			return words
		}
		words = append(words, word)
	}
}

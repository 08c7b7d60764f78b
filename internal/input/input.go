// Package input opens text sources and decodes legacy code pages to UTF-8.
package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encodings lists the accepted source encodings.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Source is an opened input stream.
type Source struct {
	io.Reader
	// Name is the file path, or "stdin".
	Name   string
	closer io.Closer
}

// Close releases the underlying file. Closing stdin is a no-op.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// NormalizeEncoding maps aliases to a canonical encoding name.
func NormalizeEncoding(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return "utf8", nil
	case "cp437", "ibm437":
		return "cp437", nil
	case "cp850", "ibm850":
		return "cp850", nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return "iso-8859-1", nil
	default:
		return "", fmt.Errorf("unsupported encoding %q (available: %s)", name, strings.Join(Encodings, ", "))
	}
}

// Open opens path, or reads stdin when path is empty or "-", decoding from enc.
func Open(path, enc string, stdin io.Reader) (*Source, error) {
	if path == "" || path == "-" {
		r, err := Decode(stdin, enc)
		if err != nil {
			return nil, err
		}
		return &Source{Reader: r, Name: "stdin"}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	r, err := Decode(file, enc)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &Source{Reader: r, Name: path, closer: file}, nil
}

// Decode wraps r so that it yields UTF-8 with any leading BOM removed.
func Decode(r io.Reader, enc string) (io.Reader, error) {
	name, err := NormalizeEncoding(enc)
	if err != nil {
		return nil, err
	}
	var decoder *encoding.Decoder
	switch name {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	}
	if decoder != nil {
		r = transform.NewReader(r, decoder)
	}
	return stripBOM(r), nil
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(utf8BOM))
	if err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

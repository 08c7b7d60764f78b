// Package report renders text statistics as plain-text sections.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/stats"
	"github.com/verte-zerg/textstat/internal/tokenizer"
)

// DefaultBarMax is the default star cap of the letter histogram.
const DefaultBarMax = 10

const dictWordWidth = 22

const (
	letterBanner    = "\n/-------------\\\n| Letter Freq |\n\\-------------/\n"
	dictBanner      = "\n/------------\\\n| Dictionary |\n\\------------/\n"
	dictHeader      = "Word          Frequency\n-----------------------\n"
	histogramBanner = "\n/------------\\\n| Histogram  |\n\\------------/\n"
)

// Options tunes rendering.
type Options struct {
	// BarMax caps the stars drawn per letter. Values below 1 use DefaultBarMax.
	BarMax int
}

func (o Options) barMax() int {
	if o.BarMax < 1 {
		return DefaultBarMax
	}
	return o.BarMax
}

// Render writes the full report: word listing, counts, letter histogram,
// dictionary and word histogram.
func Render(w io.Writer, d *model.Diction, opts Options) error {
	if err := RenderWordList(w, d); err != nil {
		return err
	}
	if err := RenderCounts(w, d.Stats); err != nil {
		return err
	}
	if err := RenderLetterHistogram(w, d.LetterFreq, opts); err != nil {
		return err
	}
	if err := RenderDictionary(w, d.FreqIndex); err != nil {
		return err
	}
	return RenderHistogram(w, d.FreqIndex)
}

// RenderWordList prints the unique words in lexicographic order.
func RenderWordList(w io.Writer, d *model.Diction) error {
	var b strings.Builder
	b.WriteString("\nWords in dictionary: ")
	for _, word := range stats.SortedWords(d) {
		b.WriteString(word)
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderCounts prints the character, word and line totals.
// The output has no trailing newline; every following section starts with one.
func RenderCounts(w io.Writer, c model.Counter) error {
	_, err := fmt.Fprintf(w, "\nNumber of Chars: %d\nNumber of Words: %d\nNumber of Lines: %d", c.Chars, c.Words, c.Lines)
	return err
}

// RenderLetterHistogram prints one bar per letter, A-Z then a-z.
// Counts above the cap get a trailing "(count-1)" label.
func RenderLetterHistogram(w io.Writer, freq map[byte]int, opts Options) error {
	limit := opts.barMax()
	var b strings.Builder
	b.WriteString(letterBanner)
	for _, c := range tokenizer.Letters() {
		count := freq[c]
		b.WriteByte(c)
		b.WriteString(" | ")
		b.WriteString(strings.Repeat("*", min(count, limit)))
		if count > limit {
			fmt.Fprintf(&b, " (%d)", count-1)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderDictionary prints every index entry as "word count".
func RenderDictionary(w io.Writer, index []model.FreqEntry) error {
	var b strings.Builder
	b.WriteString(dictBanner)
	b.WriteString(dictHeader)
	for _, e := range index {
		fmt.Fprintf(&b, "%-*s%d\n", dictWordWidth, e.Word, e.Count)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderHistogram prints a vertical bar chart with one column per index entry,
// the words cascading below it, and the longest word.
func RenderHistogram(w io.Writer, index []model.FreqEntry) error {
	longest := stats.LongestWord(index)
	wordWidth := len(longest)
	maxCount := stats.MaxCount(index)
	offset := 2*wordWidth + 2

	var b strings.Builder
	b.WriteString(histogramBanner)
	for row := maxCount; row > 0; row-- {
		b.WriteString(strings.Repeat(" ", offset))
		for _, e := range index {
			if e.Count >= row {
				b.WriteString("* ")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat("-", offset+2*max(len(index)-1, 0)+1))
	b.WriteByte('\n')

	dashes := wordWidth + 2
	for i, e := range index {
		fmt.Fprintf(&b, "%-*s", wordWidth, e.Word)
		b.WriteString(strings.Repeat("-", dashes))
		b.WriteString("/ ")
		b.WriteString(strings.Repeat("| ", len(index)-i-1))
		b.WriteByte('\n')
		dashes += 2
	}

	b.WriteString("\nThe longest word is: ")
	b.WriteString(longest)
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

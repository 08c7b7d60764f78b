// Package stats builds word and letter statistics from text input.
package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/tokenizer"
)

// NewDiction returns an empty result with all 52 letters present at zero.
func NewDiction() *model.Diction {
	d := &model.Diction{
		UniqueWords: map[string]struct{}{},
		LetterFreq:  make(map[byte]int, 52),
		LongWords:   model.NewLongestQueue(),
	}
	for _, c := range tokenizer.Letters() {
		d.LetterFreq[c] = 0
	}
	return d
}

// Process reads r to the end and returns its statistics.
// Lines are split on '\n' only; a carriage return counts as a character.
func Process(r io.Reader) (*model.Diction, error) {
	d := NewDiction()
	tally := map[string]int{}
	var counter model.Counter

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if err != nil && line == "" {
			break
		}
		line = strings.TrimSuffix(line, "\n")
		addLine(d, tally, &counter, line)
		if err != nil {
			break
		}
	}

	d.FreqIndex = buildIndex(tally)
	d.Stats = counter
	return d, nil
}

func addLine(d *model.Diction, tally map[string]int, counter *model.Counter, line string) {
	counter.Chars += len(line)
	if line != "" {
		counter.Lines++
	}
	for _, word := range tokenizer.Words(line) {
		counter.Words++
		d.UniqueWords[word] = struct{}{}
		tally[word]++
		for i := 0; i < len(word); i++ {
			d.LetterFreq[word[i]]++
		}
		d.LongWords.Push(word)
	}
}

func buildIndex(tally map[string]int) []model.FreqEntry {
	index := make([]model.FreqEntry, 0, len(tally))
	for word, count := range tally {
		index = append(index, model.FreqEntry{Count: count, Word: word})
	}
	sort.Slice(index, func(i, j int) bool {
		if index[i].Count == index[j].Count {
			return index[i].Word < index[j].Word
		}
		return index[i].Count < index[j].Count
	})
	return index
}

// SortedWords returns the unique words in lexicographic order.
func SortedWords(d *model.Diction) []string {
	words := make([]string, 0, len(d.UniqueWords))
	for w := range d.UniqueWords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// LongestWord returns the first index entry of maximal length.
func LongestWord(index []model.FreqEntry) string {
	longest := ""
	for _, e := range index {
		if len(e.Word) > len(longest) {
			longest = e.Word
		}
	}
	return longest
}

// MaxCount returns the highest count in the index, or 0 when it is empty.
func MaxCount(index []model.FreqEntry) int {
	maxCount := 0
	for _, e := range index {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	return maxCount
}

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/stats"
	"github.com/verte-zerg/textstat/internal/tokenizer"
)

// Output formats accepted by Export and the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultLongest is how many distinct long tokens an export lists.
const DefaultLongest = 5

// Summary is the machine-readable form of a run.
type Summary struct {
	Chars        int           `json:"chars" yaml:"chars"`
	Words        int           `json:"words" yaml:"words"`
	Lines        int           `json:"lines" yaml:"lines"`
	UniqueWords  []string      `json:"unique_words" yaml:"unique_words"`
	Letters      []LetterCount `json:"letters" yaml:"letters"`
	Dictionary   []WordCount   `json:"dictionary" yaml:"dictionary"`
	LongestWord  string        `json:"longest_word" yaml:"longest_word"`
	LongestWords []string      `json:"longest_words" yaml:"longest_words"`
}

// LetterCount is one letter histogram row.
type LetterCount struct {
	Letter string `json:"letter" yaml:"letter"`
	Count  int    `json:"count" yaml:"count"`
}

// WordCount is one dictionary row.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// ValidFormat reports whether format is one Export or the text renderer accepts.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// BuildSummary converts a run into its exported form. longest bounds LongestWords.
func BuildSummary(d *model.Diction, longest int) Summary {
	s := Summary{
		Chars:        d.Stats.Chars,
		Words:        d.Stats.Words,
		Lines:        d.Stats.Lines,
		UniqueWords:  stats.SortedWords(d),
		Letters:      make([]LetterCount, 0, 52),
		Dictionary:   make([]WordCount, 0, len(d.FreqIndex)),
		LongestWord:  stats.LongestWord(d.FreqIndex),
		LongestWords: []string{},
	}
	for _, c := range tokenizer.Letters() {
		s.Letters = append(s.Letters, LetterCount{Letter: string(c), Count: d.LetterFreq[c]})
	}
	for _, e := range d.FreqIndex {
		s.Dictionary = append(s.Dictionary, WordCount{Word: e.Word, Count: e.Count})
	}
	if d.LongWords != nil {
		if top := d.LongWords.TopDistinct(longest); top != nil {
			s.LongestWords = top
		}
	}
	return s
}

// Export writes the run as JSON or YAML.
func Export(w io.Writer, d *model.Diction, format string, longest int) error {
	summary := BuildSummary(d, longest)
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// Package model defines shared data structures.
package model

import "time"

// Config defines report settings after flags and config file are merged.
type Config struct {
	Format   string
	Encoding string
	BarMax   int
	Longest  int
	Save     bool
	TUI      bool
}

// HistoryConfig defines filters for the history listing.
type HistoryConfig struct {
	Last  int
	RunID int64
}

// Counter holds the three independent run totals.
type Counter struct {
	Chars int
	Words int
	Lines int
}

// FreqEntry pairs a word with how many times it occurred.
type FreqEntry struct {
	Count int
	Word  string
}

// Diction is the result of a single processing run.
type Diction struct {
	Stats Counter
	// UniqueWords holds every distinct word; membership only.
	UniqueWords map[string]struct{}
	// LetterFreq is keyed by the 52 ASCII letters, all present from the start.
	LetterFreq map[byte]int
	// FreqIndex is ordered by ascending count, then by word.
	FreqIndex []FreqEntry
	// LongWords holds every token ordered by descending length.
	LongWords *LongestQueue
}

// RunRecord describes a saved run.
type RunRecord struct {
	ID          int64
	CreatedAt   time.Time
	Source      string
	Encoding    string
	Chars       int
	Words       int
	Lines       int
	UniqueWords int
	LongestWord string
}

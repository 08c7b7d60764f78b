package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/textstat/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "textstat.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListRuns(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		run := model.RunRecord{
			CreatedAt:   time.Unix(0, 0).Add(time.Duration(i) * time.Minute),
			Source:      "notes.txt",
			Encoding:    "utf8",
			Chars:       29 + i,
			Words:       7,
			Lines:       1,
			UniqueWords: 5,
			LongestWord: "cat",
		}
		id, err := st.InsertRun(ctx, run, []model.FreqEntry{{Count: 1, Word: "cat"}})
		if err != nil {
			t.Fatalf("insert run: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := st.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(all))
	}
	if all[0].Chars != 29 || all[0].Source != "notes.txt" || all[0].LongestWord != "cat" {
		t.Fatalf("unexpected first run: %+v", all[0])
	}
	if !all[1].CreatedAt.Equal(time.Unix(60, 0)) {
		t.Fatalf("unexpected created_at: %v", all[1].CreatedAt)
	}

	last, err := st.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list last runs: %v", err)
	}
	if len(last) != 2 || last[0].ID != ids[1] || last[1].ID != ids[2] {
		t.Fatalf("unexpected last runs: %+v", last)
	}
}

func TestListRunWordsOrder(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	entries := []model.FreqEntry{
		{Count: 2, Word: "sat"},
		{Count: 1, Word: "too"},
		{Count: 2, Word: "The"},
		{Count: 1, Word: "cat"},
	}
	id, err := st.InsertRun(ctx, model.RunRecord{CreatedAt: time.Now(), Source: "stdin", Encoding: "utf8"}, entries)
	if err != nil {
		t.Fatalf("insert run: %v", err)
	}
	got, err := st.ListRunWords(ctx, id)
	if err != nil {
		t.Fatalf("list run words: %v", err)
	}
	want := []model.FreqEntry{
		{Count: 1, Word: "cat"},
		{Count: 1, Word: "too"},
		{Count: 2, Word: "The"},
		{Count: 2, Word: "sat"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestListRunWordsUnknownRun(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.ListRunWords(context.Background(), 42); err == nil {
		t.Fatalf("expected error for unknown run")
	}
}

func TestInsertRunDuplicateWordRollsBack(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	entries := []model.FreqEntry{{Count: 1, Word: "dup"}, {Count: 2, Word: "dup"}}
	if _, err := st.InsertRun(ctx, model.RunRecord{CreatedAt: time.Now()}, entries); err == nil {
		t.Fatalf("expected constraint error")
	}
	runs, err := st.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected rollback, found %d runs", len(runs))
	}
}

func TestListRunsSubSecondOrder(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC)
	offsets := []time.Duration{0, 100 * time.Millisecond, 120 * time.Millisecond}
	var ids []int64
	for _, off := range offsets {
		id, err := st.InsertRun(ctx, model.RunRecord{CreatedAt: base.Add(off), Source: "stdin", Encoding: "utf8"}, nil)
		if err != nil {
			t.Fatalf("insert run: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := st.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(all) != len(ids) {
		t.Fatalf("expected %d runs, got %d", len(ids), len(all))
	}
	for i, r := range all {
		if r.ID != ids[i] {
			t.Fatalf("run %d: expected id %d, got %d", i, ids[i], r.ID)
		}
		if !r.CreatedAt.Equal(base.Add(offsets[i])) {
			t.Fatalf("run %d: unexpected created_at %v", i, r.CreatedAt)
		}
	}

	last, err := st.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("list last run: %v", err)
	}
	if len(last) != 1 || last[0].ID != ids[2] {
		t.Fatalf("expected newest run %d, got %+v", ids[2], last)
	}
}

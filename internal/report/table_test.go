package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Word", "Count", "Note"}
	rows := [][]string{
		{"elephant", "12", "x"},
		{"ox", "3", "日本"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Word     Count Note" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "elephant    12 x" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "ox           3 日本" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}

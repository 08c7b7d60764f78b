package viewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/textstat/internal/report"
	"github.com/verte-zerg/textstat/internal/stats"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	d, err := stats.Process(strings.NewReader("The cat sat. The dog sat too."))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	m := NewModel(d, "sample.txt", report.Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestViewShowsHeaderAndWords(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, needle := range []string{"Words", "Histogram", "Source: sample.txt", "words=7", "The cat dog sat too"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("view missing %q:\n%s", needle, out)
		}
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabHistogram {
		t.Fatalf("expected wrap to histogram tab, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "The longest word is: cat") {
		t.Fatalf("expected histogram content")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabWords {
		t.Fatalf("expected wrap to words tab, got %d", m.activeTab)
	}
}

func TestDictionaryTab(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < tabDictionary; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	out := m.View()
	if !strings.Contains(out, "Frequency") || !strings.Contains(out, "sat") {
		t.Fatalf("expected dictionary table:\n%s", out)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewEmptyBeforeResize(t *testing.T) {
	d, err := stats.Process(strings.NewReader(""))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	m := NewModel(d, "stdin", report.Options{})
	if m.View() != "" {
		t.Fatalf("expected empty view before first resize")
	}
}

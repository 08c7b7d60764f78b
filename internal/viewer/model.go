// Package viewer provides the Bubble Tea report interface.
package viewer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/report"
	"github.com/verte-zerg/textstat/internal/stats"
)

const (
	tabWords = iota
	tabStats
	tabLetters
	tabDictionary
	tabHistogram
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea report viewer.
type Model struct {
	diction *model.Diction
	opts    report.Options
	source  string

	tabs      []string
	activeTab int
	viewports []viewport.Model
	dictTable table.Model

	width  int
	height int
}

// NewModel constructs a viewer over a finished run.
func NewModel(d *model.Diction, source string, opts report.Options) *Model {
	m := &Model{
		diction: d,
		opts:    opts,
		source:  source,
		tabs:    []string{"Words", "Stats", "Letters", "Dictionary", "Histogram"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.dictTable = buildDictTable(d.FreqIndex, 0, 1)
	m.renderTabContents()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabDictionary {
				m.dictTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabDictionary {
				m.dictTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabDictionary {
				var cmd tea.Cmd
				m.dictTable, cmd = m.dictTable.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderHelp(), m.width, 1)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight int) {
	tabsHeight := max(lipgloss.Height(activeNavStyle.Render("X")), 1)
	headerHeight = tabsHeight + 1
	bodyHeight = max(m.height-headerHeight-1, 1)
	return headerHeight, bodyHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.dictTable = buildDictTable(m.diction.FreqIndex, m.width, bodyHeight)
	if m.activeTab == tabDictionary {
		m.dictTable.Focus()
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabDictionary {
		m.dictTable.Focus()
	} else {
		m.dictTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	c := m.diction.Stats
	summary := fmt.Sprintf("Source: %s  chars=%d  words=%d  lines=%d  unique=%d",
		m.source, c.Chars, c.Words, c.Lines, len(m.diction.UniqueWords))
	summary = runewidth.Truncate(summary, m.width, "...")
	return m.renderTabs() + "\n" + headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Top/bottom: g/G  Quit: q")
}

func (m *Model) renderBody() string {
	if m.activeTab == tabDictionary {
		if len(m.diction.FreqIndex) == 0 {
			return "No words found."
		}
		return tableMutedStyle.Render(m.dictTable.View())
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) renderTabContents() {
	d := m.diction
	m.viewports[tabWords].SetContent(renderSection(func(buf *bytes.Buffer) error {
		return report.RenderWordList(buf, d)
	}))
	m.viewports[tabStats].SetContent(renderSection(func(buf *bytes.Buffer) error {
		return report.RenderCounts(buf, d.Stats)
	}))
	m.viewports[tabLetters].SetContent(renderSection(func(buf *bytes.Buffer) error {
		return report.RenderLetterHistogram(buf, d.LetterFreq, m.opts)
	}))
	m.viewports[tabHistogram].SetContent(renderSection(func(buf *bytes.Buffer) error {
		return report.RenderHistogram(buf, d.FreqIndex)
	}))
}

func renderSection(render func(*bytes.Buffer) error) string {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Sprintf("Failed to render section: %v", err)
	}
	return strings.Trim(buf.String(), "\n")
}

func buildDictTable(index []model.FreqEntry, width, height int) table.Model {
	wordWidth := max(len(stats.LongestWord(index)), len("Word"))
	columns := []table.Column{
		{Title: "Word", Width: wordWidth},
		{Title: "Frequency", Width: 9},
	}
	rows := make([]table.Row, 0, len(index))
	for _, e := range index {
		rows = append(rows, table.Row{e.Word, strconv.Itoa(e.Count)})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(1, height-1)),
	)
	t.SetWidth(width)
	return t
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

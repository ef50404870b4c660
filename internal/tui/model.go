package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/words/internal/match"
	"github.com/verte-zerg/words/internal/model"
	"github.com/verte-zerg/words/internal/search"
	"github.com/verte-zerg/words/internal/word"
)

const (
	inputPattern = iota
	inputExclude
	inputInclude
)

const (
	headerLines     = 5
	footerLines     = 2
	numColumnWidth  = 6
	wordColumnWidth = 8
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea narrowing UI.
type Model struct {
	words    []string
	dictPath string

	inputs []textinput.Model
	focus  int
	table  table.Model

	query   search.Query
	result  *match.Result
	summary search.Summary
	hint    string

	width  int
	height int
}

// NewModel constructs the UI over an in-memory dictionary, prefilled with initial.
func NewModel(words []string, dictPath string, initial model.Query) *Model {
	m := &Model{
		words:    words,
		dictPath: dictPath,
		inputs: []textinput.Model{
			newInput("Pattern:  ", "a?_*c", word.Len),
			newInput("Exclude:  ", "letters not in the answer", 0),
			newInput("Include:  ", "letters somewhere in the answer", 0),
		},
		table: table.New(
			table.WithColumns([]table.Column{
				{Title: "#", Width: numColumnWidth},
				{Title: "Word", Width: wordColumnWidth},
			}),
			table.WithFocused(true),
		),
	}
	m.inputs[inputPattern].SetValue(initial.Pattern)
	m.inputs[inputExclude].SetValue(initial.Exclude)
	m.inputs[inputInclude].SetValue(initial.Include)
	m.setFocus(inputPattern)
	m.refresh()
	return m
}

func newInput(prompt, placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
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
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyEnter:
			return m, m.setFocus(m.focus + 1)
		case tea.KeyShiftTab:
			return m, m.setFocus(m.focus - 1)
		case tea.KeyUp:
			m.table.MoveUp(1)
			return m, nil
		case tea.KeyDown:
			m.table.MoveDown(1)
			return m, nil
		case tea.KeyPgUp:
			m.table.MoveUp(m.table.Height())
			return m, nil
		case tea.KeyPgDown:
			m.table.MoveDown(m.table.Height())
			return m, nil
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.refresh()
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{titleStyle.Render("words") + "  " + footerStyle.Render(m.dictPath)}
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	lines = append(lines, m.renderStatus())
	if m.result != nil && m.result.Len() > 0 {
		lines = append(lines, m.table.View())
		if preview := m.renderPreview(); preview != "" {
			lines = append(lines, preview)
		}
	}
	lines = append(lines, footerStyle.Render("tab/enter next field · shift+tab previous · ↑/↓ scroll · esc quit"))
	return strings.Join(lines, "\n")
}

func (m *Model) setFocus(idx int) tea.Cmd {
	count := len(m.inputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.focus = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	// leave room for the preview line under the table
	tableHeight := m.height - headerLines - footerLines - 1
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)
	for i := range m.inputs {
		width := m.width - lipgloss.Width(m.inputs[i].Prompt) - 1
		if width < 1 {
			width = 1
		}
		m.inputs[i].Width = width
	}
}

func (m *Model) currentQuery() model.Query {
	return model.Query{
		Pattern: m.inputs[inputPattern].Value(),
		Exclude: m.inputs[inputExclude].Value(),
		Include: m.inputs[inputInclude].Value(),
	}
}

func (m *Model) refresh() {
	q, err := search.ParseQuery(m.currentQuery())
	if err != nil {
		m.result = nil
		m.summary = search.Summary{}
		m.hint = patternHint(err)
		m.table.SetRows(nil)
		return
	}
	m.hint = ""
	m.query = q
	m.result, m.summary = search.RunWords(m.words, q)
	rows := make([]table.Row, 0, m.result.Len())
	for i, w := range m.result.Strings() {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), w})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func patternHint(err error) string {
	var lengthErr *word.LengthError
	if errors.As(err, &lengthErr) {
		return fmt.Sprintf("pattern needs %d characters (have %d)", word.Len, lengthErr.Len)
	}
	var charErr *word.CharError
	if errors.As(err, &charErr) {
		return fmt.Sprintf("%q is not a letter or one of * _ ?", charErr.Char)
	}
	return err.Error()
}

func (m *Model) renderStatus() string {
	if m.hint != "" {
		return hintStyle.Render(m.hint)
	}
	status := fmt.Sprintf("%d matches in %d words", m.result.Len(), len(m.words))
	if m.summary.Skipped > 0 {
		status += fmt.Sprintf(" (%d skipped)", m.summary.Skipped)
	}
	return statusStyle.Render(status)
}

func (m *Model) renderPreview() string {
	idx := m.table.Cursor()
	words := m.result.Words()
	if idx < 0 || idx >= len(words) {
		return ""
	}
	return highlightWord(words[idx], m.query)
}

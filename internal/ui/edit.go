package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/salesgrid/internal/sheet"
)

// editModal prompts for a new cell value.
type editModal struct {
	rowID     int
	field     string
	title     string
	input     textinput.Model
	submitted bool
}

var _ Modal = (*editModal)(nil)

func newEditModal(row sheet.Row, col Column) (*editModal, tea.Cmd) {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 64
	input.Width = 30
	input.SetValue(row.Text(col.Field))
	input.CursorEnd()
	if col.Numeric {
		input.Placeholder = "number"
	}

	label := row.Product
	if label == "" {
		label = "row " + row.Text(sheet.FieldRowNumber)
	}
	return &editModal{
		rowID: row.ID,
		field: col.Field,
		title: strings.TrimSpace(label) + " / " + col.Title,
		input: input,
	}, input.Focus()
}

// Value returns the trimmed input.
func (e *editModal) Value() string {
	return strings.TrimSpace(e.input.Value())
}

func (e *editModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Confirm):
			e.submitted = true
			e.input.Blur()
			return e, nil, true
		case key.Matches(msg, keys.Escape):
			e.input.Blur()
			return e, nil, true
		}
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd, false
}

func (e *editModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Edit " + e.title))
	b.WriteString("\n\n")
	b.WriteString(e.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter save · esc cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

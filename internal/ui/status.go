package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderCommandBar renders the short key help under the header.
func (m Model) renderCommandBar() string {
	bar := m.help.ShortHelpView(m.keys.ShortHelp())
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Padding(0, 1).
		Render(bar)
}

// renderStatus renders the snackbar line. It is blank when no notice is showing.
func (m Model) renderStatus() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	if m.notice == nil {
		return bg.FillLine("", m.width)
	}

	badge := styles.NoticeStyle(m.notice.Severity).Render(strings.ToUpper(string(m.notice.Severity)))
	limit := m.width - lipgloss.Width(badge) - 2
	text := bg.Render(truncate(m.notice.Message, limit), styles.Text)
	return bg.FillLine(badge+bg.Space()+text, m.width)
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar: load state, paging and history.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("salesgrid", styles.Logo)}

	if m.loading {
		parts = append(parts,
			m.spinner.View()+bg.Space()+bg.Render("Loading...", styles.WarningText.Bold(true)))
		return m.headerBar(bg.Join(parts, "  "))
	}

	total := len(m.snap.Rows)
	start, end := pageBounds(total, m.cursorRow, m.pageSize)
	page := 1
	if total > 0 {
		page = m.cursorRow/m.pageSize + 1
	}
	rowsLabel := "Rows:"
	if compact {
		rowsLabel = "R:"
	}
	rowsText := "0"
	if total > 0 {
		rowsText = fmt.Sprintf("%d-%d/%d", start+1, end, total)
	}
	parts = append(parts,
		bg.Render(rowsLabel, styles.MutedText)+bg.Space()+bg.Render(rowsText, styles.Text),
		bg.Render("Page:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", page, pageCount(total, m.pageSize)), styles.Text)+
			bg.Space()+bg.Render(fmt.Sprintf("(%d per page)", m.pageSize), styles.FaintText),
	)

	if label := m.sort.label(); label != "" {
		parts = append(parts, bg.Render("Sort:", styles.MutedText)+bg.Space()+bg.Render(label, styles.AccentText))
	}

	if m.editor != nil {
		parts = append(parts,
			historyFlag(bg, styles, "Undo", m.editor.CanUndo())+bg.Space()+
				historyFlag(bg, styles, "Redo", m.editor.CanRedo()))
	}

	if !compact && m.color != "" {
		parts = append(parts, bg.Render("Colour:", styles.MutedText)+bg.Space()+
			bg.Render(colorName(m.color), styles.Text))
	}

	return m.headerBar(bg.Join(parts, "  "))
}

func (m Model) headerBar(content string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(content)
}

func historyFlag(bg BgStyle, styles Styles, label string, available bool) string {
	if available {
		return bg.Render(label, styles.SuccessText)
	}
	return bg.Render(label, styles.FaintText)
}

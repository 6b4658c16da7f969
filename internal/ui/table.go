package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/five82/salesgrid/internal/sheet"
)

// renderGrid renders column titles, the current page of rows and the totals line.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	rows := m.visibleRows()

	var lines []string
	lines = append(lines, m.renderColumnTitles(styles))
	lines = append(lines, styles.Rule.Render(strings.Repeat("─", gridWidth())))

	if len(rows) == 0 {
		msg := "No rows"
		if m.loading {
			msg = m.spinner.View() + " Loading rows..."
		}
		lines = append(lines, styles.MutedText.Padding(0, 1).Render(msg))
	} else {
		start, end := pageBounds(len(rows), m.cursorRow, m.pageSize)
		// A short terminal shows the rows around the cursor.
		if body := m.height - chromeLines; m.height > 0 && body > 0 && end-start > body {
			start = clamp(m.cursorRow-body+1, start, end-body)
			end = start + body
		}
		for i := start; i < end; i++ {
			lines = append(lines, m.renderRow(rows[i], i == m.cursorRow))
		}
	}

	lines = append(lines, m.renderTotals(styles, rows))
	return strings.Join(lines, "\n")
}

func (m Model) renderColumnTitles(styles Styles) string {
	cells := make([]string, 0, len(Columns))
	for i, col := range Columns {
		title := col.Title
		if m.sort.dir != sortNone && m.sort.col == i {
			title += " " + m.sort.arrow()
		}
		style := styles.ColumnTitle.Width(col.Width).Padding(0, 1).Align(lipgloss.Center)
		cells = append(cells, style.Render(truncate(title, col.Width-2)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderRow(row sheet.Row, current bool) string {
	cells := make([]string, 0, len(Columns))
	for i, col := range Columns {
		format := m.snap.CellFormats[sheet.CellKey(row.ID, col.Field)]
		style := cellStyle(m.theme, format, col, current && i == m.cursorCol)
		cells = append(cells, style.Render(truncate(row.Text(col.Field), col.Width-2)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// cellStyle maps a cell format onto a lipgloss style.
func cellStyle(theme Theme, format sheet.CellFormat, col Column, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Width(col.Width).
		MaxWidth(col.Width).
		Padding(0, 1).
		Foreground(lipgloss.Color(theme.Text)).
		Align(alignPosition(format, col)).
		Bold(format.Bold).
		Italic(format.Italic).
		Underline(format.Underline)
	if format.Color != "" {
		style = style.Background(lipgloss.Color(format.Color))
	}
	if selected {
		style = style.
			Background(lipgloss.Color(theme.SelectionBg)).
			Foreground(lipgloss.Color(theme.SelectionText))
	}
	return style
}

// alignPosition returns the cell's explicit alignment. Unformatted row
// numbers are centered like their column title.
func alignPosition(format sheet.CellFormat, col Column) lipgloss.Position {
	if format.Align == "" && col.Field == sheet.FieldRowNumber {
		return lipgloss.Center
	}
	switch format.EffectiveAlign() {
	case sheet.AlignCenter:
		return lipgloss.Center
	case sheet.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func (m Model) renderTotals(styles Styles, rows []sheet.Row) string {
	totals := ColumnTotals(rows)
	cells := make([]string, 0, len(Columns))
	for _, col := range Columns {
		var text string
		switch {
		case col.Field == sheet.FieldProduct:
			text = "Total"
		case col.Numeric:
			text = totals[col.Field].String()
		}
		style := styles.Totals.Width(col.Width).Padding(0, 1)
		cells = append(cells, style.Render(truncate(text, col.Width-2)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// ColumnTotals sums every numeric column over rows. Text values are skipped.
func ColumnTotals(rows []sheet.Row) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, col := range Columns {
		if !col.Numeric {
			continue
		}
		sum := decimal.Zero
		for _, row := range rows {
			if d, ok := row.Number(col.Field); ok {
				sum = sum.Add(d)
			}
		}
		totals[col.Field] = sum
	}
	return totals
}

func gridWidth() int {
	total := 0
	for _, col := range Columns {
		total += col.Width
	}
	return total
}

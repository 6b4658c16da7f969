package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/salesgrid/internal/editor"
	"github.com/five82/salesgrid/internal/export"
	"github.com/five82/salesgrid/internal/prefs"
	"github.com/five82/salesgrid/internal/sheet"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Editor  *editor.Editor
	// Notices carries recoverable failures reported by the sheet.
	Notices <-chan sheet.Notice
	// Prefs is where theme and colour choices are saved; nil disables saving.
	Prefs      prefs.Store
	Preference prefs.Prefs
	ExportPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	editor     *editor.Editor
	notices    <-chan sheet.Notice
	prefs      prefs.Store
	exportPath string

	// UI state
	theme   Theme
	color   string
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int
	ready   bool

	// Data state
	loading bool
	snap    sheet.Snapshot

	// Grid state
	cursorRow int // index into the sorted view
	cursorCol int
	pageSize  int
	sort      sortState

	// Overlays
	showHelp bool
	modal    Modal

	// Snackbar
	notice    *sheet.Notice
	noticeSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pref := opts.Preference
	if pref.Theme == "" {
		pref = prefs.Default()
	}

	exportPath := opts.ExportPath
	if exportPath == "" {
		exportPath = "salesgrid.xlsx"
	}

	theme := GetTheme(pref.Theme)
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m := Model{
		ctx:        ctx,
		editor:     opts.Editor,
		notices:    opts.Notices,
		prefs:      opts.Prefs,
		exportPath: exportPath,
		theme:      theme,
		color:      pref.Color,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    spin,
		pageSize:   PageSizes[0],
		loading:    true,
	}
	if m.editor != nil {
		m.loading = m.editor.Sheet().Loading()
		m.snap = m.editor.Sheet().Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.editor != nil {
		cmds = append(cmds, loadCmd(m.ctx, m.editor.Sheet()))
	}
	if m.notices != nil {
		cmds = append(cmds, waitForNotice(m.notices))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		m.refresh()
		return m, nil

	case noticeMsg:
		cmd := m.setNotice(sheet.Notice(msg))
		return m, tea.Batch(cmd, waitForNotice(m.notices))

	case clearNoticeMsg:
		if int(msg) == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			return m, m.setNotice(sheet.Notice{Severity: sheet.SeverityError, Message: fmt.Sprintf("Export failed: %v", msg.err)})
		}
		return m, m.setNotice(sheet.Notice{Severity: sheet.SeveritySuccess, Message: "Exported to " + msg.path})
	}

	if m.modal != nil {
		var cmd tea.Cmd
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		return m.handleModalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.PageSize):
		m.cyclePageSize()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.sort = m.sort.next(m.cursorCol)
		return m, nil
	}

	if m.handleNavigation(msg) {
		return m, nil
	}

	// Everything below changes the sheet.
	if m.loading || m.editor == nil {
		return m, nil
	}
	return m.handleEditKey(msg)
}

// handleNavigation moves the cursor. It reports whether msg was a movement key.
func (m *Model) handleNavigation(msg tea.KeyMsg) bool {
	rowCount := len(m.snap.Rows)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursorRow--
	case key.Matches(msg, m.keys.Down):
		m.cursorRow++
	case key.Matches(msg, m.keys.Left):
		m.cursorCol--
	case key.Matches(msg, m.keys.Right):
		m.cursorCol++
	case key.Matches(msg, m.keys.Top):
		m.cursorRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursorRow = rowCount - 1
	case key.Matches(msg, m.keys.PageUp):
		m.cursorRow -= m.pageSize
	case key.Matches(msg, m.keys.PageDown):
		m.cursorRow += m.pageSize
	default:
		return false
	}
	m.clampCursor()
	return true
}

// handleEditKey applies formatting, history, edit and export keys.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Undo):
		return m, m.undo()

	case key.Matches(msg, m.keys.Redo):
		return m, m.redo()

	case key.Matches(msg, m.keys.Export):
		return m, exportCmd(m.snap, m.exportPath)
	}

	row, col, ok := m.selected()
	if !ok {
		return m, nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Bold):
		err = m.editor.ToggleFormat(row.ID, col.Field, sheet.Bold)
	case key.Matches(msg, m.keys.Italic):
		err = m.editor.ToggleFormat(row.ID, col.Field, sheet.Italic)
	case key.Matches(msg, m.keys.Underline):
		err = m.editor.ToggleFormat(row.ID, col.Field, sheet.Underline)
	case key.Matches(msg, m.keys.Color):
		current, _ := m.editor.Sheet().Format(row.ID, col.Field)
		next := nextColor(current.Color, m.color)
		m.editor.SetColor(row.ID, col.Field, next.Value)
		m.color = next.Value
		m.savePrefs()
	case key.Matches(msg, m.keys.ClearColor):
		m.editor.SetColor(row.ID, col.Field, "")
	case key.Matches(msg, m.keys.AlignLeft):
		err = m.editor.SetAlign(row.ID, col.Field, sheet.AlignLeft)
	case key.Matches(msg, m.keys.AlignCenter):
		err = m.editor.SetAlign(row.ID, col.Field, sheet.AlignCenter)
	case key.Matches(msg, m.keys.AlignRight):
		err = m.editor.SetAlign(row.ID, col.Field, sheet.AlignRight)
	case key.Matches(msg, m.keys.Edit):
		if !col.Editable {
			return m, m.setNotice(sheet.Notice{Severity: sheet.SeverityWarning, Message: fmt.Sprintf("Column %s is read-only", col.Title)})
		}
		modal, cmd := newEditModal(row, col)
		m.modal = modal
		return m, cmd
	default:
		return m, nil
	}

	m.refresh()
	if err != nil {
		return m, m.setNotice(sheet.Notice{Severity: sheet.SeverityError, Message: err.Error()})
	}
	return m, nil
}

// handleModalKey routes keys to the open modal and applies a submitted edit.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modal, cmd, done := m.modal.Update(msg, m.keys)
	if !done {
		m.modal = modal
		return m, cmd
	}
	m.modal = nil

	edit, ok := modal.(*editModal)
	if !ok || !edit.submitted {
		return m, cmd
	}
	if m.loading || m.editor == nil {
		return m, cmd
	}
	if err := m.editor.EditCell(edit.rowID, edit.field, edit.Value()); err != nil {
		return m, tea.Batch(cmd, m.setNotice(sheet.Notice{Severity: sheet.SeverityError, Message: err.Error()}))
	}
	m.refresh()
	return m, cmd
}

func (m *Model) undo() tea.Cmd {
	ok, err := m.editor.Undo()
	if err != nil {
		return m.setNotice(sheet.Notice{Severity: sheet.SeverityError, Message: err.Error()})
	}
	if !ok {
		return m.setNotice(sheet.Notice{Severity: sheet.SeverityInfo, Message: "Nothing to undo"})
	}
	m.refresh()
	return nil
}

func (m *Model) redo() tea.Cmd {
	ok, err := m.editor.Redo()
	if err != nil {
		return m.setNotice(sheet.Notice{Severity: sheet.SeverityError, Message: err.Error()})
	}
	if !ok {
		return m.setNotice(sheet.Notice{Severity: sheet.SeverityInfo, Message: "Nothing to redo"})
	}
	m.refresh()
	return nil
}

// refresh re-reads the sheet and keeps the cursor in range.
func (m *Model) refresh() {
	if m.editor == nil {
		return
	}
	m.snap = m.editor.Sheet().Snapshot()
	m.clampCursor()
}

func (m *Model) clampCursor() {
	rowCount := len(m.snap.Rows)
	m.cursorRow = clamp(m.cursorRow, 0, rowCount-1)
	m.cursorCol = clamp(m.cursorCol, 0, len(Columns)-1)
}

func (m *Model) cyclePageSize() {
	for i, size := range PageSizes {
		if size == m.pageSize {
			m.pageSize = PageSizes[(i+1)%len(PageSizes)]
			return
		}
	}
	m.pageSize = PageSizes[0]
}

// selected returns the row and column under the cursor.
func (m Model) selected() (sheet.Row, Column, bool) {
	rows := m.visibleRows()
	if len(rows) == 0 || m.cursorRow < 0 || m.cursorRow >= len(rows) {
		return sheet.Row{}, Column{}, false
	}
	return rows[m.cursorRow], Columns[m.cursorCol], true
}

// visibleRows returns the rows in display order.
func (m Model) visibleRows() []sheet.Row {
	return m.sort.apply(m.snap.Rows)
}

// setNotice shows n in the status line and schedules its removal.
func (m *Model) setNotice(n sheet.Notice) tea.Cmd {
	m.noticeSeq++
	m.notice = &n
	return clearNoticeCmd(m.noticeSeq, NoticeTimeout)
}

func (m Model) savePrefs() {
	if m.prefs == nil {
		return
	}
	_ = prefs.Save(m.prefs, prefs.Prefs{Theme: m.theme.Name, Color: m.color})
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: title + load state
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Grid with totals
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	// Snackbar
	b.WriteString(m.renderStatus())

	return b.String()
}

// Messages

type loadedMsg struct{}

type noticeMsg sheet.Notice

type clearNoticeMsg int

type exportedMsg struct {
	path string
	err  error
}

// Commands

func loadCmd(ctx context.Context, s *sheet.Sheet) tea.Cmd {
	return func() tea.Msg {
		s.Load(ctx)
		return loadedMsg{}
	}
}

func waitForNotice(ch <-chan sheet.Notice) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return noticeMsg(n)
	}
}

func clearNoticeCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNoticeMsg(seq)
	})
}

func exportCmd(snap sheet.Snapshot, path string) tea.Cmd {
	return func() tea.Msg {
		err := export.WriteXLSX(snap, ExportColumns(), path)
		return exportedMsg{path: path, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}

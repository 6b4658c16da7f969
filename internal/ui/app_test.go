package ui

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/five82/salesgrid/internal/editor"
	"github.com/five82/salesgrid/internal/growth"
	"github.com/five82/salesgrid/internal/prefs"
	"github.com/five82/salesgrid/internal/sheet"
)

type staticSource struct {
	items []growth.Item
}

func (s staticSource) FetchGrowthData(ctx context.Context) (*growth.Response, error) {
	return &growth.Response{Values: growth.Values{Items: s.items}}, nil
}

type memPrefs struct {
	saved []prefs.Prefs
}

func (m *memPrefs) Save(key string, value any) error {
	m.saved = append(m.saved, value.(prefs.Prefs))
	return nil
}

func (m *memPrefs) Load(key string, dest any) (bool, error) { return false, nil }

func sampleItems() []growth.Item {
	return []growth.Item{
		{"product": "Alpha", "2020": json.Number("10"), "2021": json.Number("5")},
		{"product": "Bravo", "2020": json.Number("30"), "2021": "n/a"},
		{"product": "Charlie", "2020": json.Number("20.5")},
	}
}

func newTestEditor(t *testing.T, items []growth.Item, load bool) *editor.Editor {
	t.Helper()
	s := sheet.New(nil, staticSource{items: items}, sheet.WithLogger(log.New(io.Discard, "", 0)))
	if load {
		s.Load(context.Background())
	}
	return editor.New(s)
}

func newTestModel(t *testing.T) (Model, *editor.Editor) {
	t.Helper()
	ed := newTestEditor(t, sampleItems(), true)
	m := New(Options{Editor: ed})
	m = update(t, m, loadedMsg{})
	return m, ed
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+z":
		return tea.KeyMsg{Type: tea.KeyCtrlZ}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func TestModel_ToggleBoldUndoRedo(t *testing.T) {
	m, ed := newTestModel(t)

	m = press(t, m, "l", "b")
	format, ok := ed.Sheet().Format(0, sheet.FieldProduct)
	if !ok || !format.Bold {
		t.Fatalf("format after b = %#v (present=%v), want bold", format, ok)
	}

	m = press(t, m, "U")
	if format, _ := ed.Sheet().Format(0, sheet.FieldProduct); format.Bold {
		t.Fatalf("format after undo = %#v, want not bold", format)
	}
	if !ed.CanRedo() {
		t.Fatalf("CanRedo = false after undo")
	}

	m = press(t, m, "ctrl+y")
	if format, _ := ed.Sheet().Format(0, sheet.FieldProduct); !format.Bold {
		t.Fatalf("format after redo = %#v, want bold", format)
	}
	if !m.snap.CellFormats[sheet.CellKey(0, sheet.FieldProduct)].Bold {
		t.Fatalf("model snapshot not refreshed after redo")
	}
}

func TestModel_AlignKeys(t *testing.T) {
	m, ed := newTestModel(t)
	m = press(t, m, "l", "l", "]")
	if format, _ := ed.Sheet().Format(0, "2020"); format.Align != sheet.AlignRight {
		t.Fatalf("align = %q, want right", format.Align)
	}
	press(t, m, "=")
	if format, _ := ed.Sheet().Format(0, "2020"); format.Align != sheet.AlignCenter {
		t.Fatalf("align = %q, want center", format.Align)
	}
}

func TestModel_IgnoresEditsWhileLoading(t *testing.T) {
	ed := newTestEditor(t, sampleItems(), false)
	m := New(Options{Editor: ed})
	if !m.loading {
		t.Fatalf("model not loading before Load")
	}

	m = press(t, m, "b", "c", "]", "enter")
	if m.modal != nil {
		t.Fatalf("edit prompt opened while loading")
	}
	if ed.CanUndo() {
		t.Fatalf("history recorded a change while loading")
	}
	if len(ed.Sheet().CellFormats()) != 0 {
		t.Fatalf("formats changed while loading: %#v", ed.Sheet().CellFormats())
	}
}

func TestModel_EditCell(t *testing.T) {
	m, ed := newTestModel(t)

	m = press(t, m, "l", "l", "enter")
	edit, ok := m.modal.(*editModal)
	if !ok {
		t.Fatalf("modal = %T, want *editModal", m.modal)
	}
	if got := edit.Value(); got != "10" {
		t.Fatalf("prompt value = %q, want current cell value 10", got)
	}
	edit.input.SetValue("42")

	m = press(t, m, "enter")
	if m.modal != nil {
		t.Fatalf("modal still open after enter")
	}
	row, _ := ed.Sheet().Row(0)
	if got := row.Text("2020"); got != "42" {
		t.Fatalf("2020 = %q, want 42", got)
	}
	if !ed.CanUndo() {
		t.Fatalf("edit did not record history")
	}
}

func TestModel_EditRejectsText(t *testing.T) {
	m, ed := newTestModel(t)

	m = press(t, m, "l", "l", "enter")
	m.modal.(*editModal).input.SetValue("lots")
	m = press(t, m, "enter")

	if m.notice == nil || m.notice.Severity != sheet.SeverityError {
		t.Fatalf("notice = %#v, want error notice", m.notice)
	}
	row, _ := ed.Sheet().Row(0)
	if got := row.Text("2020"); got != "10" {
		t.Fatalf("2020 = %q, want unchanged 10", got)
	}
	if ed.CanUndo() {
		t.Fatalf("rejected edit recorded history")
	}
}

func TestModel_EditCancel(t *testing.T) {
	m, ed := newTestModel(t)
	m = press(t, m, "l", "enter")
	m.modal.(*editModal).input.SetValue("Zulu")
	m = press(t, m, "esc")

	if m.modal != nil {
		t.Fatalf("modal still open after esc")
	}
	if row, _ := ed.Sheet().Row(0); row.Product != "Alpha" {
		t.Fatalf("product = %q, want Alpha", row.Product)
	}
}

func TestModel_ReadOnlyColumn(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "enter")
	if m.modal != nil {
		t.Fatalf("edit prompt opened on the row number column")
	}
	if m.notice == nil || m.notice.Severity != sheet.SeverityWarning {
		t.Fatalf("notice = %#v, want warning", m.notice)
	}
}

func TestModel_ColorCyclesPaletteAndSavesPrefs(t *testing.T) {
	ed := newTestEditor(t, sampleItems(), true)
	store := &memPrefs{}
	m := New(Options{Editor: ed, Prefs: store, Preference: prefs.Prefs{Theme: "Slate", Color: "#0000FF"}})
	m = update(t, m, loadedMsg{})

	m = press(t, m, "l", "c")
	if format, _ := ed.Sheet().Format(0, sheet.FieldProduct); format.Color != "#0000FF" {
		t.Fatalf("color = %q, want preferred #0000FF", format.Color)
	}
	m = press(t, m, "c")
	if format, _ := ed.Sheet().Format(0, sheet.FieldProduct); format.Color != "#FFA500" {
		t.Fatalf("color = %q, want next palette colour #FFA500", format.Color)
	}
	m = press(t, m, "C")
	if format, _ := ed.Sheet().Format(0, sheet.FieldProduct); format.Color != "" {
		t.Fatalf("color = %q, want cleared", format.Color)
	}

	if len(store.saved) != 2 {
		t.Fatalf("prefs saved %d times, want 2", len(store.saved))
	}
	if last := store.saved[len(store.saved)-1]; last.Color != "#FFA500" || last.Theme != "Slate" {
		t.Fatalf("saved prefs = %#v", last)
	}
	if m.color != "#FFA500" {
		t.Fatalf("model colour = %q, want #FFA500", m.color)
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	ed := newTestEditor(t, sampleItems(), true)
	store := &memPrefs{}
	m := New(Options{Editor: ed, Prefs: store})
	m = press(t, m, "T")
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if len(store.saved) != 1 || store.saved[0].Theme != "Kanagawa" {
		t.Fatalf("saved prefs = %#v", store.saved)
	}
}

func TestModel_SortIsViewOnly(t *testing.T) {
	m, ed := newTestModel(t)
	m = press(t, m, "l", "l", "s")

	order := func(rows []sheet.Row) string {
		names := make([]string, 0, len(rows))
		for _, r := range rows {
			names = append(names, r.Product)
		}
		return strings.Join(names, ",")
	}

	if got := order(m.visibleRows()); got != "Alpha,Charlie,Bravo" {
		t.Fatalf("asc order = %s", got)
	}
	m = press(t, m, "s")
	if got := order(m.visibleRows()); got != "Bravo,Charlie,Alpha" {
		t.Fatalf("desc order = %s", got)
	}
	if got := order(ed.Sheet().Rows()); got != "Alpha,Bravo,Charlie" {
		t.Fatalf("sheet order changed to %s", got)
	}

	// Formatting applies to the row under the cursor in display order.
	m = press(t, m, "b")
	if format, _ := ed.Sheet().Format(1, "2020"); !format.Bold {
		t.Fatalf("bold landed on the wrong row: %#v", ed.Sheet().CellFormats())
	}

	m = press(t, m, "s")
	if got := order(m.visibleRows()); got != "Alpha,Bravo,Charlie" {
		t.Fatalf("unsorted order = %s", got)
	}
}

func TestSort_MissingValuesLast(t *testing.T) {
	rows := []sheet.Row{
		{ID: 0, Product: "A", Values: map[string]any{"2021": "n/a"}},
		{ID: 1, Product: "B", Values: map[string]any{"2021": json.Number("3")}},
		{ID: 2, Product: "C", Values: map[string]any{"2021": json.Number("1")}},
	}
	col := 3 // 2021
	for _, dir := range []sortDir{sortAsc, sortDesc} {
		out := sortState{col: col, dir: dir}.apply(rows)
		if out[2].Product != "A" {
			t.Fatalf("dir %d: last row = %s, want A", dir, out[2].Product)
		}
	}
}

func TestModel_PagingAndPageSize(t *testing.T) {
	items := make([]growth.Item, 0, 30)
	for i := range 30 {
		items = append(items, growth.Item{"product": "P" + strconv.Itoa(i), "2020": json.Number(strconv.Itoa(i))})
	}
	ed := newTestEditor(t, items, true)
	m := update(t, New(Options{Editor: ed}), loadedMsg{})

	m = press(t, m, "pgdown")
	if m.cursorRow != 10 {
		t.Fatalf("cursorRow after pgdown = %d, want 10", m.cursorRow)
	}
	m = press(t, m, "G")
	if m.cursorRow != 29 {
		t.Fatalf("cursorRow after G = %d, want 29", m.cursorRow)
	}
	m = press(t, m, "pgdown", "down")
	if m.cursorRow != 29 {
		t.Fatalf("cursorRow moved past the last row: %d", m.cursorRow)
	}

	m = press(t, m, "z")
	if m.pageSize != 25 {
		t.Fatalf("pageSize = %d, want 25", m.pageSize)
	}
	m = press(t, m, "z", "z")
	if m.pageSize != 10 {
		t.Fatalf("pageSize = %d, want wrap to 10", m.pageSize)
	}
}

func TestModel_NoticeClearsOnlyLatest(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, noticeMsg(sheet.Notice{Severity: sheet.SeverityError, Message: sheet.MsgFetchFailed}))
	m = update(t, m, noticeMsg(sheet.Notice{Severity: sheet.SeverityInfo, Message: "second"}))

	m = update(t, m, clearNoticeMsg(1))
	if m.notice == nil || m.notice.Message != "second" {
		t.Fatalf("stale timer cleared the newer notice: %#v", m.notice)
	}
	m = update(t, m, clearNoticeMsg(2))
	if m.notice != nil {
		t.Fatalf("notice = %#v, want cleared", m.notice)
	}
}

func TestModel_UndoWithNothingToUndo(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "ctrl+z")
	if m.notice == nil || m.notice.Severity != sheet.SeverityInfo {
		t.Fatalf("notice = %#v, want info notice", m.notice)
	}
}

func TestModel_ViewRendersGrid(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	view := m.View()
	for _, want := range []string{"salesgrid", "product", "Alpha", "Charlie", "Total", "60.5"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	m = press(t, m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
}

func TestColumnTotals(t *testing.T) {
	rows := []sheet.Row{
		{Values: map[string]any{"2020": json.Number("10"), "2021": "n/a"}},
		{Values: map[string]any{"2020": json.Number("20.5"), "2021": json.Number("1")}},
	}
	totals := ColumnTotals(rows)
	if !totals["2020"].Equal(decimal.RequireFromString("30.5")) {
		t.Fatalf("2020 total = %s, want 30.5", totals["2020"])
	}
	if !totals["2021"].Equal(decimal.NewFromInt(1)) {
		t.Fatalf("2021 total = %s, want 1", totals["2021"])
	}
	if !totals["2023"].IsZero() {
		t.Fatalf("2023 total = %s, want 0", totals["2023"])
	}
}

func TestNextColor(t *testing.T) {
	cases := []struct {
		current, fallback, want string
	}{
		{"", "#FF0000", "#FF0000"},
		{"", "#123456", "#000000"},
		{"#FF0000", "#000000", "#008000"},
		{"#FFA500", "", "#000000"},
		{"#abcdef", "", "#000000"},
	}
	for _, tc := range cases {
		if got := nextColor(tc.current, tc.fallback).Value; got != tc.want {
			t.Fatalf("nextColor(%q, %q) = %q, want %q", tc.current, tc.fallback, got, tc.want)
		}
	}
}

func TestExportColumns(t *testing.T) {
	cols := ExportColumns()
	if len(cols) != len(Columns) {
		t.Fatalf("ExportColumns returned %d columns, want %d", len(cols), len(Columns))
	}
	if cols[1].Field != sheet.FieldProduct || cols[0].Title != "#" {
		t.Fatalf("ExportColumns = %#v", cols)
	}
}

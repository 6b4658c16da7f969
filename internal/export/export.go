// Package export writes spreadsheet snapshots to xlsx workbooks.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/five82/salesgrid/internal/sheet"
)

// SheetName is the name of the single worksheet in exported workbooks.
const SheetName = "Sales"

// ErrNoColumns is returned when an export is requested without columns.
var ErrNoColumns = errors.New("no columns to export")

// Column selects a row field and the header written above it.
type Column struct {
	Field string
	Title string
}

// WriteXLSX exports snap to path.
func WriteXLSX(snap sheet.Snapshot, columns []Column, path string) error {
	f, err := Workbook(snap, columns)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// Workbook builds an in-memory workbook holding a header row followed by one
// row per spreadsheet row. Cell formats become cell styles.
func Workbook(snap sheet.Snapshot, columns []Column) (*excelize.File, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	w := &writer{file: f, styles: make(map[sheet.CellFormat]int)}
	if err := w.header(columns); err != nil {
		f.Close()
		return nil, err
	}
	for i, row := range snap.Rows {
		if err := w.row(i+2, row, columns, snap.CellFormats); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

type writer struct {
	file   *excelize.File
	styles map[sheet.CellFormat]int
}

func (w *writer) header(columns []Column) error {
	style, err := w.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		title := col.Title
		if title == "" {
			title = col.Field
		}
		if err := w.file.SetCellValue(SheetName, cell, title); err != nil {
			return fmt.Errorf("write header %s: %w", cell, err)
		}
		if err := w.file.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return fmt.Errorf("style header %s: %w", cell, err)
		}
	}
	return nil
}

func (w *writer) row(excelRow int, row sheet.Row, columns []Column, formats sheet.FormatMap) error {
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, excelRow)
		if err != nil {
			return err
		}
		if v, ok := cellValue(row, col.Field); ok {
			if err := w.file.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("write %s: %w", cell, err)
			}
		}
		format, ok := formats[sheet.CellKey(row.ID, col.Field)]
		if !ok || format == (sheet.CellFormat{}) {
			continue
		}
		style, err := w.style(format)
		if err != nil {
			return err
		}
		if err := w.file.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return fmt.Errorf("style %s: %w", cell, err)
		}
	}
	return nil
}

func (w *writer) style(format sheet.CellFormat) (int, error) {
	if id, ok := w.styles[format]; ok {
		return id, nil
	}
	style := &excelize.Style{
		Font: &excelize.Font{
			Bold:   format.Bold,
			Italic: format.Italic,
		},
		Alignment: &excelize.Alignment{Horizontal: string(format.EffectiveAlign())},
	}
	if format.Underline {
		style.Font.Underline = "single"
	}
	if color := fillColor(format.Color); color != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}
	id, err := w.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("cell style: %w", err)
	}
	w.styles[format] = id
	return id, nil
}

// cellValue returns numbers as float64 so spreadsheet apps can sum them.
func cellValue(row sheet.Row, field string) (any, bool) {
	v, ok := row.Field(field)
	if !ok || v == nil {
		return nil, false
	}
	if field == sheet.FieldProduct {
		return v, true
	}
	if d, ok := row.Number(field); ok {
		return d.InexactFloat64(), true
	}
	return v, true
}

func fillColor(color string) string {
	color = strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(color) != 6 {
		return ""
	}
	return strings.ToUpper(color)
}

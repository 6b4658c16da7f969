package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/salesgrid/internal/config"
	"github.com/five82/salesgrid/internal/export"
	"github.com/five82/salesgrid/internal/prefs"
	"github.com/five82/salesgrid/internal/sheet"
	"github.com/five82/salesgrid/internal/ui"
)

// ExportOptions configure a headless xlsx export.
type ExportOptions struct {
	ConfigPath string
	OutputPath string
}

// Export loads the spreadsheet the same way the TUI does and writes it as xlsx.
func Export(ctx context.Context, opts ExportOptions) error {
	snap, err := loadSnapshot(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}
	path := opts.OutputPath
	if strings.TrimSpace(path) == "" {
		path = "salesgrid.xlsx"
	}
	if err := export.WriteXLSX(snap, ui.ExportColumns(), path); err != nil {
		return err
	}
	log.Printf("exported %d rows to %s", len(snap.Rows), path)
	return nil
}

// Show prints the spreadsheet as a plain table with a totals row.
func Show(ctx context.Context, w io.Writer, configPath string) error {
	snap, err := loadSnapshot(ctx, configPath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, renderTable(snap))
	return err
}

// ResetOptions configure Reset.
type ResetOptions struct {
	ConfigPath string
	// All also removes saved preferences.
	All bool
}

// Reset deletes the saved spreadsheet so the next run fetches it again.
func Reset(opts ResetOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	sess, err := openSession(cfg, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	keys := []string{sheet.DefaultKey}
	if opts.All {
		keys = append(keys, prefs.Key)
	}
	for _, key := range keys {
		if err := sess.store.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// loadSnapshot runs a full sheet load and returns the result. Notices are
// logged; an empty result is an error carrying the last notice.
func loadSnapshot(ctx context.Context, configPath string) (sheet.Snapshot, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return sheet.Snapshot{}, fmt.Errorf("load config: %w", err)
	}

	var last *sheet.Notice
	sess, err := openSession(cfg, func(n sheet.Notice) {
		log.Printf("%s: %s", n.Severity, n.Message)
		last = &n
	})
	if err != nil {
		return sheet.Snapshot{}, err
	}
	defer sess.Close()

	sess.sheet.Load(ctx)
	if err := ctx.Err(); err != nil {
		return sheet.Snapshot{}, err
	}
	snap := sess.sheet.Snapshot()
	if len(snap.Rows) == 0 {
		if last != nil {
			return sheet.Snapshot{}, fmt.Errorf("%w: %s", errNoRows, last.Message)
		}
		return sheet.Snapshot{}, errNoRows
	}
	return snap, nil
}

func renderTable(snap sheet.Snapshot) string {
	headers := make([]string, 0, len(ui.Columns))
	for _, col := range ui.Columns {
		headers = append(headers, col.Title)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, row := range snap.Rows {
		cells := make([]string, 0, len(ui.Columns))
		for _, col := range ui.Columns {
			cells = append(cells, row.Text(col.Field))
		}
		t.Row(cells...)
	}

	totals := ui.ColumnTotals(snap.Rows)
	footer := make([]string, 0, len(ui.Columns))
	for _, col := range ui.Columns {
		switch {
		case col.Field == sheet.FieldProduct:
			footer = append(footer, "Total")
		case col.Numeric:
			footer = append(footer, totals[col.Field].String())
		default:
			footer = append(footer, "")
		}
	}
	t.Row(footer...)
	return t.Render()
}

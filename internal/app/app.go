package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/salesgrid/internal/config"
	"github.com/five82/salesgrid/internal/editor"
	"github.com/five82/salesgrid/internal/growth"
	"github.com/five82/salesgrid/internal/prefs"
	"github.com/five82/salesgrid/internal/sheet"
	"github.com/five82/salesgrid/internal/storage"
	"github.com/five82/salesgrid/internal/ui"
)

// noticeBuffer bounds notices queued before the UI reads them.
const noticeBuffer = 16

// Options configure the salesgrid application.
type Options struct {
	ConfigPath string
	ExportPath string // xlsx target for the export key; empty uses ./salesgrid.xlsx
}

// Run boots the salesgrid TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns the terminal, so the standard logger goes to a file.
	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	notices := make(chan sheet.Notice, noticeBuffer)
	sess, err := openSession(cfg, func(n sheet.Notice) {
		select {
		case notices <- n:
		default:
			log.Printf("notice dropped: %s", n.Message)
		}
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	log.Printf("salesgrid starting: store=%s:%s api=%s", cfg.StoreBackend, cfg.StorePath, cfg.APIURL)

	return ui.Run(ui.Options{
		Context:    ctx,
		Editor:     editor.New(sess.sheet),
		Notices:    notices,
		Prefs:      sess.store,
		Preference: prefs.Load(sess.store),
		ExportPath: opts.ExportPath,
	})
}

func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "salesgrid ")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// session is the storage, remote source and sheet shared by the TUI and the
// headless commands.
type session struct {
	cfg   config.Config
	store storage.Store
	sheet *sheet.Sheet
}

func openSession(cfg config.Config, notify func(sheet.Notice)) (*session, error) {
	store, err := storage.Open(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	client, err := growth.NewClient(cfg.APIURL)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("init growth client: %w", err)
	}
	core := sheet.New(store, newRetryFetcher(client, cfg.FetchAttempts), sheet.WithNotifier(notify))
	return &session{cfg: cfg, store: store, sheet: core}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// errNoRows is returned by headless commands when loading produced nothing.
var errNoRows = errors.New("no rows available")

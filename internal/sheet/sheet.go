package sheet

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/five82/salesgrid/internal/growth"
)

// DefaultKey is the storage key the spreadsheet snapshot lives under.
const DefaultKey = "spreadsheet-data"

// Persister is the durable key/value store the sheet writes through to.
// Load reports false, with a nil error, when key holds nothing.
type Persister interface {
	Save(key string, value any) error
	Load(key string, dest any) (bool, error)
}

// Option customises a Sheet.
type Option func(*Sheet)

// WithNotifier sets the callback that receives recoverable failures.
func WithNotifier(fn func(Notice)) Option {
	return func(s *Sheet) { s.notify = fn }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Sheet) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger for load and save diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Sheet) {
		if l != nil {
			s.logger = l
		}
	}
}

type listener struct {
	id int
	fn func(Snapshot)
}

// Sheet owns the live rows and cell formats. Every change is announced to
// subscribers after the state lock is released; the first subscriber is the
// write-through binding to the Persister.
type Sheet struct {
	mu      sync.Mutex
	rows    []Row
	formats FormatMap
	loading bool

	loadOnce  sync.Once
	listeners []listener
	nextID    int

	store  Persister
	source growth.Fetcher
	key    string
	notify func(Notice)
	logger *log.Logger
}

// New builds a Sheet. store may be nil to disable persistence; source may be
// nil when no remote fallback exists.
func New(store Persister, source growth.Fetcher, opts ...Option) *Sheet {
	s := &Sheet{
		formats: FormatMap{},
		loading: true,
		store:   store,
		source:  source,
		key:     DefaultKey,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Subscribe(s.writeThrough)
	return s
}

// Subscribe registers fn to run after every state change. Listeners must not
// mutate the sheet. The returned func removes the subscription.
func (s *Sheet) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool { return l.id == id })
	}
}

// Load adopts the persisted snapshot, or fetches the remote dataset when no
// usable local copy exists. Only the first call does anything. Loading()
// reports false once Load returns, whichever path it took.
func (s *Sheet) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		defer s.finishLoading()
		if s.loadLocal() {
			return
		}
		s.loadRemote(ctx)
	})
}

// Loading reports whether Load has not settled yet.
func (s *Sheet) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Sheet) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Sheet) loadLocal() bool {
	if s.store == nil {
		return false
	}
	var snap Snapshot
	found, err := s.store.Load(s.key, &snap)
	if err == nil && found && len(snap.Rows) > 0 {
		err = snap.Validate()
	}
	if err != nil {
		s.logger.Printf("sheet: load %q from local store: %v", s.key, err)
		s.report(SeverityError, MsgLoadFailed)
		return false
	}
	if !found || len(snap.Rows) == 0 {
		return false
	}
	if snap.CellFormats == nil {
		snap.CellFormats = FormatMap{}
	}
	s.logger.Printf("sheet: loaded %d rows from local store", len(snap.Rows))
	s.apply(snap.Rows, snap.CellFormats)
	return true
}

func (s *Sheet) loadRemote(ctx context.Context) {
	if s.source == nil {
		s.logger.Printf("sheet: no remote source configured")
		s.report(SeverityError, MsgFetchFailed)
		return
	}
	resp, err := s.source.FetchGrowthData(ctx)
	if ctx.Err() != nil {
		// Session ended while the fetch was outstanding.
		return
	}
	if err != nil {
		s.logger.Printf("sheet: fetch growth data: %v", err)
		s.report(SeverityError, MsgFetchFailed)
		return
	}
	if resp == nil {
		return
	}
	rows := make([]Row, 0, len(resp.Values.Items))
	for i, item := range resp.Values.Items {
		rows = append(rows, RowFromItem(i, item))
	}
	s.logger.Printf("sheet: fetched %d rows from remote source", len(rows))
	s.mu.Lock()
	formats := s.formats
	s.mu.Unlock()
	s.apply(rows, formats)
}

func (s *Sheet) writeThrough(snap Snapshot) {
	if s.store == nil || len(snap.Rows) == 0 {
		return
	}
	if err := s.store.Save(s.key, snap); err != nil {
		s.logger.Printf("sheet: save %q: %v", s.key, err)
		s.report(SeverityError, MsgSaveFailed)
	}
}

func (s *Sheet) report(sev Severity, msg string) {
	if s.notify != nil {
		s.notify(Notice{Severity: sev, Message: msg})
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Sheet) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Rows returns a copy of the current rows.
func (s *Sheet) Rows() []Row {
	return s.Snapshot().Rows
}

// CellFormats returns a copy of the current format map.
func (s *Sheet) CellFormats() FormatMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formats.Clone()
}

// Format returns the format of one cell and whether an entry exists.
func (s *Sheet) Format(rowID int, field string) (CellFormat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.formats[CellKey(rowID, field)]
	return f, ok
}

// Row returns the row with id.
func (s *Sheet) Row(id int) (Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.rows[i].Clone(), true
	}
	return Row{}, false
}

// ToggleFormat flips a boolean attribute of one cell, treating an unset
// attribute as false. Other attributes of the cell are kept.
func (s *Sheet) ToggleFormat(rowID int, field string, attr Attribute) error {
	key := CellKey(rowID, field)
	s.mu.Lock()
	next, err := s.formats[key].Toggled(attr)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.formats[key] = next
	s.commitLocked()
	return nil
}

// SetColor sets the colour of one cell. Other attributes are kept.
func (s *Sheet) SetColor(rowID int, field, color string) {
	s.updateFormat(CellKey(rowID, field), func(f CellFormat) CellFormat {
		f.Color = color
		return f
	})
}

// SetAlign sets the alignment of one cell. Other attributes are kept.
func (s *Sheet) SetAlign(rowID int, field string, align Align) error {
	if _, err := ParseAlign(string(align)); err != nil {
		return err
	}
	s.updateFormat(CellKey(rowID, field), func(f CellFormat) CellFormat {
		f.Align = align
		return f
	})
	return nil
}

func (s *Sheet) updateFormat(key string, fn func(CellFormat) CellFormat) {
	s.mu.Lock()
	prev, ok := s.formats[key]
	next := fn(prev)
	if ok && next == prev {
		s.mu.Unlock()
		return
	}
	s.formats[key] = next
	s.commitLocked()
}

// UpdateRow replaces the row whose id matches prior with updated, keeping its
// position. When updated holds the same fields as prior, or prior is not in
// the sheet, nothing changes and prior is returned. Row ids never change.
func (s *Sheet) UpdateRow(updated, prior Row) Row {
	updated.ID = prior.ID
	if updated.Equal(prior) {
		return prior
	}
	s.mu.Lock()
	i := s.indexLocked(prior.ID)
	if i < 0 || s.rows[i].Equal(updated) {
		s.mu.Unlock()
		return prior
	}
	rows := slices.Clone(s.rows)
	rows[i] = updated.Clone()
	s.rows = rows
	s.commitLocked()
	return updated
}

// SetRows replaces every row.
func (s *Sheet) SetRows(rows []Row) error {
	if err := (Snapshot{Rows: rows}).Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	formats := s.formats
	s.mu.Unlock()
	s.apply(rows, formats)
	return nil
}

// SetCellFormats replaces the whole format map.
func (s *Sheet) SetCellFormats(formats FormatMap) {
	s.mu.Lock()
	rows := s.rows
	s.mu.Unlock()
	s.apply(rows, formats)
}

// Restore replaces rows and formats together, announcing a single change.
// It is how undo and redo put a history snapshot back.
func (s *Sheet) Restore(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	s.apply(snap.Rows, snap.CellFormats)
	return nil
}

// apply installs copies of rows and formats and announces the change when
// the state actually differs.
func (s *Sheet) apply(rows []Row, formats FormatMap) {
	next := Snapshot{Rows: rows, CellFormats: formats}.Clone()
	s.mu.Lock()
	if rowsEqual(s.rows, next.Rows) && s.formats.Equal(next.CellFormats) {
		s.mu.Unlock()
		return
	}
	s.rows = next.Rows
	s.formats = next.CellFormats
	s.commitLocked()
}

// commitLocked must be called with s.mu held; it releases the lock and then
// runs the listeners against a copy of the new state.
func (s *Sheet) commitLocked() {
	snap := s.snapshotLocked()
	fns := make([]func(Snapshot), len(s.listeners))
	for i, l := range s.listeners {
		fns[i] = l.fn
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Sheet) snapshotLocked() Snapshot {
	return Snapshot{Rows: s.rows, CellFormats: s.formats}.Clone()
}

func (s *Sheet) indexLocked(id int) int {
	return slices.IndexFunc(s.rows, func(r Row) bool { return r.ID == id })
}

package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/five82/salesgrid/internal/storage"
)

func openStore(t *testing.T) storage.Store {
	t.Helper()
	s, err := storage.OpenFile(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	return s
}

func TestLoad_MissingUsesDefaults(t *testing.T) {
	p := Load(openStore(t))
	if p != Default() {
		t.Fatalf("Load = %#v, want %#v", p, Default())
	}
}

func TestLoad_NilStoreUsesDefaults(t *testing.T) {
	if p := Load(nil); p != Default() {
		t.Fatalf("Load(nil) = %#v, want defaults", p)
	}
}

func TestSave_RoundTrips(t *testing.T) {
	s := openStore(t)
	want := Prefs{Theme: "Slate", Color: "#0000FF"}
	if err := Save(s, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Load(s); got != want {
		t.Fatalf("Load = %#v, want %#v", got, want)
	}
}

func TestLoad_BlankFieldsFallBackToDefault(t *testing.T) {
	s := openStore(t)
	if err := s.Save(Key, map[string]string{"theme": "  ", "color": ""}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := Load(s); got != Default() {
		t.Fatalf("Load = %#v, want defaults", got)
	}
}

type brokenStore struct{}

func (brokenStore) Save(string, any) error         { return errors.New("read-only") }
func (brokenStore) Load(string, any) (bool, error) { return true, errors.New("corrupt") }

func TestLoad_UnreadableFallsBackToDefault(t *testing.T) {
	if got := Load(brokenStore{}); got != Default() {
		t.Fatalf("Load = %#v, want defaults", got)
	}
}

func TestSave_ReportsStoreErrors(t *testing.T) {
	if err := Save(brokenStore{}, Default()); err == nil {
		t.Fatalf("Save returned nil error")
	}
	if err := Save(nil, Default()); err == nil {
		t.Fatalf("Save(nil) returned nil error")
	}
}

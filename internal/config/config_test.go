package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/salesgrid/internal/growth"
	"github.com/five82/salesgrid/internal/storage"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != growth.DefaultBaseURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, growth.DefaultBaseURL)
	}
	if cfg.StoreBackend != storage.BackendSQLite {
		t.Fatalf("StoreBackend = %q, want %q", cfg.StoreBackend, storage.BackendSQLite)
	}
	wantStore := filepath.Join(home, ".local/share/salesgrid", "salesgrid.db")
	if cfg.StorePath != wantStore {
		t.Fatalf("StorePath = %q, want %q", cfg.StorePath, wantStore)
	}
	wantLog := filepath.Join(home, ".local/share/salesgrid", "salesgrid.log")
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.FetchAttempts != 1 {
		t.Fatalf("FetchAttempts = %d, want 1", cfg.FetchAttempts)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  http://localhost:5000  "
store_backend = " FILE "
store_path = "  ~/sheets  "
log_file = "~/logs/grid.log"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://localhost:5000" {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, "http://localhost:5000")
	}
	if cfg.StoreBackend != storage.BackendFile {
		t.Fatalf("StoreBackend = %q, want file", cfg.StoreBackend)
	}
	if cfg.StorePath != filepath.Join(home, "sheets") {
		t.Fatalf("StorePath = %q, want it under HOME %q", cfg.StorePath, home)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_FileBackendDefaultsToDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`store_backend = "file"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.StorePath != filepath.Join(home, ".local/share/salesgrid", "store") {
		t.Fatalf("StorePath = %q", cfg.StorePath)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "   "
store_backend = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != growth.DefaultBaseURL {
		t.Fatalf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.StoreBackend != storage.BackendSQLite {
		t.Fatalf("StoreBackend = %q, want sqlite", cfg.StoreBackend)
	}
}

func TestLoad_UnknownBackendFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`store_backend = "redis"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "store_backend") {
		t.Fatalf("Load error = %v, want store_backend error", err)
	}
}

func TestLoad_FetchAttempts(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"retries enabled", "3", 3, false},
		{"upper bound", "10", 10, false},
		{"negative", "-1", 0, true},
		{"too many", "11", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("fetch_attempts = "+tt.value), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "fetch_attempts") {
					t.Fatalf("Load error = %v, want fetch_attempts error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if cfg.FetchAttempts != tt.want {
				t.Fatalf("FetchAttempts = %d, want %d", cfg.FetchAttempts, tt.want)
			}
		})
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

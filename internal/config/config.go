package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/salesgrid/internal/growth"
	"github.com/five82/salesgrid/internal/storage"
)

// Config holds the settings salesgrid reads from config.toml.
type Config struct {
	APIURL       string
	StoreBackend string
	StorePath    string
	LogFile      string

	// FetchAttempts bounds growth requests per load. Network failures are
	// retried with backoff only when it is above 1.
	FetchAttempts int
}

const (
	defaultConfigPath  = "~/.config/salesgrid/config.toml"
	defaultDataDir     = "~/.local/share/salesgrid"
	defaultSQLiteName  = "salesgrid.db"
	defaultFileDirName = "store"
	defaultLogName     = "salesgrid.log"
	maxFetchAttempts   = 10
)

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		APIURL        string `toml:"api_url"`
		StoreBackend  string `toml:"store_backend"`
		StorePath     string `toml:"store_path"`
		LogFile       string `toml:"log_file"`
		FetchAttempts int    `toml:"fetch_attempts"`
	}

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg := Config{
		APIURL:        strings.TrimSpace(raw.APIURL),
		StoreBackend:  strings.ToLower(strings.TrimSpace(raw.StoreBackend)),
		StorePath:     strings.TrimSpace(raw.StorePath),
		LogFile:       strings.TrimSpace(raw.LogFile),
		FetchAttempts: raw.FetchAttempts,
	}
	if cfg.APIURL == "" {
		cfg.APIURL = growth.DefaultBaseURL
	}

	switch cfg.StoreBackend {
	case "":
		cfg.StoreBackend = storage.BackendSQLite
	case storage.BackendSQLite, storage.BackendFile:
	default:
		return Config{}, fmt.Errorf("parse config: unknown store_backend %q", raw.StoreBackend)
	}

	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath(cfg.StoreBackend)
	}
	cfg.StorePath = mustExpand(cfg.StorePath)

	if cfg.LogFile == "" {
		cfg.LogFile = defaultDataDir + "/" + defaultLogName
	}
	cfg.LogFile = mustExpand(cfg.LogFile)

	switch {
	case cfg.FetchAttempts == 0:
		cfg.FetchAttempts = 1
	case cfg.FetchAttempts < 0 || cfg.FetchAttempts > maxFetchAttempts:
		return Config{}, fmt.Errorf("parse config: fetch_attempts must be between 1 and %d, got %d", maxFetchAttempts, raw.FetchAttempts)
	}

	return cfg, nil
}

func defaultStorePath(backend string) string {
	if backend == storage.BackendFile {
		return defaultDataDir + "/" + defaultFileDirName
	}
	return defaultDataDir + "/" + defaultSQLiteName
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

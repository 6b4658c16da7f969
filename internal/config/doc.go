// Package config loads salesgrid's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/salesgrid/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	api_url = "https://keye-backend-bbns.vercel.app"
//	store_backend = "sqlite"   # or "file"
//	store_path = "~/.local/share/salesgrid/salesgrid.db"
//	log_file = "~/.local/share/salesgrid/salesgrid.log"
//	fetch_attempts = 1          # 2..10 retries network failures
//
// Every field is optional. Tilde expansion is applied to store_path and
// log_file. For the file backend store_path names a directory and defaults
// to ~/.local/share/salesgrid/store.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML parse errors, unknown
// store backends and out-of-range fetch_attempts. A missing config file is NOT an error.
package config

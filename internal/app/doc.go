// Package app provides the orchestration layer for salesgrid.
//
// # Overview
//
// This package is the composition root: it loads configuration, opens the
// local store, builds the growth client and the sheet, and hands them to
// the UI. The headless commands (export, show, reset) reuse the same wiring.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml
//	       ├─────> tea.LogToFile()      Send log output to the log file
//	       ├─────> storage.Open()       SQLite or file store
//	       ├─────> growth.NewClient()   Remote source, optional retries
//	       ├─────> sheet.New()          Write-through state core
//	       ├─────> prefs.Load()         Theme and palette colour
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run): bad config, an unopenable store or log
// file, an invalid API URL. Load, fetch and save failures are not fatal;
// the sheet reports them as notices, which reach the UI over a buffered
// channel.
//
// A failed growth fetch is not retried by default. Setting fetch_attempts
// above 1 retries network failures with exponential backoff; errors the
// server reported are never retried.
package app

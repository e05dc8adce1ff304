// Package app provides the orchestration layer for the LinkUp client.
//
// # Overview
//
// This package wires together configuration, the mock backend, the
// state store, preference persistence, and the UI. It is the
// composition root: everything is constructed here and handed down by
// reference, never reached through package-level singletons.
//
// # Startup sequence
//
//  1. Load config from ~/.config/linkup/config.toml
//  2. Open the debug log sink (file; the terminal belongs to the UI)
//  3. Seed the in-memory dataset and wrap it with the mock service
//  4. Restore persisted preferences into the initial state
//  5. Create the state store and attach the debounced prefs bridge
//  6. Run the TUI until quit or context cancellation
package app

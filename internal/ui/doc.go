// Package ui renders the LinkUp terminal interface with Bubble Tea.
//
// # Overview
//
// The UI is a single Bubble Tea model. Domain state lives in the state
// store; the model keeps only presentation concerns: the latest store
// snapshot, selection cursors, input widgets, and the active input
// mode.
//
// # Architecture
//
//	keypress ─▶ handleKey ─▶ store.Dispatch(action)   (synchronous)
//	                     └─▶ tea.Cmd ─▶ backend call  (goroutine)
//	                                        │
//	result msg ─▶ Update ─▶ store.Dispatch ─┘
//
// Store dispatches happen only inside Update or the key handlers, never
// inside a tea.Cmd, so every reduction is ordered by the Bubble Tea
// event loop. Commands talk to the backend and report back with typed
// result messages.
//
// Optimistic flows (posting, reacting) dispatch the local change before
// the command runs; failure messages roll back or announce as the
// action semantics require.
package ui

// Package state implements the centralized action/reducer core of the
// LinkUp client.
//
// # Overview
//
// Every feature (feed pagination, optimistic post creation, reactions,
// comment threads, messaging, connections, notifications, bookmarks,
// search, navigation, theming) funnels through one State record and
// one pure transition function. Nothing else writes UI-visible state.
//
// # Architecture
//
//	UI handler ──► service call (tea.Cmd, jittered latency)
//	     │                 │
//	     │ optimistic      │ result
//	     ▼                 ▼
//	 store.Dispatch(action) ──► Reduce(state, action) ──► new State
//	     │
//	     ▼
//	 watchers (persistence bridge), next render
//
// Actions form a closed sum type (see actions.go); Reduce is total over
// it and returns the state unchanged for anything it does not
// recognize. Confirmations arrive on independent goroutines with
// independent simulated delays, so dispatch interleaving across
// unrelated handlers is expected and safe; no transition assumes its
// own confirmation arrives before another operation's.
//
// # Optimistic updates
//
// Post creation is a two-phase commit: PostCreated lands an entry
// flagged Optimistic under a local id, then PostConfirmed swaps in the
// server copy or PostFailed rolls the entry back out. Reactions stay
// one-phase: the local tally increments immediately and the server
// count is never reconciled, an accepted divergence.
package state

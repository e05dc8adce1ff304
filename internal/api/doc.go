// Package api provides the mock backend for the LinkUp client.
//
// # Overview
//
// This package stands in for a remote REST service. A Dataset holds the
// in-memory collections (users, posts, comments, conversations,
// messages, notifications, connection requests) and a Service exposes
// the operation surface a real backend would: paginated reads,
// single-resource fetches, and create/update/delete calls, each
// resolving after a jittered artificial delay.
//
// # Architecture
//
// The package is split into three files:
//
//   - types.go: entity and envelope definitions
//   - dataset.go: the seeded fixture collections and id counters
//   - service.go: the latency-simulating operation surface
//
// # Failure semantics
//
// Resolving a primary id that does not exist rejects with a descriptive
// error (ErrUserNotFound, ErrRequestNotFound, ErrConversationNotFound).
// Mutating calls whose target has vanished degrade silently to a zero
// result instead: reacting to a deleted post reports a count of zero,
// deleting an unknown post does nothing. Callers treat both shapes as
// recoverable.
//
// # Concurrency
//
// Bubble Tea executes commands on their own goroutines, so concurrent
// Service calls are expected. The Service serializes all Dataset access
// behind a mutex; the Dataset itself is not safe for direct shared use.
//
// # Usage
//
//	data := api.NewDataset()
//	svc := api.NewService(data, api.WithLogger(log))
//
//	feed, err := svc.FetchFeed(ctx, 1, 3)
//	if err != nil {
//		// surface to the user, never fatal
//	}
package api

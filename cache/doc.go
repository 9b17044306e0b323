// Package cache provides the ephemeral, thread-safe memoization store
// shared by the concurrently running search tasks of one orchestration
// run.
//
// A Store is constructed per run and passed by reference to each task —
// there is no ambient global instance. Get and Put are safe under
// concurrent access; Cleanup removes every entry and is called exactly
// once at run end, regardless of individual task outcomes.
package cache

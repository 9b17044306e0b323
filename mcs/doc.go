// Package mcs wires the search stages into the full maximum-common-
// subgraph pipeline for one (source, target, policy) triple:
//
//	vf2 seed search → feasibility gate → mcgregor extension → aggregation
//
// The raw pass aggregates every maximum mapping the state-space search
// reaches. Extension runs only when the cheap common-element estimate
// says a larger mapping may exist, the raw pass produced seeds, and the
// source is not a query graph. The refined pass starts from a fresh
// aggregator and entirely replaces the raw contribution when it matched
// or beat it; raw results survive only when extension was skipped or
// produced nothing better.
//
// Search results may be memoized in a per-run Memo shared across
// concurrently running tasks: entries are keyed by policy and molecule
// fingerprints, and concurrent identical computations are deduplicated
// with singleflight. Sharing is opportunistic — a Memo is never
// required — and the orchestrator purges it at run end.
//
// Failure containment: an index-resolution fault inside a search stage
// is logged and contributes an empty result; it never crashes the call
// chain. Context cancellation and deadlines propagate as errors.
package mcs

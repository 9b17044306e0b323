// Package mapping defines the injective atom-index correspondence
// produced by the search stages, and the best-size aggregation rule
// both stages publish through.
//
// A Mapping is an ordered list of (source, target) index pairs. The
// invariant every producer must uphold: no source index and no target
// index appears twice, and size never exceeds the smaller graph.
//
// An Aggregator tracks the best mapping size seen so far within one
// pass and keeps only the maximum-size, pairwise-distinct mappings:
//
//   - size > best  — accumulated set is cleared, best resets upward
//   - size == best — appended unless an equal pair-set is present
//   - size < best  — discarded
//
// Best is therefore monotonically non-decreasing across one pass. Each
// pass (raw search, extension refinement) uses a fresh Aggregator.
package mapping

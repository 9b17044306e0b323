// Package reactor runs the MCS pipeline once per matching preset,
// concurrently, and assembles the preset→result table for a reaction.
//
// For each preset (MIN, MAX and MIXTURE always; RINGS when complex
// ring-system mapping is requested) one task is submitted to a worker
// pool bounded to the available hardware parallelism. Each task:
//
//  1. Standardizes its own copy of the reaction through the external
//     collaborator. A standardization fault is logged and the task
//     proceeds in degraded mode with the unstandardized copy; the
//     degradation is observable on Mapped.Standardized.
//  2. Optionally strips hydrogens; mapped pairs are translated back to
//     the original atom numbering before publication.
//  3. Runs the mcs pipeline under an individual timeout. The timeout
//     is preemptive: the context threads into every backtracking step,
//     so an expired task stops instead of burning a worker in the
//     background.
//
// Failures are contained at the task boundary. A task that times out,
// faults, or panics yields no entry for its preset — absence from the
// table means "timed out or failed", never "provably no mapping" — and
// is not retried; sibling presets are unaffected. Finished entries are
// inserted as tasks complete, but the published Table is keyed and
// ordered by preset, read-only.
//
// All tasks of one run share a single mcs.Memo; it is purged exactly
// once after every task has resolved, whatever the individual outcomes.
package reactor

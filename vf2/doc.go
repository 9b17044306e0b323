// Package vf2 implements the state-space backtracking subgraph search
// (VF-style) over molgraph molecules: injective partial and complete
// mappings from source atoms onto target atoms under a match.Policy.
//
// At each step the search extends the mapping by one (source, target)
// pair, preferring a source atom adjacent to an already-mapped one so
// the frontier stays connected and dead branches prune quickly. A
// candidate pair must pass:
//
//  1. Atom compatibility (wildcards on a Query source match anything).
//  2. Bond feasibility: for every already-mapped neighbor of the source
//     atom, the corresponding target bond must exist and be compatible.
//  3. A degree lower bound (target degree ≥ source degree) — skipped
//     for Query sources, whose placeholders carry no degree promise.
//
// Modes:
//
//   - ModeFirst — existence check: stops at the first mapping covering
//     every source atom; when |source| > |target| it answers "no"
//     without searching at all.
//   - ModeAll — enumeration: explores the full space and keeps every
//     maximum-size mapping (maximal partials feed a best-size
//     aggregator; ties kept, duplicates dropped).
//
// Cancellation is preemptive: the context is checked at every
// recursion step, so an expired deadline stops the search promptly
// instead of leaving it running in the background.
//
// Complexity: exponential in the worst case, as for any exact subgraph
// search; the connected-frontier ordering and the feasibility rules
// keep bounded molecular graphs (tens to low hundreds of atoms)
// practical.
//
// Errors:
//
//	ErrNilMolecule  - source or target molecule is nil.
//	context errors  - the configured context was cancelled or timed out.
//	index faults    - wrapped molgraph.ErrAtomNotFound; the call yields
//	                  an empty result, the process never crashes.
package vf2

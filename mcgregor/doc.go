// Package mcgregor implements the backtracking local extension search
// that grows seed mappings produced by the state-space search toward
// larger ones.
//
// The state-space search commits to one node ordering; under bond- or
// ring-sensitive policies that ordering can terminate on a mapping that
// is maximal for the explored branch yet smaller than the true maximum
// common subgraph. Extension compensates: starting from each seed it
// considers every unmapped source atom in a fixed canonical order and
// either maps it onto a compatible free target atom or deliberately
// leaves it unmapped, so completions the seed search never reached are
// explored exactly once each.
//
// Candidate pairs pass the same atom and bond predicates as the seed
// search, evaluated incrementally against the pairs already committed.
// A branch-and-bound cut drops branches that cannot reach the best size
// seen so far.
//
// Orientation: when the target graph is the smaller one, seed roles are
// swapped before extension so growth always proceeds into the larger
// graph, and swapped back before results are reported. The swap
// exchanges the query and target roles of the compatibility predicates,
// so both molecules must be Concrete; query graphs are rejected.
//
// The best-size set across all seeds is returned; ties are kept and
// duplicate pair-sets dropped. The context is checked at every
// recursion step, so cancellation preempts the search.
//
// Errors:
//
//	ErrNilMolecule       - source or target molecule is nil.
//	ErrQueryMolecule     - source or target is a substructure query.
//	ErrSeedNotInjective  - a seed maps an index twice on either side.
//	context errors       - the configured context was cancelled or timed out.
package mcgregor

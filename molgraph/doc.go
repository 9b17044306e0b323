// Package molgraph defines the immutable labeled-graph representation of
// a molecule used by every search stage: atoms as nodes (element symbol,
// optional query wildcard), bonds as edges (order, ring membership).
//
// A Molecule is built once with New and never mutated afterwards; all
// accessors are read-only, so a single instance may be shared freely
// across concurrently running search tasks without locking.
//
// Two kinds of molecule exist, selected by a tag rather than a type:
//
//   - Concrete — every atom carries a real element symbol; compatibility
//     checks compare labels exactly.
//   - Query    — atoms and bonds may carry wildcard matchers; a wildcard
//     atom is compatible with any target atom.
//
// Key features:
//
//   - New(kind, atoms, bonds): validated construction, adjacency index
//     built up front; O(V + E).
//   - Index lookups that fail return ErrAtomNotFound / ErrBondNotFound
//     instead of panicking — one bad index poisons a single search call,
//     never the process.
//   - HeavyAtoms(): hydrogen-stripped view plus an index table back to
//     the original numbering, for hydrogen-insensitive mapping runs.
//   - Fingerprint(): deterministic content hash, the memoization key
//     component for the shared per-run cache.
//   - FromYAML: compact fixture decoding for tests and examples.
//
// Errors:
//
//	ErrNoAtoms       - molecule must contain at least one atom.
//	ErrBondEndpoint  - a bond references an atom index outside the molecule.
//	ErrSelfBond      - a bond joins an atom to itself.
//	ErrAtomNotFound  - requested atom index does not exist.
//	ErrBondNotFound  - requested bond index does not exist.
package molgraph

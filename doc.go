// Package atommap computes atom-to-atom correspondences between the two
// sides of a chemical reaction by maximum-common-subgraph (MCS) search
// over labeled molecular graphs.
//
// 🚀 What is atommap?
//
//	A concurrent, context-aware MCS toolkit that brings together:
//		• molgraph — immutable labeled molecule graphs (atoms, bonds, rings, query wildcards)
//		• match    — graded atom/bond compatibility policies with four named presets
//		• vf2      — state-space substructure/MCS backtracking search
//		• mcgregor — local extension search that grows seed mappings further
//		• mapping  — injective index mappings and best-size aggregation
//		• mcs      — the seed → extend → aggregate pipeline with shared memoization
//		• reactor  — one search task per policy preset, run on a bounded worker pool
//		• rxnio    — RXN-style serialization of a mapped reaction (collaborator, not core)
//
// ✨ Why atommap?
//
//   - Correct by construction – mappings are injective in both directions,
//     the best size only grows during aggregation
//   - Bounded – every backtracking loop checks its context, so a timeout
//     preempts the search instead of leaking a background worker
//   - Deterministic – same inputs and policy yield mappings of identical size
//
// Structure standardization, file parsing and any CLI/GUI surface are
// external collaborators; atommap stays a library.
//
//	go get github.com/atommap/atommap
package atommap

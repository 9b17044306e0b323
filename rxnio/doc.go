// Package rxnio serializes a mapped reaction to a conventional
// RXN-style chemical table file. It is an external collaborator of the
// mapping core, deliberately thin: one writer, one format, no parsing.
//
// The encoding follows the V2000 table layout loosely — a $RXN header,
// per-molecule MOL blocks with atom and bond tables — with the
// atom-atom map number column filled from the first (best) mapping of
// the result. Atoms outside the mapping carry map number 0.
package rxnio

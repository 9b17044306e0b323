// Package molgraph declares the Atom, Bond, BondOrder and Kind types,
// sentinel errors, and the hydrogen element constant.
package molgraph

import "errors"

// Sentinel errors for molecule construction and index resolution.
var (
	// ErrNoAtoms indicates construction of a molecule with an empty atom set.
	ErrNoAtoms = errors.New("molgraph: molecule must contain at least one atom")

	// ErrBondEndpoint indicates a bond referencing an atom index outside the molecule.
	ErrBondEndpoint = errors.New("molgraph: bond endpoint out of range")

	// ErrSelfBond indicates a bond joining an atom to itself.
	ErrSelfBond = errors.New("molgraph: bond joins an atom to itself")

	// ErrNoHeavyAtoms indicates a hydrogen-stripping request on a molecule
	// made of hydrogens only.
	ErrNoHeavyAtoms = errors.New("molgraph: molecule contains only hydrogens")

	// ErrAtomNotFound indicates an atom index that cannot be resolved in its molecule.
	ErrAtomNotFound = errors.New("molgraph: atom index not found")

	// ErrBondNotFound indicates a bond index that cannot be resolved in its molecule.
	ErrBondNotFound = errors.New("molgraph: bond index not found")
)

// Hydrogen is the element symbol stripped by Molecule.HeavyAtoms.
const Hydrogen = "H"

// Kind tags a molecule as a concrete structure or a substructure query.
//
// Matcher behavior is selected by this tag: a Query molecule's wildcard
// atoms and bonds match anything, and searches over a Query source skip
// the degree-based pruning that assumes concrete labels.
type Kind int

const (
	// Concrete marks a molecule whose atoms all carry real element symbols.
	Concrete Kind = iota

	// Query marks a substructure query whose atoms/bonds may be wildcards.
	Query
)

// String returns "Concrete" or "Query".
func (k Kind) String() string {
	if k == Query {
		return "Query"
	}

	return "Concrete"
}

// BondOrder is the bond multiplicity label used as an edge compatibility key.
type BondOrder int

const (
	// OrderAny is the wildcard order carried by query bonds.
	OrderAny BondOrder = iota

	// OrderSingle is a single bond.
	OrderSingle

	// OrderDouble is a double bond.
	OrderDouble

	// OrderTriple is a triple bond.
	OrderTriple

	// OrderAromatic is an aromatic (delocalized) bond.
	OrderAromatic
)

// String returns a short human-readable order name.
func (o BondOrder) String() string {
	switch o {
	case OrderAny:
		return "any"
	case OrderSingle:
		return "single"
	case OrderDouble:
		return "double"
	case OrderTriple:
		return "triple"
	case OrderAromatic:
		return "aromatic"
	default:
		return "unknown"
	}
}

// Atom is a node of the molecular graph.
//
// Symbol is the element label ("C", "N", "O", …). Wildcard marks a query
// placeholder that is compatible with any target atom; it is meaningful
// only inside a Query molecule.
type Atom struct {
	// Symbol is the element label used as the node compatibility key.
	Symbol string

	// Wildcard marks a query don't-care atom.
	Wildcard bool
}

// Bond is an edge of the molecular graph between atom indices A and B.
//
// Order and InRing are the edge compatibility keys; Wildcard marks a
// query bond that matches any target bond regardless of labels.
type Bond struct {
	// A and B are the endpoint atom indices within the owning molecule.
	A, B int

	// Order is the bond multiplicity label.
	Order BondOrder

	// InRing reports whether the bond is part of a ring system.
	InRing bool

	// Wildcard marks a query don't-care bond.
	Wildcard bool
}

// Other returns the endpoint of b opposite to atom index i.
// If i is not an endpoint of b, Other returns -1.
func (b Bond) Other(i int) int {
	switch i {
	case b.A:
		return b.B
	case b.B:
		return b.A
	default:
		return -1
	}
}

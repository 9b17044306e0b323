package molgraph

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Molecule is the immutable labeled graph of one chemical structure.
//
// Construction validates every bond endpoint and builds the adjacency
// index once; afterwards the molecule is strictly read-only, so one
// instance is safe to share across goroutines without locking.
type Molecule struct {
	kind  Kind
	atoms []Atom
	bonds []Bond

	// incident[i] lists the indices of bonds touching atom i.
	incident [][]int
}

// New constructs a validated Molecule of the given kind.
//
// The atom and bond slices are copied; the caller keeps ownership of its
// arguments. Validation (in order):
//  1. At least one atom (ErrNoAtoms).
//  2. Every bond endpoint within [0, len(atoms)) (ErrBondEndpoint).
//  3. No self-bonds (ErrSelfBond).
//
// Complexity: O(V + E).
func New(kind Kind, atoms []Atom, bonds []Bond) (*Molecule, error) {
	if len(atoms) == 0 {
		return nil, ErrNoAtoms
	}

	m := &Molecule{
		kind:     kind,
		atoms:    append([]Atom(nil), atoms...),
		bonds:    append([]Bond(nil), bonds...),
		incident: make([][]int, len(atoms)),
	}

	for i, b := range m.bonds {
		if b.A < 0 || b.A >= len(m.atoms) || b.B < 0 || b.B >= len(m.atoms) {
			return nil, fmt.Errorf("%w: bond %d (%d–%d) with %d atoms", ErrBondEndpoint, i, b.A, b.B, len(m.atoms))
		}
		if b.A == b.B {
			return nil, fmt.Errorf("%w: bond %d at atom %d", ErrSelfBond, i, b.A)
		}
		m.incident[b.A] = append(m.incident[b.A], i)
		m.incident[b.B] = append(m.incident[b.B], i)
	}

	return m, nil
}

// Kind returns the molecule's variant tag (Concrete or Query).
func (m *Molecule) Kind() Kind { return m.kind }

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int { return len(m.atoms) }

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int { return len(m.bonds) }

// Atom resolves atom index i, or reports ErrAtomNotFound.
func (m *Molecule) Atom(i int) (Atom, error) {
	if i < 0 || i >= len(m.atoms) {
		return Atom{}, fmt.Errorf("%w: index %d of %d", ErrAtomNotFound, i, len(m.atoms))
	}

	return m.atoms[i], nil
}

// Bond resolves bond index i, or reports ErrBondNotFound.
func (m *Molecule) Bond(i int) (Bond, error) {
	if i < 0 || i >= len(m.bonds) {
		return Bond{}, fmt.Errorf("%w: index %d of %d", ErrBondNotFound, i, len(m.bonds))
	}

	return m.bonds[i], nil
}

// IncidentBonds returns the indices of all bonds touching atom i.
// The returned slice is a copy; an out-of-range index yields nil.
func (m *Molecule) IncidentBonds(i int) []int {
	if i < 0 || i >= len(m.incident) {
		return nil
	}

	return append([]int(nil), m.incident[i]...)
}

// Degree returns the number of bonds touching atom i (0 when out of range).
func (m *Molecule) Degree(i int) int {
	if i < 0 || i >= len(m.incident) {
		return 0
	}

	return len(m.incident[i])
}

// Neighbors returns the atom indices adjacent to atom i, in incident-bond
// order. Parallel bonds yield repeated neighbors; out of range yields nil.
func (m *Molecule) Neighbors(i int) []int {
	if i < 0 || i >= len(m.incident) {
		return nil
	}
	out := make([]int, 0, len(m.incident[i]))
	for _, bi := range m.incident[i] {
		out = append(out, m.bonds[bi].Other(i))
	}

	return out
}

// BondBetween returns the bond joining atoms a and b and true if one
// exists, or the zero Bond and false otherwise.
func (m *Molecule) BondBetween(a, b int) (Bond, bool) {
	if a < 0 || a >= len(m.incident) {
		return Bond{}, false
	}
	for _, bi := range m.incident[a] {
		if m.bonds[bi].Other(a) == b {
			return m.bonds[bi], true
		}
	}

	return Bond{}, false
}

// Clone returns an independent deep copy of the molecule.
func (m *Molecule) Clone() *Molecule {
	c, _ := New(m.kind, m.atoms, m.bonds) // inputs were validated once already

	return c
}

// Symbols returns the multiset of element symbols, sorted.
// Useful for cheap common-atom feasibility estimates.
func (m *Molecule) Symbols() []string {
	out := make([]string, len(m.atoms))
	for i, a := range m.atoms {
		out[i] = a.Symbol
	}
	sort.Strings(out)

	return out
}

// Fingerprint returns a deterministic content hash of the molecule, used
// as the memoization key component for shared per-run caches. Molecules
// with identical kind, atoms and bonds (in order) share a fingerprint.
func (m *Molecule) Fingerprint() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "k%d;", m.kind)
	for _, a := range m.atoms {
		fmt.Fprintf(h, "a%s%t;", a.Symbol, a.Wildcard)
	}
	for _, b := range m.bonds {
		fmt.Fprintf(h, "b%d-%d:%d%t%t;", b.A, b.B, b.Order, b.InRing, b.Wildcard)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

// HeavyAtoms returns a hydrogen-stripped copy of the molecule together
// with a table mapping each stripped index back to the original atom
// index. Bonds incident to a hydrogen are dropped. When the molecule
// contains no hydrogens the receiver itself is returned with an identity
// table. A molecule made of hydrogens only reports ErrNoHeavyAtoms.
func (m *Molecule) HeavyAtoms() (*Molecule, []int, error) {
	toOld := make([]int, 0, len(m.atoms))
	toNew := make([]int, len(m.atoms))
	for i, a := range m.atoms {
		if a.Symbol == Hydrogen && !a.Wildcard {
			toNew[i] = -1
			continue
		}
		toNew[i] = len(toOld)
		toOld = append(toOld, i)
	}

	if len(toOld) == 0 {
		return nil, nil, ErrNoHeavyAtoms
	}
	if len(toOld) == len(m.atoms) {
		return m, toOld, nil
	}

	atoms := make([]Atom, len(toOld))
	for ni, oi := range toOld {
		atoms[ni] = m.atoms[oi]
	}
	bonds := make([]Bond, 0, len(m.bonds))
	for _, b := range m.bonds {
		if toNew[b.A] < 0 || toNew[b.B] < 0 {
			continue
		}
		nb := b
		nb.A, nb.B = toNew[b.A], toNew[b.B]
		bonds = append(bonds, nb)
	}

	heavy, _ := New(m.kind, atoms, bonds) // endpoints remapped consistently

	return heavy, toOld, nil
}

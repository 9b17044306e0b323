package vf2_test

import (
	"testing"

	"github.com/atommap/atommap/match"
	"github.com/atommap/atommap/molgraph"
	"github.com/atommap/atommap/vf2"
)

// BenchmarkFind_Chain measures the exhaustive search mapping a carbon
// chain of 12 atoms onto itself. The chain is built once; each
// iteration runs the full backtracking enumeration.
func BenchmarkFind_Chain(b *testing.B) {
	// 1. Build a linear C12 skeleton: C0-C1-...-C11.
	const n = 12
	atoms := make([]molgraph.Atom, n)
	bonds := make([]molgraph.Bond, 0, n-1)
	for i := 0; i < n; i++ {
		atoms[i] = molgraph.Atom{Symbol: "C"}
		if i > 0 {
			bonds = append(bonds, molgraph.Bond{A: i - 1, B: i, Order: molgraph.OrderSingle})
		}
	}
	m, err := molgraph.New(molgraph.Concrete, atoms, bonds)
	if err != nil {
		b.Fatal(err)
	}

	// 2. Run the enumeration b.N times on the prepared molecule.
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vf2.Find(m, m, match.Policy{}, vf2.ModeAll)
	}
}

// BenchmarkFind_FirstCover measures the existence check on the same
// chain, which stops at the first complete cover.
func BenchmarkFind_FirstCover(b *testing.B) {
	const n = 12
	atoms := make([]molgraph.Atom, n)
	bonds := make([]molgraph.Bond, 0, n-1)
	for i := 0; i < n; i++ {
		atoms[i] = molgraph.Atom{Symbol: "C"}
		if i > 0 {
			bonds = append(bonds, molgraph.Bond{A: i - 1, B: i, Order: molgraph.OrderSingle})
		}
	}
	m, err := molgraph.New(molgraph.Concrete, atoms, bonds)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vf2.Find(m, m, match.Policy{}, vf2.ModeFirst)
	}
}

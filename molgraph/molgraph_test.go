package molgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atommap/atommap/molgraph"
)

// ethanolHeavy builds the heavy-atom skeleton of ethanol: C-C-O.
func ethanolHeavy(t *testing.T) *molgraph.Molecule {
	t.Helper()
	m, err := molgraph.New(molgraph.Concrete,
		[]molgraph.Atom{{Symbol: "C"}, {Symbol: "C"}, {Symbol: "O"}},
		[]molgraph.Bond{
			{A: 0, B: 1, Order: molgraph.OrderSingle},
			{A: 1, B: 2, Order: molgraph.OrderSingle},
		})
	require.NoError(t, err)

	return m
}

func TestNew_NoAtoms(t *testing.T) {
	m, err := molgraph.New(molgraph.Concrete, nil, nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, molgraph.ErrNoAtoms)
}

func TestNew_BondEndpointOutOfRange(t *testing.T) {
	_, err := molgraph.New(molgraph.Concrete,
		[]molgraph.Atom{{Symbol: "C"}},
		[]molgraph.Bond{{A: 0, B: 7, Order: molgraph.OrderSingle}})
	assert.ErrorIs(t, err, molgraph.ErrBondEndpoint)
}

func TestNew_SelfBond(t *testing.T) {
	_, err := molgraph.New(molgraph.Concrete,
		[]molgraph.Atom{{Symbol: "C"}},
		[]molgraph.Bond{{A: 0, B: 0, Order: molgraph.OrderSingle}})
	assert.ErrorIs(t, err, molgraph.ErrSelfBond)
}

func TestAccessors(t *testing.T) {
	m := ethanolHeavy(t)

	assert.Equal(t, 3, m.AtomCount())
	assert.Equal(t, 2, m.BondCount())
	assert.Equal(t, molgraph.Concrete, m.Kind())

	a, err := m.Atom(2)
	require.NoError(t, err)
	assert.Equal(t, "O", a.Symbol)

	b, err := m.Bond(1)
	require.NoError(t, err)
	assert.Equal(t, 1, b.A)
	assert.Equal(t, 2, b.B)

	assert.Equal(t, 2, m.Degree(1))
	assert.ElementsMatch(t, []int{0, 2}, m.Neighbors(1))

	bond, ok := m.BondBetween(2, 1)
	assert.True(t, ok)
	assert.Equal(t, molgraph.OrderSingle, bond.Order)

	_, ok = m.BondBetween(0, 2)
	assert.False(t, ok)
}

func TestIndexFaults(t *testing.T) {
	m := ethanolHeavy(t)

	_, err := m.Atom(99)
	assert.ErrorIs(t, err, molgraph.ErrAtomNotFound)
	_, err = m.Atom(-1)
	assert.ErrorIs(t, err, molgraph.ErrAtomNotFound)
	_, err = m.Bond(5)
	assert.ErrorIs(t, err, molgraph.ErrBondNotFound)

	assert.Nil(t, m.Neighbors(42))
	assert.Zero(t, m.Degree(-3))
}

func TestBond_Other(t *testing.T) {
	b := molgraph.Bond{A: 3, B: 7}
	assert.Equal(t, 7, b.Other(3))
	assert.Equal(t, 3, b.Other(7))
	assert.Equal(t, -1, b.Other(5))
}

func TestClone_Independent(t *testing.T) {
	m := ethanolHeavy(t)
	c := m.Clone()

	assert.Equal(t, m.AtomCount(), c.AtomCount())
	assert.Equal(t, m.Fingerprint(), c.Fingerprint())
	assert.NotSame(t, m, c)
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := ethanolHeavy(t)
	b := ethanolHeavy(t)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	// A different bond order must change the fingerprint.
	m, err := molgraph.New(molgraph.Concrete,
		[]molgraph.Atom{{Symbol: "C"}, {Symbol: "C"}, {Symbol: "O"}},
		[]molgraph.Bond{
			{A: 0, B: 1, Order: molgraph.OrderDouble},
			{A: 1, B: 2, Order: molgraph.OrderSingle},
		})
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), m.Fingerprint())
}

func TestSymbols_SortedMultiset(t *testing.T) {
	m := ethanolHeavy(t)
	assert.Equal(t, []string{"C", "C", "O"}, m.Symbols())
}

func TestHeavyAtoms_StripsHydrogens(t *testing.T) {
	// Full ethanol: C-C-O with hydrogens attached.
	m, err := molgraph.New(molgraph.Concrete,
		[]molgraph.Atom{
			{Symbol: "C"}, {Symbol: "C"}, {Symbol: "O"},
			{Symbol: "H"}, {Symbol: "H"}, {Symbol: "H"},
		},
		[]molgraph.Bond{
			{A: 0, B: 1, Order: molgraph.OrderSingle},
			{A: 1, B: 2, Order: molgraph.OrderSingle},
			{A: 0, B: 3, Order: molgraph.OrderSingle},
			{A: 0, B: 4, Order: molgraph.OrderSingle},
			{A: 2, B: 5, Order: molgraph.OrderSingle},
		})
	require.NoError(t, err)

	heavy, toOld, err := m.HeavyAtoms()
	require.NoError(t, err)
	assert.Equal(t, 3, heavy.AtomCount())
	assert.Equal(t, 2, heavy.BondCount())
	assert.Equal(t, []int{0, 1, 2}, toOld)

	o, err := heavy.Atom(2)
	require.NoError(t, err)
	assert.Equal(t, "O", o.Symbol)
}

func TestHeavyAtoms_NoHydrogens_ReturnsReceiver(t *testing.T) {
	m := ethanolHeavy(t)
	heavy, toOld, err := m.HeavyAtoms()
	require.NoError(t, err)
	assert.Same(t, m, heavy)
	assert.Equal(t, []int{0, 1, 2}, toOld)
}

func TestHeavyAtoms_AllHydrogens(t *testing.T) {
	h2, err := molgraph.New(molgraph.Concrete,
		[]molgraph.Atom{{Symbol: "H"}, {Symbol: "H"}},
		[]molgraph.Bond{{A: 0, B: 1, Order: molgraph.OrderSingle}})
	require.NoError(t, err)

	heavy, toOld, err := h2.HeavyAtoms()
	assert.ErrorIs(t, err, molgraph.ErrNoHeavyAtoms)
	assert.Nil(t, heavy)
	assert.Nil(t, toOld)
}

func TestFromYAML(t *testing.T) {
	m, err := molgraph.FromYAML([]byte(`
atoms:
  - symbol: C
  - symbol: C
  - symbol: O
bonds:
  - [0, 1, single]
  - a: 1
    b: 2
    order: single
`))
	require.NoError(t, err)
	assert.Equal(t, 3, m.AtomCount())
	assert.Equal(t, 2, m.BondCount())
	assert.Equal(t, molgraph.Concrete, m.Kind())
}

func TestFromYAML_QueryWildcards(t *testing.T) {
	m, err := molgraph.FromYAML([]byte(`
kind: query
atoms:
  - symbol: "*"
  - symbol: N
bonds:
  - [0, 1, any]
`))
	require.NoError(t, err)
	assert.Equal(t, molgraph.Query, m.Kind())

	a, err := m.Atom(0)
	require.NoError(t, err)
	assert.True(t, a.Wildcard)

	b, err := m.Bond(0)
	require.NoError(t, err)
	assert.True(t, b.Wildcard)
}

func TestFromYAML_Rejects(t *testing.T) {
	_, err := molgraph.FromYAML([]byte("kind: weird\natoms: [{symbol: C}]"))
	assert.Error(t, err)

	_, err = molgraph.FromYAML([]byte("atoms: [{symbol: C}]\nbonds: [[0, 1, quintuple]]"))
	assert.Error(t, err)

	_, err = molgraph.FromYAML([]byte("atoms: [{symbol: C}]\nbonds: [[0, 9]]"))
	assert.ErrorIs(t, err, molgraph.ErrBondEndpoint)
}

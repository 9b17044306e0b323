package vf2_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atommap/atommap/match"
	"github.com/atommap/atommap/molgraph"
	"github.com/atommap/atommap/vf2"
)

// mol builds a concrete molecule from symbols and bonds, failing the
// test on construction errors.
func mol(t *testing.T, symbols []string, bonds []molgraph.Bond) *molgraph.Molecule {
	t.Helper()
	atoms := make([]molgraph.Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = molgraph.Atom{Symbol: s}
	}
	m, err := molgraph.New(molgraph.Concrete, atoms, bonds)
	require.NoError(t, err)

	return m
}

// ethanol is the heavy-atom skeleton C-C-O.
func ethanol(t *testing.T) *molgraph.Molecule {
	t.Helper()

	return mol(t, []string{"C", "C", "O"}, []molgraph.Bond{
		{A: 0, B: 1, Order: molgraph.OrderSingle},
		{A: 1, B: 2, Order: molgraph.OrderSingle},
	})
}

func TestFind_NilMolecule(t *testing.T) {
	_, err := vf2.Find(nil, ethanol(t), match.Policy{}, vf2.ModeAll)
	assert.ErrorIs(t, err, vf2.ErrNilMolecule)

	_, err = vf2.Find(ethanol(t), nil, match.Policy{}, vf2.ModeFirst)
	assert.ErrorIs(t, err, vf2.ErrNilMolecule)
}

func TestFind_IdentityCover(t *testing.T) {
	res, err := vf2.Find(ethanol(t), ethanol(t), match.Policy{}, vf2.ModeAll)
	require.NoError(t, err)

	assert.True(t, res.Covered)
	assert.Equal(t, 3, res.BestSize())
	require.Len(t, res.Mappings, 1)
	for _, p := range res.Mappings[0] {
		assert.Equal(t, p.S, p.T)
	}
}

func TestFind_ModeFirst_SizePrecheck(t *testing.T) {
	src := ethanol(t)
	dst := mol(t, []string{"C"}, nil)

	res, err := vf2.Find(src, dst, match.Policy{}, vf2.ModeFirst)
	require.NoError(t, err)

	assert.False(t, res.Covered)
	assert.Empty(t, res.Mappings)
}

func TestFind_NoCompatiblePair(t *testing.T) {
	src := mol(t, []string{"C", "C"}, []molgraph.Bond{{A: 0, B: 1, Order: molgraph.OrderSingle}})
	dst := mol(t, []string{"N", "N"}, []molgraph.Bond{{A: 0, B: 1, Order: molgraph.OrderSingle}})

	res, err := vf2.Find(src, dst, match.Policy{}, vf2.ModeAll)
	require.NoError(t, err)

	assert.False(t, res.Covered)
	assert.Empty(t, res.Mappings)
	assert.Equal(t, 0, res.BestSize())
}

func TestFind_BondSensitivity(t *testing.T) {
	ethene := mol(t, []string{"C", "C"}, []molgraph.Bond{{A: 0, B: 1, Order: molgraph.OrderDouble}})
	ethane := mol(t, []string{"C", "C"}, []molgraph.Bond{{A: 0, B: 1, Order: molgraph.OrderSingle}})

	// Any-bond policy connects them fully.
	loose, err := vf2.Find(ethene, ethane, match.Policy{}, vf2.ModeAll)
	require.NoError(t, err)
	assert.True(t, loose.Covered)
	assert.Equal(t, 2, loose.BestSize())

	// Order equality breaks the cover; single-atom partials remain.
	strict, err := vf2.Find(ethene, ethane, match.Policy{BondSensitive: true}, vf2.ModeAll)
	require.NoError(t, err)
	assert.False(t, strict.Covered)
	assert.Equal(t, 1, strict.BestSize())

	first, err := vf2.Find(ethene, ethane, match.Policy{BondSensitive: true}, vf2.ModeFirst)
	require.NoError(t, err)
	assert.False(t, first.Covered)
}

func TestFind_QueryWildcards(t *testing.T) {
	atoms := []molgraph.Atom{{Wildcard: true}, {Symbol: "O"}}
	bonds := []molgraph.Bond{{A: 0, B: 1, Order: molgraph.OrderAny, Wildcard: true}}
	query, err := molgraph.New(molgraph.Query, atoms, bonds)
	require.NoError(t, err)

	res, err := vf2.Find(query, ethanol(t), match.Policy{BondSensitive: true}, vf2.ModeFirst)
	require.NoError(t, err)

	assert.True(t, res.Covered, "wildcard atom and bond accept any counterpart")
}

func TestFind_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := vf2.Find(ethanol(t), ethanol(t), match.Policy{}, vf2.ModeAll, vf2.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFind_InjectiveResults(t *testing.T) {
	// Two equivalent methyl positions in propane give several maxima.
	propane := mol(t, []string{"C", "C", "C"}, []molgraph.Bond{
		{A: 0, B: 1, Order: molgraph.OrderSingle},
		{A: 1, B: 2, Order: molgraph.OrderSingle},
	})

	res, err := vf2.Find(propane, propane, match.Policy{}, vf2.ModeAll)
	require.NoError(t, err)

	assert.True(t, res.Covered)
	require.NotEmpty(t, res.Mappings)
	for _, m := range res.Mappings {
		assert.True(t, m.Injective())
		assert.Equal(t, 3, m.Size())
	}
	assert.Len(t, res.Mappings, 2, "identity and end-swapped covers")
}

package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atommap/atommap/match"
	"github.com/atommap/atommap/molgraph"
)

func TestPresetPolicies(t *testing.T) {
	assert.Equal(t, match.Policy{BondSensitive: true}, match.PresetMin.Policy())
	assert.Equal(t, match.Policy{}, match.PresetMax.Policy())
	assert.Equal(t, match.Policy{AtomTypeSensitive: true}, match.PresetMixture.Policy())
	assert.Equal(t,
		match.Policy{BondSensitive: true, RingSensitive: true, AtomTypeSensitive: true},
		match.PresetRings.Policy())
}

func TestPresetNames(t *testing.T) {
	assert.Equal(t, "MIN", match.PresetMin.String())
	assert.Equal(t, "MAX", match.PresetMax.String())
	assert.Equal(t, "MIXTURE", match.PresetMixture.String())
	assert.Equal(t, "RINGS", match.PresetRings.String())
}

func TestPresets_Orchestration(t *testing.T) {
	assert.Equal(t, []match.Preset{match.PresetMin, match.PresetMax, match.PresetMixture},
		match.Presets(false))
	assert.Equal(t, []match.Preset{match.PresetMin, match.PresetMax, match.PresetMixture, match.PresetRings},
		match.Presets(true))
}

func TestAtomCompatible(t *testing.T) {
	p := match.Policy{}
	c := molgraph.Atom{Symbol: "C"}
	n := molgraph.Atom{Symbol: "N"}
	wild := molgraph.Atom{Wildcard: true}

	assert.True(t, p.AtomCompatible(c, c))
	assert.False(t, p.AtomCompatible(c, n))
	assert.True(t, p.AtomCompatible(wild, c))
	assert.True(t, p.AtomCompatible(wild, n))
	// Wildcard only short-circuits on the query side.
	assert.False(t, p.AtomCompatible(c, molgraph.Atom{Symbol: "N", Wildcard: true}))
}

func TestBondCompatible_Graded(t *testing.T) {
	single := molgraph.Bond{Order: molgraph.OrderSingle}
	double := molgraph.Bond{Order: molgraph.OrderDouble}
	singleRing := molgraph.Bond{Order: molgraph.OrderSingle, InRing: true}
	wild := molgraph.Bond{Wildcard: true}

	// any: always true.
	loose := match.Policy{}
	assert.True(t, loose.BondCompatible(single, double))

	// order-equal.
	ordered := match.Policy{BondSensitive: true}
	assert.True(t, ordered.BondCompatible(single, single))
	assert.False(t, ordered.BondCompatible(single, double))
	// Ring membership ignored without RingSensitive.
	assert.True(t, ordered.BondCompatible(single, singleRing))

	// strict-order-with-ring.
	strict := match.Policy{BondSensitive: true, RingSensitive: true}
	assert.True(t, strict.BondCompatible(singleRing, singleRing))
	assert.False(t, strict.BondCompatible(single, singleRing))
	assert.False(t, strict.BondCompatible(singleRing, double))

	// Query wildcard bonds match anything in every mode.
	assert.True(t, strict.BondCompatible(wild, double))
}

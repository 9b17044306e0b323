package match

import (
	"fmt"

	"github.com/atommap/atommap/molgraph"
)

// Policy is a named comparator configuration: which graph labels must
// agree for an atom pair or bond pair to be considered compatible.
// The zero value is the most permissive policy (element match only).
type Policy struct {
	// BondSensitive requires bond orders to match.
	BondSensitive bool

	// RingSensitive additionally requires ring membership to match.
	// Only meaningful together with BondSensitive (strict order mode).
	RingSensitive bool

	// AtomTypeSensitive tightens atom matching to the exact typed label.
	AtomTypeSensitive bool
}

// AtomCompatible reports whether query atom q may map onto target atom t.
//
// A wildcard query atom matches any target atom. Otherwise the element
// symbols must be equal; AtomTypeSensitive keeps exact symbol equality
// as the typed predicate (symbols already carry the type label).
func (p Policy) AtomCompatible(q, t molgraph.Atom) bool {
	if q.Wildcard {
		return true
	}

	return q.Symbol == t.Symbol
}

// BondCompatible reports whether query bond q may map onto target bond t
// under the policy's graded mode:
//
//	any                    — BondSensitive unset: always true
//	order-equal            — BondSensitive: orders must match
//	strict-order-with-ring — BondSensitive+RingSensitive: orders AND
//	                         ring membership must match
//
// A wildcard query bond matches any target bond in every mode.
func (p Policy) BondCompatible(q, t molgraph.Bond) bool {
	if q.Wildcard {
		return true
	}
	if !p.BondSensitive {
		return true
	}
	if q.Order != t.Order {
		return false
	}
	if p.RingSensitive && q.InRing != t.InRing {
		return false
	}

	return true
}

// Preset names one of the four fixed policies driven by the orchestrator.
type Preset int

const (
	// PresetMin is the local model: bond-order sensitive.
	PresetMin Preset = iota

	// PresetMax is the global model: the most permissive policy.
	PresetMax

	// PresetMixture is the mixture model: permissive bonds, typed atoms.
	PresetMixture

	// PresetRings is the ring-system model: the strictest policy,
	// used only when complex (ring) mapping is requested.
	PresetRings
)

// presetPolicies is the fixed preset → policy table. Presets are data,
// not behavior: enumerable, comparable, immutable.
var presetPolicies = map[Preset]Policy{
	PresetMin:     {BondSensitive: true},
	PresetMax:     {},
	PresetMixture: {AtomTypeSensitive: true},
	PresetRings:   {BondSensitive: true, RingSensitive: true, AtomTypeSensitive: true},
}

// Policy returns the comparator configuration bound to the preset.
// Unknown presets yield the zero (most permissive) policy.
func (p Preset) Policy() Policy { return presetPolicies[p] }

// String returns the preset's orchestration-layer name.
func (p Preset) String() string {
	switch p {
	case PresetMin:
		return "MIN"
	case PresetMax:
		return "MAX"
	case PresetMixture:
		return "MIXTURE"
	case PresetRings:
		return "RINGS"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// Presets returns the fixed orchestration set: MIN, MAX and MIXTURE
// always, plus RINGS when complex (ring-system) mapping is requested.
func Presets(checkComplex bool) []Preset {
	out := []Preset{PresetMin, PresetMax, PresetMixture}
	if checkComplex {
		out = append(out, PresetRings)
	}

	return out
}

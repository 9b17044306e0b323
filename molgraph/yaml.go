package molgraph

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlMolecule is the compact fixture schema decoded by FromYAML.
//
//	kind: query            # optional; "concrete" (default) or "query"
//	atoms:
//	  - symbol: C
//	  - symbol: "*"        # wildcard: true also accepted
//	    wildcard: true
//	bonds:
//	  - [0, 1, single]     # a, b, order
//	  - a: 1
//	    b: 2
//	    order: aromatic
//	    ring: true
type yamlMolecule struct {
	Kind  string     `yaml:"kind"`
	Atoms []yamlAtom `yaml:"atoms"`
	Bonds []yamlBond `yaml:"bonds"`
}

type yamlAtom struct {
	Symbol   string `yaml:"symbol"`
	Wildcard bool   `yaml:"wildcard"`
}

type yamlBond struct {
	A        int    `yaml:"a"`
	B        int    `yaml:"b"`
	Order    string `yaml:"order"`
	Ring     bool   `yaml:"ring"`
	Wildcard bool   `yaml:"wildcard"`
}

// UnmarshalYAML accepts either the mapping form or the terse
// [a, b, order] sequence form for a bond.
func (b *yamlBond) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var seq []yaml.Node
		if err := node.Decode(&seq); err != nil {
			return err
		}
		if len(seq) < 2 || len(seq) > 3 {
			return fmt.Errorf("molgraph: bond sequence wants [a, b] or [a, b, order], got %d items", len(seq))
		}
		if err := seq[0].Decode(&b.A); err != nil {
			return err
		}
		if err := seq[1].Decode(&b.B); err != nil {
			return err
		}
		if len(seq) == 3 {
			return seq[2].Decode(&b.Order)
		}
		b.Order = "single"

		return nil
	}

	type plain yamlBond // avoid recursing into this method
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*b = yamlBond(p)

	return nil
}

// FromYAML decodes a molecule fixture.
//
// Unknown bond orders and kinds are rejected; the result passes through
// New, so structural validation applies as usual.
func FromYAML(data []byte) (*Molecule, error) {
	var ym yamlMolecule
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("molgraph: decode fixture: %w", err)
	}

	kind := Concrete
	switch ym.Kind {
	case "", "concrete":
	case "query":
		kind = Query
	default:
		return nil, fmt.Errorf("molgraph: unknown kind %q", ym.Kind)
	}

	atoms := make([]Atom, len(ym.Atoms))
	for i, ya := range ym.Atoms {
		atoms[i] = Atom{Symbol: ya.Symbol, Wildcard: ya.Wildcard || ya.Symbol == "*"}
	}

	bonds := make([]Bond, len(ym.Bonds))
	for i, yb := range ym.Bonds {
		order, err := parseOrder(yb.Order)
		if err != nil {
			return nil, err
		}
		bonds[i] = Bond{A: yb.A, B: yb.B, Order: order, InRing: yb.Ring, Wildcard: yb.Wildcard || order == OrderAny}
	}

	return New(kind, atoms, bonds)
}

func parseOrder(s string) (BondOrder, error) {
	switch s {
	case "", "single":
		return OrderSingle, nil
	case "double":
		return OrderDouble, nil
	case "triple":
		return OrderTriple, nil
	case "aromatic":
		return OrderAromatic, nil
	case "any":
		return OrderAny, nil
	default:
		return OrderSingle, fmt.Errorf("molgraph: unknown bond order %q", s)
	}
}

package rxnio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atommap/atommap/molgraph"
	"github.com/atommap/atommap/reactor"
)

// Sentinel errors for serialization.
var (
	// ErrNilMapped indicates a nil mapped-reaction record.
	ErrNilMapped = errors.New("rxnio: mapped reaction is nil")

	// ErrIncompleteMapped indicates a mapped-reaction record missing its
	// reaction or one of the reaction's molecules.
	ErrIncompleteMapped = errors.New("rxnio: mapped reaction needs a reaction with both molecules")
)

// validate checks every field the encoder dereferences.
func validate(m *reactor.Mapped) error {
	if m == nil {
		return ErrNilMapped
	}
	if m.Reaction == nil || m.Reaction.Source == nil || m.Reaction.Target == nil {
		return ErrIncompleteMapped
	}

	return nil
}

// Writer is the persisted-artifact collaborator contract: write one
// mapped reaction to a file path.
type Writer interface {
	Write(m *reactor.Mapped, path string) error
}

// RXNWriter writes mapped reactions as RXN-style text tables.
type RXNWriter struct{}

// Write serializes m to path, creating or truncating the file.
func (RXNWriter) Write(m *reactor.Mapped, path string) error {
	if err := validate(m); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rxnio: create %s: %w", path, err)
	}
	defer f.Close()

	return Encode(f, m)
}

// Encode writes the RXN-style table for m to w.
//
// Atom-atom map numbers come from the first mapping of the result:
// pair k maps source atom and target atom to number k+1; unmapped
// atoms carry 0.
func Encode(w io.Writer, m *reactor.Mapped) error {
	if err := validate(m); err != nil {
		return err
	}

	srcMap := map[int]int{}
	dstMap := map[int]int{}
	if m.Result != nil && len(m.Result.Mappings) > 0 {
		for k, p := range m.Result.Mappings[0] {
			srcMap[p.S] = k + 1
			dstMap[p.T] = k + 1
		}
	}

	if _, err := fmt.Fprintf(w, "$RXN\n%s\n\n  atommap %s\n\n  1  1\n", m.Reaction.ID, m.Preset); err != nil {
		return err
	}
	if err := encodeMol(w, "reactant", m.Reaction.Source, srcMap); err != nil {
		return err
	}

	return encodeMol(w, "product", m.Reaction.Target, dstMap)
}

// encodeMol writes one MOL block: counts line, atom table with map
// numbers, bond table.
func encodeMol(w io.Writer, name string, mol *molgraph.Molecule, mapNum map[int]int) error {
	if _, err := fmt.Fprintf(w, "$MOL\n%s\n\n\n%3d%3d  0  0  0  0  0  0  0  0999 V2000\n",
		name, mol.AtomCount(), mol.BondCount()); err != nil {
		return err
	}

	for i := 0; i < mol.AtomCount(); i++ {
		a, err := mol.Atom(i)
		if err != nil {
			return fmt.Errorf("rxnio: %w", err)
		}
		sym := a.Symbol
		if a.Wildcard {
			sym = "*"
		}
		if _, err = fmt.Fprintf(w, "    0.0000    0.0000    0.0000 %-3s 0  0  0  0  0  0  0  0  0%3d  0  0\n",
			sym, mapNum[i]); err != nil {
			return err
		}
	}

	for i := 0; i < mol.BondCount(); i++ {
		b, err := mol.Bond(i)
		if err != nil {
			return fmt.Errorf("rxnio: %w", err)
		}
		if _, err = fmt.Fprintf(w, "%3d%3d%3d  0  0  0  0\n", b.A+1, b.B+1, orderCode(b.Order)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "M  END")

	return err
}

// orderCode maps a bond order onto its V2000 table code.
func orderCode(o molgraph.BondOrder) int {
	switch o {
	case molgraph.OrderSingle:
		return 1
	case molgraph.OrderDouble:
		return 2
	case molgraph.OrderTriple:
		return 3
	case molgraph.OrderAromatic:
		return 4
	default:
		return 8 // any
	}
}

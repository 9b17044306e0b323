package mcgregor

import (
	"fmt"

	"github.com/atommap/atommap/mapping"
	"github.com/atommap/atommap/match"
	"github.com/atommap/atommap/molgraph"
)

// Extend grows each seed mapping toward a larger injective mapping of
// src onto dst under policy pol, and returns the best-size set of
// results across all seeds (ties kept, duplicate pair-sets dropped).
//
// Seeds are never shrunk: every returned mapping contains at least as
// many pairs as the largest seed. An empty seed slice yields nil.
//
// Both molecules must be Concrete: the orientation swap exchanges the
// query and target roles of the compatibility predicates, so wildcard
// semantics cannot survive it (ErrQueryMolecule).
func Extend(seeds []mapping.Mapping, src, dst *molgraph.Molecule, pol match.Policy, opts ...Option) ([]mapping.Mapping, error) {
	// 1. Validate molecules.
	if src == nil || dst == nil {
		return nil, ErrNilMolecule
	}
	if src.Kind() == molgraph.Query || dst.Kind() == molgraph.Query {
		return nil, ErrQueryMolecule
	}
	if len(seeds) == 0 {
		return nil, nil
	}

	// 2. Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Orient the search into the larger graph: when the target is
	// the smaller side, swap roles (and seed pairs) for the duration.
	swapped := dst.AtomCount() < src.AtomCount()
	if swapped {
		src, dst = dst, src
	}

	agg := mapping.NewAggregator()
	for _, seed := range seeds {
		if !seed.Injective() {
			return nil, fmt.Errorf("%w: size %d", ErrSeedNotInjective, seed.Size())
		}
		oriented := seed
		if swapped {
			oriented = seed.Swapped()
		}

		e := &extender{
			src:      src,
			dst:      dst,
			pol:      pol,
			opts:     cfg,
			srcToDst: make([]int, src.AtomCount()),
			dstUsed:  make([]bool, dst.AtomCount()),
			agg:      agg,
		}
		for i := range e.srcToDst {
			e.srcToDst[i] = -1
		}
		for _, p := range oriented {
			if _, err := src.Atom(p.S); err != nil {
				return nil, fmt.Errorf("mcgregor: resolve seed source atom: %w", err)
			}
			if _, err := dst.Atom(p.T); err != nil {
				return nil, fmt.Errorf("mcgregor: resolve seed target atom: %w", err)
			}
			e.srcToDst[p.S] = p.T
			e.dstUsed[p.T] = true
			e.depth++
		}

		if err := e.grow(0); err != nil {
			return nil, err
		}
	}

	// 4. Report in the caller's orientation.
	out := agg.Mappings()
	if swapped {
		for i, m := range out {
			out[i] = m.Swapped()
		}
	}

	return out, nil
}

// extender holds the thread-confined state of one seed's extension.
type extender struct {
	src, dst *molgraph.Molecule
	pol      match.Policy
	opts     Options

	srcToDst []int
	dstUsed  []bool
	depth    int

	agg *mapping.Aggregator
}

// grow considers source atoms in canonical order starting at index s:
// each is either mapped onto some compatible free target atom or left
// unmapped, so every injective completion is enumerated exactly once.
func (e *extender) grow(s int) error {
	// Cancellation check at every backtracking step.
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	// Bound: even mapping every remaining atom cannot reach the best.
	if e.depth+e.remaining(s) < e.agg.Best() {
		return nil
	}

	// Leaf: all source atoms decided.
	if s >= e.src.AtomCount() {
		e.record()

		return nil
	}

	// Seed pairs stay committed.
	if e.srcToDst[s] >= 0 {
		return e.grow(s + 1)
	}

	// Branch 1: map s onto each compatible free target atom.
	for t := 0; t < e.dst.AtomCount(); t++ {
		if e.dstUsed[t] {
			continue
		}
		ok, err := e.compatible(s, t)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		e.srcToDst[s] = t
		e.dstUsed[t] = true
		e.depth++

		if err = e.grow(s + 1); err != nil {
			return err
		}

		e.srcToDst[s] = -1
		e.dstUsed[t] = false
		e.depth--
	}

	// Branch 2: leave s unmapped.
	return e.grow(s + 1)
}

// remaining counts source atoms at index ≥ s that are still unmapped,
// an optimistic upper bound on further growth.
func (e *extender) remaining(s int) int {
	n := 0
	for i := s; i < len(e.srcToDst); i++ {
		if e.srcToDst[i] < 0 {
			n++
		}
	}

	return n
}

// compatible applies the same atom and bond predicates as the seed
// search, evaluated incrementally against the committed pairs.
func (e *extender) compatible(sIdx, tIdx int) (bool, error) {
	sa, err := e.src.Atom(sIdx)
	if err != nil {
		return false, fmt.Errorf("mcgregor: resolve source atom: %w", err)
	}
	ta, err := e.dst.Atom(tIdx)
	if err != nil {
		return false, fmt.Errorf("mcgregor: resolve target atom: %w", err)
	}
	if !e.pol.AtomCompatible(sa, ta) {
		return false, nil
	}

	for _, bi := range e.src.IncidentBonds(sIdx) {
		sb, err := e.src.Bond(bi)
		if err != nil {
			return false, fmt.Errorf("mcgregor: resolve source bond: %w", err)
		}
		n := sb.Other(sIdx)
		tn := e.srcToDst[n]
		if tn < 0 {
			continue
		}
		tb, exists := e.dst.BondBetween(tIdx, tn)
		if !exists {
			return false, nil
		}
		if !e.pol.BondCompatible(sb, tb) {
			return false, nil
		}
	}

	return true, nil
}

// record feeds the current mapping into the shared aggregator,
// ordered by source index.
func (e *extender) record() {
	m := make(mapping.Mapping, 0, e.depth)
	for i, t := range e.srcToDst {
		if t >= 0 {
			m = append(m, mapping.Pair{S: i, T: t})
		}
	}
	e.agg.Add(m)
}

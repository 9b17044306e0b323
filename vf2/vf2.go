package vf2

import (
	"fmt"

	"github.com/atommap/atommap/mapping"
	"github.com/atommap/atommap/match"
	"github.com/atommap/atommap/molgraph"
)

// Find runs the backtracking subgraph search from src onto dst under
// policy pol.
//
// ModeFirst answers the existence question "does src embed completely
// in dst?"; when src has more atoms than dst the answer is no and the
// exhaustive search is skipped entirely. ModeAll enumerates the whole
// space and returns every maximum-size mapping found.
//
// On an index-resolution fault the returned error wraps the molgraph
// sentinel and the result is empty; the fault is fatal to this call
// only.
func Find(src, dst *molgraph.Molecule, pol match.Policy, mode Mode, opts ...Option) (*Result, error) {
	// 1. Validate molecules.
	if src == nil || dst == nil {
		return nil, ErrNilMolecule
	}

	// 2. Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Cheap pre-check: a larger graph never embeds in a smaller one.
	if mode == ModeFirst && src.AtomCount() > dst.AtomCount() {
		return &Result{}, nil
	}

	// 4. Run the state-space search.
	s := &searcher{
		src:      src,
		dst:      dst,
		pol:      pol,
		mode:     mode,
		opts:     cfg,
		srcToDst: make([]int, src.AtomCount()),
		dstUsed:  make([]bool, dst.AtomCount()),
		agg:      mapping.NewAggregator(),
	}
	for i := range s.srcToDst {
		s.srcToDst[i] = -1
	}

	if err := s.search(); err != nil {
		return &Result{}, err
	}

	return &Result{Covered: s.covered, Mappings: s.agg.Mappings()}, nil
}

// searcher holds the thread-confined state of one Find invocation.
// It exists only for the duration of the call and is never shared.
type searcher struct {
	src, dst *molgraph.Molecule
	pol      match.Policy
	mode     Mode
	opts     Options

	srcToDst []int  // source index → target index, -1 when unmapped
	dstUsed  []bool // target indices already committed
	depth    int    // number of committed pairs

	agg     *mapping.Aggregator
	covered bool
	stop    bool // ModeFirst: first full cover found
}

// search extends the partial mapping by one pair and recurses.
func (s *searcher) search() error {
	// Cancellation check at every backtracking step.
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	// All source atoms mapped: a complete cover.
	next := s.nextSource()
	if next < 0 {
		s.covered = true
		s.record()
		if s.mode == ModeFirst {
			s.stop = true
		}

		return nil
	}

	extended := false
	for t := 0; t < s.dst.AtomCount(); t++ {
		if s.dstUsed[t] {
			continue
		}
		ok, err := s.feasible(next, t)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		// Commit, recurse, undo.
		s.srcToDst[next] = t
		s.dstUsed[t] = true
		s.depth++
		extended = true

		if err = s.search(); err != nil {
			return err
		}

		s.srcToDst[next] = -1
		s.dstUsed[t] = false
		s.depth--

		if s.stop {
			return nil
		}
	}

	// Dead end under this ordering: the partial mapping is maximal here.
	if !extended && s.mode == ModeAll && s.depth > 0 {
		s.record()
	}

	return nil
}

// nextSource chooses the source atom to extend: the lowest-index
// unmapped atom adjacent to an already-mapped one, keeping the search
// frontier connected; falls back to the lowest-index unmapped atom.
// Returns -1 when every source atom is mapped.
func (s *searcher) nextSource() int {
	fallback := -1
	for i, t := range s.srcToDst {
		if t >= 0 {
			continue
		}
		if fallback < 0 {
			fallback = i
		}
		for _, n := range s.src.Neighbors(i) {
			if s.srcToDst[n] >= 0 {
				return i
			}
		}
	}

	return fallback
}

// feasible applies the node, look-ahead and degree rules to the
// candidate pair (sIdx → tIdx).
func (s *searcher) feasible(sIdx, tIdx int) (bool, error) {
	sa, err := s.src.Atom(sIdx)
	if err != nil {
		return false, fmt.Errorf("vf2: resolve source atom: %w", err)
	}
	ta, err := s.dst.Atom(tIdx)
	if err != nil {
		return false, fmt.Errorf("vf2: resolve target atom: %w", err)
	}

	// 1. Node label compatibility.
	if !s.pol.AtomCompatible(sa, ta) {
		return false, nil
	}

	// 2. Degree lower bound. A query source carries don't-care
	// placeholders, so no degree promise holds there.
	if s.src.Kind() != molgraph.Query && s.dst.Degree(tIdx) < s.src.Degree(sIdx) {
		return false, nil
	}

	// 3. Look-ahead: every already-mapped neighbor of sIdx must be
	// connected to tIdx by a compatible target bond.
	for _, bi := range s.src.IncidentBonds(sIdx) {
		sb, err := s.src.Bond(bi)
		if err != nil {
			return false, fmt.Errorf("vf2: resolve source bond: %w", err)
		}
		n := sb.Other(sIdx)
		tn := s.srcToDst[n]
		if tn < 0 {
			continue
		}
		tb, exists := s.dst.BondBetween(tIdx, tn)
		if !exists {
			return false, nil
		}
		if !s.pol.BondCompatible(sb, tb) {
			return false, nil
		}
	}

	return true, nil
}

// record feeds the current partial mapping into the aggregator,
// ordered by source index.
func (s *searcher) record() {
	m := make(mapping.Mapping, 0, s.depth)
	for i, t := range s.srcToDst {
		if t >= 0 {
			m = append(m, mapping.Pair{S: i, T: t})
		}
	}
	s.agg.Add(m)
}

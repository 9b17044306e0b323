package mcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/atommap/atommap/mapping"
	"github.com/atommap/atommap/match"
	"github.com/atommap/atommap/mcgregor"
	"github.com/atommap/atommap/molgraph"
	"github.com/atommap/atommap/vf2"
)

// Search runs the full MCS pipeline for one (source, target, policy)
// triple and returns the aggregated maximum mappings.
//
// An index-resolution fault inside a stage is logged and yields an
// empty result without an error; context cancellation and deadline
// expiry return the context's error.
func Search(src, dst *molgraph.Molecule, pol match.Policy, opts ...Option) (*Result, error) {
	if src == nil || dst == nil {
		return nil, ErrNilMolecule
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Memo == nil {
		return search(src, dst, pol, cfg)
	}

	// Opportunistic sharing: identical (policy, source, target) triples
	// running concurrently collapse into one computation.
	key := memoKey(src, dst, pol)
	if hit, ok := cfg.Memo.store.Get(key); ok {
		return hit, nil
	}
	v, err, _ := cfg.Memo.group.Do(key, func() (interface{}, error) {
		r, err := search(src, dst, pol, cfg)
		if err != nil {
			return nil, err
		}
		cfg.Memo.store.Put(key, r)

		return r, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Result), nil
}

// IsSubgraph answers the existence question only: does source embed
// completely in target under the policy? When the source has more atoms
// than the target the answer is no, without invoking the search.
func IsSubgraph(src, dst *molgraph.Molecule, pol match.Policy, opts ...Option) (bool, error) {
	if src == nil || dst == nil {
		return false, ErrNilMolecule
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if src.AtomCount() > dst.AtomCount() {
		return false, nil
	}

	r, err := vf2.Find(src, dst, pol, vf2.ModeFirst, vf2.WithContext(cfg.Ctx))
	if err != nil {
		if isCancellation(err) {
			return false, err
		}
		cfg.Logger.Error("subgraph existence check failed", "err", err)

		return false, nil
	}

	return r.Covered, nil
}

// search is the uncached pipeline body.
func search(src, dst *molgraph.Molecule, pol match.Policy, cfg Options) (*Result, error) {
	// 1. Raw pass: enumerate the state-space search's maximum mappings.
	raw, err := vf2.Find(src, dst, pol, vf2.ModeAll, vf2.WithContext(cfg.Ctx))
	if err != nil {
		if isCancellation(err) {
			return nil, err
		}
		// Fatal to this call only: empty contribution, no crash.
		cfg.Logger.Error("seed search failed", "err", err)

		return &Result{}, nil
	}

	rawAgg := mapping.NewAggregator()
	for _, m := range raw.Mappings {
		rawAgg.Add(m)
	}

	best := rawAgg.Mappings()
	bestSize := rawAgg.Best()

	// 2. Extension gate: only worth running when the common-element
	// estimate exceeds what the raw pass already found, seeds exist,
	// and both molecules carry concrete labels (the extension search
	// rejects query graphs).
	if commonSymbolCount(src, dst) > bestSize && rawAgg.Len() > 0 &&
		src.Kind() != molgraph.Query && dst.Kind() != molgraph.Query {
		ext, extErr := mcgregor.Extend(best, src, dst, pol, mcgregor.WithContext(cfg.Ctx))
		switch {
		case extErr != nil && isCancellation(extErr):
			return nil, extErr
		case extErr != nil:
			cfg.Logger.Error("extension search failed", "err", extErr)
		default:
			// Refined pass replaces the raw contribution when it
			// matched or beat it; it starts from a fresh aggregator.
			refined := mapping.NewAggregator()
			for _, m := range ext {
				refined.Add(m)
			}
			if refined.Len() > 0 && refined.Best() >= bestSize {
				best = refined.Mappings()
				bestSize = refined.Best()
			}
		}
	}

	if bestSize <= 0 {
		return &Result{}, nil
	}

	return &Result{
		Subgraph: bestSize == src.AtomCount(),
		BestSize: bestSize,
		Mappings: best,
	}, nil
}

// memoKey derives the memoization key from the policy and the two
// molecule fingerprints.
func memoKey(src, dst *molgraph.Molecule, pol match.Policy) string {
	return fmt.Sprintf("b%tr%ta%t|%s|%s",
		pol.BondSensitive, pol.RingSensitive, pol.AtomTypeSensitive,
		src.Fingerprint(), dst.Fingerprint())
}

// commonSymbolCount returns the size of the multiset intersection of
// the two molecules' element symbols: a cheap upper-bound estimate of
// how many atoms could still be mapped.
func commonSymbolCount(a, b *molgraph.Molecule) int {
	sa, sb := a.Symbols(), b.Symbols()
	common, i, j := 0, 0, 0
	for i < len(sa) && j < len(sb) {
		switch {
		case sa[i] == sb[j]:
			common++
			i++
			j++
		case sa[i] < sb[j]:
			i++
		default:
			j++
		}
	}

	return common
}

// isCancellation reports whether err stems from context cancellation
// or deadline expiry.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

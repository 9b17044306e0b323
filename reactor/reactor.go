package reactor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/atommap/atommap/mapping"
	"github.com/atommap/atommap/match"
	"github.com/atommap/atommap/mcs"
)

// MapReaction runs one mapping task per preset on a bounded worker pool
// and returns the read-only preset→result table.
//
// The returned error reports input validation problems only; per-task
// failures (timeout, fault, panic) are contained and show up as absent
// table entries.
func MapReaction(ctx context.Context, rxn *Reaction, std Standardizer, opts ...Option) (*Table, error) {
	// 1. Validate the reaction record.
	if rxn == nil {
		return nil, ErrNilReaction
	}
	if rxn.Source == nil || rxn.Target == nil {
		return nil, ErrIncompleteReaction
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if std == nil {
		std = NopStandardizer{}
	}

	// 2. Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	log := cfg.Logger.With("run", uuid.NewString()[:8], "reaction", rxn.ID)

	memo := cfg.Memo
	if memo == nil {
		memo = mcs.NewMemo()
	}

	// 3. One task per preset, pool bounded to hardware parallelism.
	presets := match.Presets(cfg.CheckComplex)
	tbl := &Table{entries: make(map[match.Preset]*Mapped, len(presets))}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for _, preset := range presets {
		preset := preset
		g.Go(func() error {
			if m := runTask(ctx, rxn, std, preset, memo, cfg, log); m != nil {
				// Entries land in completion order; the table reads
				// back in preset order.
				mu.Lock()
				tbl.entries[preset] = m
				mu.Unlock()
			}

			return nil // failures stay contained at the task boundary
		})
	}
	_ = g.Wait()

	// 4. Purge the shared memo exactly once, whatever the outcomes.
	memo.Cleanup()

	log.Info("mapping run finished", "presets", len(presets), "finished", tbl.Len())

	return tbl, nil
}

// runTask executes one preset's pipeline under its individual deadline.
// A nil return means the preset gets no table entry.
func runTask(ctx context.Context, rxn *Reaction, std Standardizer, preset match.Preset, memo *mcs.Memo, cfg Options, log *slog.Logger) (m *Mapped) {
	taskCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	// A panicking task is an execution fault: logged, entry omitted.
	defer func() {
		if r := recover(); r != nil {
			log.Error("mapping task panicked", "preset", preset.String(), "panic", r)
			m = nil
		}
	}()

	start := time.Now()

	// Each task standardizes its own copy.
	work := rxn.Clone()
	standardized := true
	cleaned, err := std.Standardize(work)
	switch {
	case err != nil:
		// Degraded mode: proceed with the unstandardized copy.
		log.Warn("standardization failed, proceeding unstandardized",
			"preset", preset.String(), "err", err)
		standardized = false
	case cleaned != nil:
		work = cleaned
	}

	src, dst := work.Source, work.Target
	var srcIdx, dstIdx []int
	if cfg.RemoveHydrogen {
		var srcErr, dstErr error
		src, srcIdx, srcErr = src.HeavyAtoms()
		dst, dstIdx, dstErr = dst.HeavyAtoms()
		if srcErr != nil || dstErr != nil {
			// No heavy side left: the mapping is empty by definition, and
			// the entry stays observable rather than silently absent.
			log.Warn("hydrogen removal left no atoms to map",
				"preset", preset.String(), "source_err", srcErr, "target_err", dstErr)

			return &Mapped{
				Preset:       preset,
				Reaction:     work,
				Result:       &mcs.Result{},
				Standardized: standardized,
				Elapsed:      time.Since(start),
			}
		}
	}

	res, err := mcs.Search(src, dst, preset.Policy(),
		mcs.WithContext(taskCtx),
		mcs.WithLogger(log.With("preset", preset.String())),
		mcs.WithMemo(memo),
	)
	if err != nil {
		// Timeout or execution fault: omit the entry, never retry.
		log.Warn("mapping task abandoned",
			"preset", preset.String(), "after", time.Since(start), "err", err)

		return nil
	}

	if cfg.RemoveHydrogen {
		res = renumbered(res, srcIdx, dstIdx)
	}

	return &Mapped{
		Preset:       preset,
		Reaction:     work,
		Result:       res,
		Standardized: standardized,
		Elapsed:      time.Since(start),
	}
}

// renumbered translates a heavy-atom result back into the original
// atom numbering using the index tables from HeavyAtoms.
func renumbered(r *mcs.Result, srcIdx, dstIdx []int) *mcs.Result {
	out := &mcs.Result{Subgraph: r.Subgraph, BestSize: r.BestSize}
	out.Mappings = make([]mapping.Mapping, len(r.Mappings))
	for i, m := range r.Mappings {
		t := make(mapping.Mapping, len(m))
		for j, p := range m {
			t[j] = mapping.Pair{S: srcIdx[p.S], T: dstIdx[p.T]}
		}
		out.Mappings[i] = t
	}

	return out
}

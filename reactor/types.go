// Package reactor declares the reaction record, the standardizer
// collaborator contract, orchestration options, and the result table.
package reactor

import (
	"errors"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/atommap/atommap/match"
	"github.com/atommap/atommap/mcs"
	"github.com/atommap/atommap/molgraph"
)

// Sentinel errors for orchestration input validation.
var (
	// ErrNilReaction indicates a nil reaction record.
	ErrNilReaction = errors.New("reactor: reaction is nil")

	// ErrIncompleteReaction indicates a reaction missing its source or
	// target molecule.
	ErrIncompleteReaction = errors.New("reactor: reaction needs both source and target molecules")
)

// DefaultTimeout is the per-task deadline applied when no override is
// given. Every task of one run gets an identical, individual timeout —
// not a shared deadline.
const DefaultTimeout = 10 * time.Minute

// Reaction is the record one orchestration run maps: the reactant-side
// (source) and product-side (target) molecular graphs.
type Reaction struct {
	// ID labels the reaction in logs and serialized artifacts.
	ID string

	// Source is the reactant-side molecule.
	Source *molgraph.Molecule

	// Target is the product-side molecule.
	Target *molgraph.Molecule
}

// Clone returns an independent deep copy of the reaction, so each task
// can hand its own copy to the standardizer.
func (r *Reaction) Clone() *Reaction {
	return &Reaction{ID: r.ID, Source: r.Source.Clone(), Target: r.Target.Clone()}
}

// Standardizer is the external collaborator that normalizes a reaction
// before mapping. Implementations must not mutate their argument; they
// return a cleaned copy (or the argument unchanged).
type Standardizer interface {
	Standardize(r *Reaction) (*Reaction, error)
}

// NopStandardizer returns the reaction unchanged. Useful in tests and
// wherever standardization happens upstream.
type NopStandardizer struct{}

// Standardize returns r unchanged.
func (NopStandardizer) Standardize(r *Reaction) (*Reaction, error) { return r, nil }

// Mapped is the reconstructed mapped-reaction object one task publishes.
type Mapped struct {
	// Preset names the policy this task ran under.
	Preset match.Preset

	// Reaction is the task's (possibly standardized) reaction copy.
	Reaction *Reaction

	// Result holds the aggregation result in the reaction's original
	// atom numbering.
	Result *mcs.Result

	// Standardized is false when the standardizer faulted and the task
	// proceeded in degraded mode with the unstandardized input.
	Standardized bool

	// Elapsed is the task's wall-clock duration.
	Elapsed time.Duration
}

// Table is the read-only preset→result view published once per run.
// A missing preset key signals timeout or task failure, not "provably
// no mapping".
type Table struct {
	entries map[match.Preset]*Mapped
}

// Get returns the entry for preset p, if the task finished in time.
func (t *Table) Get(p match.Preset) (*Mapped, bool) {
	m, ok := t.entries[p]

	return m, ok
}

// Presets returns the presets present in the table, in preset order
// (policy-driven, not completion-driven).
func (t *Table) Presets() []match.Preset {
	out := make([]match.Preset, 0, len(t.entries))
	for p := range t.entries {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Len returns the number of finished entries.
func (t *Table) Len() int { return len(t.entries) }

// Options holds configurable parameters for one orchestration run.
type Options struct {
	// Timeout is the identical per-task deadline. Default DefaultTimeout.
	Timeout time.Duration

	// Workers bounds the pool; defaults to runtime.NumCPU().
	Workers int

	// RemoveHydrogen maps heavy atoms only, translating results back
	// to the original numbering.
	RemoveHydrogen bool

	// CheckComplex adds the RINGS preset for ring-system mapping.
	CheckComplex bool

	// Logger receives structured diagnostics; defaults to slog.Default().
	Logger *slog.Logger

	// Memo, when non-nil, is reused instead of a fresh per-run store.
	// It is still purged at run end.
	Memo *mcs.Memo
}

// Option configures optional behavior of MapReaction.
type Option func(*Options)

// DefaultOptions returns Options with the default timeout, a pool sized
// to the hardware parallelism, the default structured logger, hydrogen
// mapping kept, and no RINGS preset.
func DefaultOptions() Options {
	return Options{
		Timeout: DefaultTimeout,
		Workers: runtime.NumCPU(),
		Logger:  slog.Default(),
	}
}

// WithTimeout overrides the per-task deadline. Non-positive values are
// ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithWorkers overrides the pool size. Non-positive values are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithRemoveHydrogen maps heavy atoms only.
func WithRemoveHydrogen() Option {
	return func(o *Options) { o.RemoveHydrogen = true }
}

// WithCheckComplex adds the RINGS preset to the run.
func WithCheckComplex() Option {
	return func(o *Options) { o.CheckComplex = true }
}

// WithLogger sets the structured logger. Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMemo reuses an existing memo store for this run. The store is
// purged at run end like a per-run instance would be.
func WithMemo(m *mcs.Memo) Option {
	return func(o *Options) { o.Memo = m }
}

// Package mcs declares the pipeline options, result and memo types.
package mcs

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/atommap/atommap/cache"
	"github.com/atommap/atommap/mapping"
)

// ErrNilMolecule is returned when the source or target molecule is nil.
var ErrNilMolecule = errors.New("mcs: molecule is nil")

// Result is the outcome of one pipeline run: the aggregation result
// plus the subgraph verdict.
type Result struct {
	// Subgraph reports whether the best mapping covers every source atom.
	Subgraph bool

	// BestSize is the size of the mappings below (0 when none exist).
	BestSize int

	// Mappings holds the maximum-size mappings; all share BestSize.
	Mappings []mapping.Mapping
}

// Memo is the shared per-run memoization handle: a thread-safe store of
// finished results plus a singleflight group that collapses concurrent
// identical computations into one.
type Memo struct {
	store *cache.Store[string, *Result]
	group singleflight.Group
}

// NewMemo returns an empty Memo for one orchestration run.
func NewMemo() *Memo {
	return &Memo{store: cache.New[string, *Result]()}
}

// Len returns the number of memoized results.
func (m *Memo) Len() int { return m.store.Len() }

// Cleanup purges every memoized result. Called exactly once at run end.
func (m *Memo) Cleanup() { m.store.Cleanup() }

// Options holds configurable parameters for one pipeline invocation.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Logger receives structured diagnostics; defaults to slog.Default().
	Logger *slog.Logger

	// Memo, when non-nil, memoizes finished results across tasks.
	Memo *Memo
}

// Option configures optional behavior of Search and IsSubgraph.
type Option func(*Options)

// DefaultOptions returns Options with a background context, the default
// structured logger, and no memoization.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.Default(),
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger returns an Option that sets the structured logger.
// Passing a nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMemo returns an Option that enables shared result memoization.
func WithMemo(m *Memo) Option {
	return func(o *Options) {
		o.Memo = m
	}
}

// Package vf2 declares the search mode, options and result types.
package vf2

import (
	"context"
	"errors"

	"github.com/atommap/atommap/mapping"
)

// ErrNilMolecule is returned when the source or target molecule is nil.
var ErrNilMolecule = errors.New("vf2: molecule is nil")

// Mode selects how much of the search space Find explores.
type Mode int

const (
	// ModeFirst stops at the first mapping covering all source atoms.
	// Used as a cheap existence check before expensive enumeration.
	ModeFirst Mode = iota

	// ModeAll explores the whole space and collects every maximum mapping.
	ModeAll
)

// String returns "first" or "all".
func (m Mode) String() string {
	if m == ModeAll {
		return "all"
	}

	return "first"
}

// Options holds configurable parameters for one Find invocation.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is consulted at every recursion step of the backtracking loop.
	Ctx context.Context
}

// Option configures optional behavior of Find.
type Option func(*Options)

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
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

// Result reports the outcome of one subgraph search.
type Result struct {
	// Covered reports whether a mapping covering every source atom exists.
	Covered bool

	// Mappings holds the maximum-size injective mappings found.
	// Empty when no compatible pair exists at all.
	Mappings []mapping.Mapping
}

// BestSize returns the size of the largest mapping found, or 0.
func (r *Result) BestSize() int {
	best := 0
	for _, m := range r.Mappings {
		if m.Size() > best {
			best = m.Size()
		}
	}

	return best
}

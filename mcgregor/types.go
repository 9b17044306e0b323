// Package mcgregor declares options and sentinel errors for the
// extension search.
package mcgregor

import (
	"context"
	"errors"
)

var (
	// ErrNilMolecule is returned when the source or target molecule is nil.
	ErrNilMolecule = errors.New("mcgregor: molecule is nil")

	// ErrSeedNotInjective is returned when a seed mapping reuses a
	// source or target index.
	ErrSeedNotInjective = errors.New("mcgregor: seed mapping is not injective")

	// ErrQueryMolecule is returned when either molecule is a substructure
	// query. The orientation swap would consult wildcards on the wrong
	// side, so extension requires concrete labels on both.
	ErrQueryMolecule = errors.New("mcgregor: query molecules are not supported")
)

// Options holds configurable parameters for one Extend invocation.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is consulted at every recursion step of the extension loop.
	Ctx context.Context
}

// Option configures optional behavior of Extend.
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

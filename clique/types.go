// Package clique defines options and errors for maximum-clique search:
// cancellation, pivot pruning, and the per-maximal-clique hook.
package clique

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to FindMaxClique,
// Maximal, or IsClique.
var ErrGraphNil = errors.New("clique: graph is nil")

// Option configures optional behavior of the search.
// Use with FindMaxClique(g, opts...) or Maximal(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for Bron–Kerbosch search.
// The zero-cost defaults reproduce the plain algorithm exactly.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search and discards the partial best.
	Ctx context.Context

	// OnClique, if non-nil, is invoked at every maximal clique found, with
	// the members in ascending order. The slice is a fresh copy; the hook
	// may retain it. Returning an error aborts the search with that error.
	OnClique func(members []int) error

	// Pivot enables Tomita-style pivot selection: each call picks
	// u ∈ P ∪ X maximizing |P ∩ N(u)| and branches only over P \ N(u).
	// Prunes the search tree without changing which maximal cliques exist,
	// so the returned maximum is identical. Default is off, matching the
	// plain algorithm.
	Pivot bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - no OnClique hook
//   - pivoting disabled
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnClique: nil,
		Pivot:    false,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnClique returns an Option that installs fn as the maximal-clique
// hook. The hook fires once per maximal clique, including the ones that do
// not improve on the best found so far.
func WithOnClique(fn func(members []int) error) Option {
	return func(o *Options) {
		o.OnClique = fn
	}
}

// WithPivot returns an Option that enables pivot pruning.
func WithPivot() Option {
	return func(o *Options) {
		o.Pivot = true
	}
}

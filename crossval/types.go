// Package crossval defines the Outcome/Report types and options for
// cross-validation runs.
package crossval

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zmalkmus/maxclique/clique"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Compare
	// or Run.
	ErrGraphNil = errors.New("crossval: graph is nil")

	// ErrOracleNil is returned when Run is called with a nil oracle.
	ErrOracleNil = errors.New("crossval: oracle is nil")
)

// Verdict is the overall result of comparing two candidate cliques.
type Verdict int

const (
	// BothValidSameSize means both candidates validate as cliques and
	// have equal size: the two methods agree.
	BothValidSameSize Verdict = iota

	// MismatchFound means at least one candidate failed validation, or
	// the sizes differ; Outcome.Reasons enumerates which.
	MismatchFound
)

// Reason tags one cause of a mismatch.
type Reason int

const (
	// ReasonInvalidA: candidate A is not a clique of the graph.
	ReasonInvalidA Reason = iota
	// ReasonInvalidB: candidate B is not a clique of the graph.
	ReasonInvalidB
	// ReasonSizeDiffer: both may be valid, but the sizes differ.
	ReasonSizeDiffer
)

// String implements fmt.Stringer for diagnostics.
func (r Reason) String() string {
	switch r {
	case ReasonInvalidA:
		return "clique A is not a valid clique"
	case ReasonInvalidB:
		return "clique B is not a valid clique"
	case ReasonSizeDiffer:
		return "clique sizes differ"
	default:
		return fmt.Sprintf("unknown reason (%d)", int(r))
	}
}

// Outcome is the comparison result: a Verdict plus the evidence behind it.
// A mismatch is a finding, not a failure; callers branch on Verdict.
type Outcome struct {
	// Verdict is the overall agreement decision.
	Verdict Verdict

	// Reasons enumerates every cause of a mismatch, empty on agreement.
	Reasons []Reason

	// SizeA and SizeB are the candidate sizes as submitted.
	SizeA, SizeB int

	// ValidA and ValidB report each candidate's validation result.
	ValidA, ValidB bool
}

// Agree reports whether the two methods agreed.
func (o Outcome) Agree() bool { return o.Verdict == BothValidSameSize }

// String renders the outcome the way the comparison report prints it.
func (o Outcome) String() string {
	if o.Agree() {
		return fmt.Sprintf("both methods found valid cliques of size %d", o.SizeA)
	}

	parts := make([]string, len(o.Reasons))
	for i, r := range o.Reasons {
		parts[i] = r.String()
	}

	return fmt.Sprintf("mismatch (|A|=%d |B|=%d): %s", o.SizeA, o.SizeB, strings.Join(parts, "; "))
}

// Report is the product of a full Run: both cliques, both timings, and the
// comparison Outcome.
type Report struct {
	// EngineClique is the Bron–Kerbosch engine's result, ascending ids.
	EngineClique []int

	// OracleClique is the oracle's result as returned (order preserved).
	OracleClique []int

	// EngineElapsed and OracleElapsed are wall-clock solve times.
	EngineElapsed, OracleElapsed time.Duration

	// Outcome is the comparison of the two cliques.
	Outcome Outcome
}

// Option configures a Run.
type Option func(*Options)

// Options holds configurable parameters for Run.
type Options struct {
	// CliqueOpts are forwarded to clique.FindMaxClique (context, pivoting,
	// hooks).
	CliqueOpts []clique.Option
}

// DefaultOptions returns Options with no engine options set.
func DefaultOptions() Options { return Options{} }

// WithCliqueOptions forwards engine options to the Run's FindMaxClique call.
func WithCliqueOptions(opts ...clique.Option) Option {
	return func(o *Options) {
		o.CliqueOpts = append(o.CliqueOpts, opts...)
	}
}

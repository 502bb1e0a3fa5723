package crossval

import (
	"errors"
	"fmt"
	"time"

	"github.com/zmalkmus/maxclique/clique"
	"github.com/zmalkmus/maxclique/core"
	"github.com/zmalkmus/maxclique/oracle"
)

// Compare validates cliqueA and cliqueB against g and compares their sizes.
// Neither input is mutated. A candidate whose members fall outside the
// graph's vertex range counts as invalid — the oracle is a black box and a
// garbage vertex is a divergence to report, not an error to raise.
//
// Returns ErrGraphNil only for a nil graph; every disagreement is data in
// the Outcome.
func Compare(g *core.Graph, cliqueA, cliqueB []int) (Outcome, error) {
	if g == nil {
		return Outcome{}, ErrGraphNil
	}

	out := Outcome{
		SizeA:  len(cliqueA),
		SizeB:  len(cliqueB),
		ValidA: validates(g, cliqueA),
		ValidB: validates(g, cliqueB),
	}

	if !out.ValidA {
		out.Reasons = append(out.Reasons, ReasonInvalidA)
	}
	if !out.ValidB {
		out.Reasons = append(out.Reasons, ReasonInvalidB)
	}
	if out.SizeA != out.SizeB {
		out.Reasons = append(out.Reasons, ReasonSizeDiffer)
	}

	if len(out.Reasons) > 0 {
		out.Verdict = MismatchFound
	} else {
		out.Verdict = BothValidSameSize
	}

	return out, nil
}

// validates folds IsClique's invalid-vertex error into a plain "not valid".
func validates(g *core.Graph, candidate []int) bool {
	ok, err := clique.IsClique(g, candidate)
	if errors.Is(err, core.ErrInvalidVertex) {
		return false
	}

	return err == nil && ok
}

// Run executes the full cross-validation pipeline on g: the Bron–Kerbosch
// engine, then the oracle, each timed, then Compare. Engine options (for
// instance a context or WithPivot) are forwarded via WithCliqueOptions.
//
// Engine and oracle failures abort the run with a wrapped error; a
// comparison mismatch does not — it lands in Report.Outcome.
func Run(g *core.Graph, fn oracle.Func, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}
	if fn == nil {
		return Report{}, ErrOracleNil
	}

	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	var rep Report

	start := time.Now()
	engine, err := clique.FindMaxClique(g, o.CliqueOpts...)
	rep.EngineElapsed = time.Since(start)
	if err != nil {
		return rep, fmt.Errorf("crossval: engine: %w", err)
	}
	rep.EngineClique = engine

	start = time.Now()
	oracleClique, err := fn(g)
	rep.OracleElapsed = time.Since(start)
	if err != nil {
		return rep, fmt.Errorf("crossval: oracle: %w", err)
	}
	rep.OracleClique = oracleClique

	if rep.Outcome, err = Compare(g, engine, oracleClique); err != nil {
		return rep, err
	}

	return rep, nil
}

package accept

import (
	"github.com/katalvlaran/dungaf/core"
	"github.com/katalvlaran/dungaf/enumerate"
	"github.com/katalvlaran/dungaf/meter"
	"github.com/katalvlaran/dungaf/semantics"
)

// isFixedPoint reports whether e is a conflict-free fixed point of the
// characteristic function F — equivalently (spec.md §4.3-§4.4), whether e
// is a complete extension. This is the fixed-point path's decision
// primitive: it never calls semantics.Complete, so it stays an
// independent check of the same fact.
func isFixedPoint(f *core.Framework, e core.Set) bool {
	return semantics.ConflictFree(f, e) && e.Equal(semantics.F(f, e))
}

// fixedPoints returns every complete extension of f, found by testing
// isFixedPoint at each leaf of the engine's conflict-pruned backtracking
// search (enumerate.All) — the same exhaustive traversal that backs
// enumerate.Complete, but with a leaf test driven by F instead of by
// semantics.Complete.
//
// An earlier revision of this function iterated S <- F(S) starting from
// the empty set and from each single-argument seed {a_i}, stopping each
// chain at its first fixed point. That is unsound: F is only guaranteed
// monotone increasing when iterated from the empty set, so an arbitrary
// singleton seed can orbit forever without reaching a fixed point, and
// some complete extensions are reachable from no singleton seed at all.
// A 4-cycle A->D->B->C->A is a minimal counterexample: seed {A} oscillates
// F({A})={B}, F({B})={A} forever, so the genuine complete extensions
// {A,B} and {C,D} were never discovered even though they exist — breaking
// spec.md invariant 5 (naive and fixed-point acceptance must agree).
// Exhaustive search removes the unsound seeding/closure step entirely
// while keeping the decision itself F-based rather than admissibility-
// based, so the two acceptance paths remain genuinely independent.
func fixedPoints(f *core.Framework, counter *meter.Counter) []core.Set {
	return enumerate.All(f, isFixedPoint, counter)
}

// FixedPointCredulousComplete reports whether argument belongs to at
// least one complete extension reached as a fixed point of F.
func FixedPointCredulousComplete(f *core.Framework, argument string, counter *meter.Counter) (bool, error) {
	idx, err := resolve(f, argument)
	if err != nil {
		return false, err
	}
	for _, s := range fixedPoints(f, counter) {
		if s.Has(idx) {
			return true, nil
		}
	}
	return false, nil
}

// FixedPointSkepticalComplete reports whether argument belongs to every
// complete extension reached as a fixed point of F.
func FixedPointSkepticalComplete(f *core.Framework, argument string, counter *meter.Counter) (bool, error) {
	idx, err := resolve(f, argument)
	if err != nil {
		return false, err
	}
	return allContain(fixedPoints(f, counter), idx), nil
}

// FixedPointCredulousStable reports whether argument belongs to at least
// one stable extension among the fixed points of F.
func FixedPointCredulousStable(f *core.Framework, argument string, counter *meter.Counter) (bool, error) {
	idx, err := resolve(f, argument)
	if err != nil {
		return false, err
	}
	for _, s := range stableFixedPoints(f, counter) {
		if s.Has(idx) {
			return true, nil
		}
	}
	return false, nil
}

// FixedPointSkepticalStable reports whether argument belongs to every
// stable extension among the fixed points of F; vacuously true if none
// are stable.
func FixedPointSkepticalStable(f *core.Framework, argument string, counter *meter.Counter) (bool, error) {
	idx, err := resolve(f, argument)
	if err != nil {
		return false, err
	}
	return allContain(stableFixedPoints(f, counter), idx), nil
}

// stableFixedPoints narrows fixedPoints to those that are also stable
// extensions: every conflict-free fixed point of F is complete, but not
// every complete extension is stable (spec.md §4.3-§4.4).
func stableFixedPoints(f *core.Framework, counter *meter.Counter) []core.Set {
	var out []core.Set
	for _, s := range fixedPoints(f, counter) {
		if semantics.Stable(f, s) {
			out = append(out, s)
		}
	}
	return out
}

// Package enumerate implements exhaustive subset enumeration over an
// abstract argumentation framework's arguments, pruned on conflict-freeness,
// to produce complete and stable extensions.
//
// Rather than iterating all 2^n bitmasks, the search recurses on argument
// index k: at each level it first tries including argument k (only if doing
// so keeps the partial candidate conflict-free — the dominant early
// filter), then tries excluding it. At k == n the candidate is complete and
// is tested against the target predicate (complete or stable).
//
// The search state is a single struct threaded by reference through a
// plain recursive method (no closures capturing mutable free variables),
// and the candidate set is a single mutable core.Set reused across the
// whole tree, so peak allocation during a search is O(n).
package enumerate

import (
	"github.com/katalvlaran/dungaf/core"
	"github.com/katalvlaran/dungaf/logging"
	"github.com/katalvlaran/dungaf/meter"
	"github.com/katalvlaran/dungaf/semantics"
)

// Predicate decides whether a fully-built candidate e qualifies as an
// extension of the kind being searched for (semantics.Complete or
// semantics.Stable).
type Predicate func(f *core.Framework, e core.Set) bool

// search carries all mutable state for one enumeration run.
type search struct {
	f         *core.Framework
	n         int
	current   core.Set
	predicate Predicate
	counter   *meter.Counter

	target      int  // dense index to require membership of; -1 for none
	stopAtFirst bool // abort the whole tree after the first qualifying leaf

	results []core.Set
	logger  logging.Logger
}

// RunOption configures an enumeration run.
type RunOption func(*search)

// WithLogger routes per-leaf diagnostics to l instead of discarding them.
func WithLogger(l logging.Logger) RunOption {
	return func(s *search) { s.logger = l }
}

// explore recurses over argument index k, returning true once the search
// should stop (only possible when stopAtFirst is set).
func (s *search) explore(k int) bool {
	if k == s.n {
		s.counter.Tick()
		s.logger.Debugf("leaf candidate=%v", s.current.Indices())
		if !s.predicate(s.f, s.current) {
			return false
		}
		if s.target >= 0 && !s.current.Has(s.target) {
			return false
		}
		s.results = append(s.results, s.current.Clone())
		return s.stopAtFirst
	}

	// (a) include argument k, but only descend if the partial candidate
	// remains conflict-free.
	s.current.Add(k)
	if semantics.ConflictFree(s.f, s.current) {
		if s.explore(k + 1) {
			return true
		}
	}
	s.current.Remove(k)

	// (b) exclude argument k.
	return s.explore(k + 1)
}

// run drives a single search over f with the given predicate/target/stop
// configuration and returns every extension found (in tree order).
func run(f *core.Framework, predicate Predicate, target int, stopAtFirst bool, counter *meter.Counter, opts ...RunOption) []core.Set {
	n := f.Len()
	s := &search{
		f:           f,
		n:           n,
		current:     core.NewSet(n),
		predicate:   predicate,
		counter:     counter,
		target:      target,
		stopAtFirst: stopAtFirst,
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.explore(0)
	return s.results
}

// All returns every conflict-free candidate satisfying predicate, found by
// the same conflict-pruned backtracking search Complete/Stable drive.
// Exposed so other packages can decide membership with a predicate of
// their own — e.g. accept's fixed-point acceptance path, which tests
// candidates against the characteristic function F directly rather than
// against semantics.Complete/Stable — without duplicating the recursion.
func All(f *core.Framework, predicate Predicate, counter *meter.Counter, opts ...RunOption) []core.Set {
	return run(f, predicate, -1, false, counter, opts...)
}

// Complete returns every complete extension of f, in tree (insertion) order.
func Complete(f *core.Framework, counter *meter.Counter, opts ...RunOption) []core.Set {
	return run(f, semantics.Complete, -1, false, counter, opts...)
}

// Stable returns every stable extension of f, in tree (insertion) order.
func Stable(f *core.Framework, counter *meter.Counter, opts ...RunOption) []core.Set {
	return run(f, semantics.Stable, -1, false, counter, opts...)
}

// CompleteWithEarlyStop searches for the first complete extension
// containing the argument at dense index target, aborting the search tree
// as soon as one is found. Used by credulous acceptance queries.
func CompleteWithEarlyStop(f *core.Framework, target int, counter *meter.Counter, opts ...RunOption) (core.Set, bool) {
	return firstOf(run(f, semantics.Complete, target, true, counter, opts...))
}

// StableWithEarlyStop is CompleteWithEarlyStop for stable extensions.
func StableWithEarlyStop(f *core.Framework, target int, counter *meter.Counter, opts ...RunOption) (core.Set, bool) {
	return firstOf(run(f, semantics.Stable, target, true, counter, opts...))
}

// FindOneComplete returns the first complete extension found in tree
// order. Every finite AF has at least one complete extension (e.g. its
// grounded extension), so the search always succeeds.
func FindOneComplete(f *core.Framework, counter *meter.Counter, opts ...RunOption) core.Set {
	e, _ := firstOf(run(f, semantics.Complete, -1, true, counter, opts...))
	return e
}

// FindOneStable returns the first stable extension found in tree order, or
// the empty set if no stable extension exists.
func FindOneStable(f *core.Framework, counter *meter.Counter, opts ...RunOption) (core.Set, bool) {
	return firstOf(run(f, semantics.Stable, -1, true, counter, opts...))
}

func firstOf(results []core.Set) (core.Set, bool) {
	if len(results) == 0 {
		return core.Set{}, false
	}
	return results[0], true
}

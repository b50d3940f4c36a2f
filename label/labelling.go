package label

import (
	"github.com/katalvlaran/dungaf/core"
	"github.com/katalvlaran/dungaf/meter"
)

// Labelling is a complete assignment of a Label to every argument in a
// Framework, indexed the same way as core.Framework.NameAt.
type Labelling []Label

// propagate runs the grounded-labelling fixed-point loop: an Undec
// argument becomes In once every attacker is Out, and Out as soon as one
// attacker is In. It terminates because each pass that flips a label
// strictly shrinks the remaining Undec set.
func propagate(f *core.Framework) Labelling {
	n := f.Len()
	labels := make(Labelling, n)

	for updated := true; updated; {
		updated = false
		for i := 0; i < n; i++ {
			if labels[i] != Undec {
				continue
			}
			allAttackersOut := true
			hasInAttacker := false
			for _, a := range f.AttackersOf(i) {
				switch labels[a] {
				case Undec:
					allAttackersOut = false
				case In:
					hasInAttacker = true
				}
			}
			switch {
			case hasInAttacker:
				labels[i] = Out
				updated = true
			case allAttackersOut:
				labels[i] = In
				updated = true
			}
		}
	}

	return labels
}

// search threads the backtracking state explicitly by pointer, in place
// of the recursive closure the original engine captured labels in: each
// call site mutates and restores labels[idx] around the recursive step
// instead of relying on captured free variables.
type search struct {
	f       *core.Framework
	labels  Labelling
	n       int
	counter *meter.Counter
	valid   func(Labelling, *core.Framework) bool
}

// backtrack assigns a label to every remaining Undec argument, trying In,
// then Out, then leaving it Undec at each position, and accepts the first
// full assignment that satisfies s.valid.
//
// A residual-undec argument is not always resolvable to In or Out: a
// complete labelling can leave a whole attacking sub-structure undecided
// (e.g. an odd cycle) while resolving the rest of the graph, so the
// search must be able to keep a position Undec rather than only choosing
// between the other two labels.
func (s *search) backtrack(idx int) bool {
	s.counter.Tick()

	if idx == s.n {
		return s.valid(s.labels, s.f)
	}

	if s.labels[idx] != Undec {
		return s.backtrack(idx + 1)
	}

	s.labels[idx] = In
	if s.backtrack(idx + 1) {
		return true
	}

	s.labels[idx] = Out
	if s.backtrack(idx + 1) {
		return true
	}

	s.labels[idx] = Undec
	if s.backtrack(idx + 1) {
		return true
	}

	return false
}

// completeValid checks the spec.md invariant that a complete labelling
// must satisfy at every argument: In requires all attackers Out, Out
// requires some attacker In, and Undec requires that neither of those
// holds (no attacker forces it to In or Out).
func completeValid(labels Labelling, f *core.Framework) bool {
	for i, l := range labels {
		allAttackersOut := true
		someAttackerIn := false
		for _, a := range f.AttackersOf(i) {
			if labels[a] != Out {
				allAttackersOut = false
			}
			if labels[a] == In {
				someAttackerIn = true
			}
		}
		switch l {
		case In:
			if !allAttackersOut {
				return false
			}
		case Out:
			if !someAttackerIn {
				return false
			}
		case Undec:
			if allAttackersOut || someAttackerIn {
				return false
			}
		}
	}
	return true
}

// stableValid additionally requires every Out argument to be attacked by
// an In argument, and forbids Undec entirely (spec.md §4.6).
func stableValid(labels Labelling, f *core.Framework) bool {
	for _, l := range labels {
		if l == Undec {
			return false
		}
	}
	return completeValid(labels, f)
}

// resolveFrom runs propagation, then backtracks over whatever remains
// Undec using valid as the acceptance test for a full assignment.
func resolveFrom(f *core.Framework, counter *meter.Counter, valid func(Labelling, *core.Framework) bool) (Labelling, bool) {
	labels := propagate(f)

	undec := false
	for _, l := range labels {
		if l == Undec {
			undec = true
			break
		}
	}
	if !undec {
		if valid(labels, f) {
			return labels, true
		}
		return labels, false
	}

	s := &search{f: f, labels: labels, n: f.Len(), counter: counter, valid: valid}
	if s.backtrack(0) {
		return s.labels, true
	}
	return s.labels, false
}

// Complete computes a complete labelling: propagation settles as many
// arguments as it can, and backtracking resolves the rest. A complete
// labelling always exists (Dung's fundamental lemma), so this never
// reports failure.
func Complete(f *core.Framework, counter *meter.Counter) Labelling {
	labels, _ := resolveFrom(f, counter, completeValid)
	return labels
}

// Stable attempts to compute a stable labelling (no Undec arguments). ok
// is false when the framework admits no stable extension.
func Stable(f *core.Framework, counter *meter.Counter) (labels Labelling, ok bool) {
	return resolveFrom(f, counter, stableValid)
}

package semantics

import "github.com/katalvlaran/dungaf/core"

// F computes the characteristic function of s: the set of arguments every
// one of whose attackers is attacked by some member of s.
//
// F is monotone w.r.t. set inclusion when restricted to conflict-free
// inputs, and its conflict-free fixed points are exactly the complete
// extensions (spec.md §4.3).
// Complexity: O(n²) per invocation; no memoization at these problem sizes.
func F(f *core.Framework, s core.Set) core.Set {
	n := f.Len()
	attacked := core.NewSet(n)
	for _, c := range s.Indices() {
		for _, t := range f.TargetsOf(c) {
			attacked.Add(t)
		}
	}
	out := core.NewSet(n)
	for a := 0; a < n; a++ {
		defended := true
		for _, b := range f.AttackersOf(a) {
			if !attacked.Has(b) {
				defended = false
				break
			}
		}
		if defended {
			out.Add(a)
		}
	}
	return out
}

// Package semantics implements the predicate kernel and characteristic
// function of Dung's abstract argumentation semantics: conflict-freeness,
// defense, admissibility, completeness, and stability, plus the
// characteristic function F whose conflict-free fixed points are exactly
// the complete extensions.
//
// Every predicate here is pure and deterministic: given the same
// *core.Framework and core.Set it always returns the same answer, and
// none of them mutate their inputs.
package semantics

import "github.com/katalvlaran/dungaf/core"

// ConflictFree reports whether no argument in e attacks another argument
// in e (including a self-attacking argument attacking itself).
// Complexity: O(n²) worst case over e's members.
func ConflictFree(f *core.Framework, e core.Set) bool {
	members := e.Indices()
	for _, a := range members {
		for _, b := range members {
			if f.AttacksIndex(a, b) {
				return false
			}
		}
	}
	return true
}

// Defends reports whether e defends argument a: every attacker of a is
// itself attacked by some member of e. a need not be a member of e.
// Complexity: O(n²) worst case.
func Defends(f *core.Framework, a int, e core.Set) bool {
	for _, attacker := range f.AttackersOf(a) {
		if !attackedBySome(f, attacker, e) {
			return false
		}
	}
	return true
}

// attackedBySome reports whether some member of e attacks target.
func attackedBySome(f *core.Framework, target int, e core.Set) bool {
	for _, c := range e.Indices() {
		if f.AttacksIndex(c, target) {
			return true
		}
	}
	return false
}

// Admissible reports whether e is conflict-free and defends every one of
// its own members.
func Admissible(f *core.Framework, e core.Set) bool {
	if !ConflictFree(f, e) {
		return false
	}
	for _, a := range e.Indices() {
		if !Defends(f, a, e) {
			return false
		}
	}
	return true
}

// Complete reports whether e is admissible and contains every argument it
// defends (equivalently, e == F(e) and e is conflict-free).
// Complexity: O(n³) worst case (n candidates, each an O(n²) Defends check).
func Complete(f *core.Framework, e core.Set) bool {
	if !Admissible(f, e) {
		return false
	}
	n := f.Len()
	for a := 0; a < n; a++ {
		if e.Has(a) {
			continue
		}
		if Defends(f, a, e) {
			return false
		}
	}
	return true
}

// Stable reports whether e is conflict-free and attacks every argument
// outside it.
// Complexity: O(n²).
func Stable(f *core.Framework, e core.Set) bool {
	if !ConflictFree(f, e) {
		return false
	}
	n := f.Len()
	for a := 0; a < n; a++ {
		if e.Has(a) {
			continue
		}
		if !attackedBySome(f, a, e) {
			return false
		}
	}
	return true
}

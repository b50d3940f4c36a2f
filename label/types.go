// Package label implements the three-valued labelling view of Dung
// semantics: every argument is assigned In, Out, or Undec, built in two
// phases (propagation to a grounded labelling, then backtracking over the
// arguments propagation left undecided), grounded on the two-phase
// labelling algorithm in original_source's ArgumentationFramework.cpp.
package label

// Label is the three-valued status assigned to an argument.
type Label int

const (
	// Undec marks an argument whose status propagation could not settle.
	Undec Label = iota
	// In marks an argument accepted into the labelling.
	In
	// Out marks an argument rejected by the labelling.
	Out
)

// String renders a Label as "in", "out" or "undec".
func (l Label) String() string {
	switch l {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return "undec"
	}
}

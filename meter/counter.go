// Package meter provides Counter, a state counter threaded by reference
// through every search and decision procedure in the engine, so that
// different search strategies produce comparable state-count figures
// (spec.md §4.7).
package meter

// Counter tallies visited states. It is never reset mid-search by any
// callee; the caller owns its lifetime and reads Count() once the search
// returns.
type Counter struct {
	n int
}

// Tick increments the counter by one. Call it exactly once per visited
// candidate: once per leaf of a subset-search recursion tree, once per
// application of the characteristic function in a fixed-point search, or
// once per recursive invocation of labelling backtracking.
func (c *Counter) Tick() {
	c.n++
}

// Count returns the number of states visited so far.
func (c *Counter) Count() int {
	return c.n
}

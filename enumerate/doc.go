// Package enumerate: see search.go for the pruned backtracking search and
// the Complete/Stable/CompleteWithEarlyStop/FindOne* entry points.
package enumerate

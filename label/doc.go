// Package label: see types.go for the Label enum and labelling.go for the
// propagation-then-backtracking algorithm that produces a Labelling.
package label

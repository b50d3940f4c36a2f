// Package semantics: see predicates.go for ConflictFree/Defends/Admissible/
// Complete/Stable and characteristic.go for the characteristic function F.
package semantics

// Package accept: see naive.go for the enumeration-based decision
// procedures and fixedpoint.go for the characteristic-function-based ones.
package accept

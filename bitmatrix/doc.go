// Package bitmatrix: see matrix.go for the Matrix type and its Grow/At/Set API.
package bitmatrix

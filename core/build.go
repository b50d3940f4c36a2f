package core

import "github.com/katalvlaran/dungaf/bitmatrix"

// Build constructs a Framework from an argument list and a list of
// (attacker, target) pairs, in order. It is a convenience for tests that
// assemble small frameworks inline; the parser instead builds a Framework
// argument-by-argument as a file streams in.
func Build(args []string, attacks [][2]string) (*Framework, error) {
	f := NewFramework(bitmatrix.NewMatrix(), WithCapacity(len(args)))
	for _, a := range args {
		if err := f.AddArgument(a); err != nil {
			return nil, err
		}
	}
	for _, e := range attacks {
		if err := f.AddAttack(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

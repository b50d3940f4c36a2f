// Package accept implements credulous and skeptical acceptance queries
// for the complete and stable semantics, via two independent procedures
// that must agree on every (framework, argument) pair (spec.md invariant
// 5): a naive procedure built on exhaustive enumeration (package
// enumerate) and a fixed-point procedure that walks the same pruned search
// tree (enumerate.All) but accepts a candidate only when it is a
// conflict-free fixed point of the characteristic function (package
// semantics). The fixed-point procedure does not iterate F from seeds.
//
// By convention (spec.md §4.5, §9), skeptical acceptance is vacuously true
// when the underlying set of extensions is empty.
package accept

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dungaf/core"
)

// ErrUnknownArgument is returned when the queried argument is not part of
// the framework.
var ErrUnknownArgument = errors.New("accept: unknown argument")

// resolve looks up argument's dense index, wrapping core's error with this
// package's sentinel so callers only need to check one error type.
func resolve(f *core.Framework, argument string) (int, error) {
	i, ok := f.IndexOf(argument)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownArgument, argument)
	}
	return i, nil
}

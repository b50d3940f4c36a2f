package accept

import (
	"github.com/katalvlaran/dungaf/core"
	"github.com/katalvlaran/dungaf/enumerate"
	"github.com/katalvlaran/dungaf/meter"
)

// NaiveCredulousComplete reports whether argument belongs to at least one
// complete extension, searching with early stop on first membership.
func NaiveCredulousComplete(f *core.Framework, argument string, counter *meter.Counter) (bool, error) {
	idx, err := resolve(f, argument)
	if err != nil {
		return false, err
	}
	_, ok := enumerate.CompleteWithEarlyStop(f, idx, counter)
	return ok, nil
}

// NaiveSkepticalComplete reports whether argument belongs to every
// complete extension. Because the empty set is complete only when no
// unattacked argument exists, every complete extension must be enumerated
// to decide this (spec.md §4.5).
func NaiveSkepticalComplete(f *core.Framework, argument string, counter *meter.Counter) (bool, error) {
	idx, err := resolve(f, argument)
	if err != nil {
		return false, err
	}
	return allContain(enumerate.Complete(f, counter), idx), nil
}

// NaiveCredulousStable reports whether argument belongs to at least one
// stable extension.
func NaiveCredulousStable(f *core.Framework, argument string, counter *meter.Counter) (bool, error) {
	idx, err := resolve(f, argument)
	if err != nil {
		return false, err
	}
	_, ok := enumerate.StableWithEarlyStop(f, idx, counter)
	return ok, nil
}

// NaiveSkepticalStable reports whether argument belongs to every stable
// extension. When no stable extension exists this is vacuously true
// (spec.md §4.5, §9).
func NaiveSkepticalStable(f *core.Framework, argument string, counter *meter.Counter) (bool, error) {
	idx, err := resolve(f, argument)
	if err != nil {
		return false, err
	}
	return allContain(enumerate.Stable(f, counter), idx), nil
}

// allContain reports whether idx is a member of every set in sets,
// vacuously true for an empty slice.
func allContain(sets []core.Set, idx int) bool {
	for _, s := range sets {
		if !s.Has(idx) {
			return false
		}
	}
	return true
}

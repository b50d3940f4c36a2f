package core

import "fmt"

// AddArgument inserts name if it is not already present. Adding an existing
// name is a no-op (idempotent), matching the input format's tolerance for
// arguments declared more than once.
//
// Fails with ErrEmptyName, ErrReservedName, or ErrInvalidName if name is
// not a legal identifier.
// Complexity: O(n), dominated by growing the attack matrix by one row and
// one column.
func (f *Framework) AddArgument(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if reserved[name] {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, ok := f.indexOf[name]; ok {
		return nil // duplicate: no-op
	}

	f.indexOf[name] = len(f.names)
	f.names = append(f.names, name)
	f.attacks.Grow()

	return nil
}

// AddAttack records that attacker attacks target. Duplicate edges collapse
// (setting an already-true cell is a no-op).
//
// Fails with ErrUnknownArgument if either endpoint was never added via
// AddArgument.
// Complexity: O(1).
func (f *Framework) AddAttack(attacker, target string) error {
	i, ok := f.indexOf[attacker]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownArgument, attacker)
	}
	j, ok := f.indexOf[target]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownArgument, target)
	}

	// Set cannot fail here: i, j are always in range for a Framework's own matrix.
	_ = f.attacks.Set(i, j, true)

	return nil
}

// Has reports whether name was added as an argument.
func (f *Framework) Has(name string) bool {
	_, ok := f.indexOf[name]
	return ok
}

// Len returns the number of arguments in the framework.
func (f *Framework) Len() int {
	return len(f.names)
}

// Names returns the arguments in insertion order. The returned slice is
// owned by the Framework and must not be mutated by the caller.
func (f *Framework) Names() []string {
	return f.names
}

// IndexOf returns the dense index assigned to name at insertion time, or
// (-1, false) if name is not present.
func (f *Framework) IndexOf(name string) (int, bool) {
	i, ok := f.indexOf[name]
	if !ok {
		return -1, false
	}
	return i, true
}

// NameAt returns the argument name at dense index i.
func (f *Framework) NameAt(i int) string {
	return f.names[i]
}

// AttacksIndex reports whether the argument at index i attacks the
// argument at index j. Panics are not part of the contract for
// out-of-range i/j: both are always produced by the Framework itself in
// every search path, so no error return is needed on this hot path.
// Complexity: O(1).
func (f *Framework) AttacksIndex(i, j int) bool {
	ok, _ := f.attacks.At(i, j)
	return ok
}

// Attacks reports whether attacker attacks target by name.
// Fails with ErrUnknownArgument if either name is absent.
// Complexity: O(1).
func (f *Framework) Attacks(attacker, target string) (bool, error) {
	i, ok := f.indexOf[attacker]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownArgument, attacker)
	}
	j, ok := f.indexOf[target]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownArgument, target)
	}
	return f.attacks.At(i, j)
}

// AttackersOf returns the dense indices of every argument that attacks j.
// Complexity: O(n).
func (f *Framework) AttackersOf(j int) []int {
	var out []int
	n := f.Len()
	for i := 0; i < n; i++ {
		if f.AttacksIndex(i, j) {
			out = append(out, i)
		}
	}
	return out
}

// TargetsOf returns the dense indices of every argument that i attacks.
// Complexity: O(n).
func (f *Framework) TargetsOf(i int) []int {
	var out []int
	n := f.Len()
	for j := 0; j < n; j++ {
		if f.AttacksIndex(i, j) {
			out = append(out, j)
		}
	}
	return out
}

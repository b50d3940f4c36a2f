package enumerate_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/dungaf/core"
	"github.com/katalvlaran/dungaf/enumerate"
	"github.com/katalvlaran/dungaf/meter"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, args []string, attacks [][2]string) *core.Framework {
	t.Helper()
	f, err := core.Build(args, attacks)
	require.NoError(t, err)
	return f
}

// namesOf renders a slice of extensions as sorted, comma-joined name lists
// for order-independent comparison in tests.
func namesOf(f *core.Framework, sets []core.Set) []string {
	out := make([]string, 0, len(sets))
	for _, s := range sets {
		n := s.Names(f)
		if n == nil {
			n = []string{}
		}
		out = append(out, joinSorted(n))
	}
	sort.Strings(out)
	return out
}

func joinSorted(names []string) string {
	cp := append([]string(nil), names...)
	sort.Strings(cp)
	out := ""
	for i, n := range cp {
		if i > 0 {
			out += ","
		}
		out += n
	}
	return out
}

// TestS1CompleteAndStableExtensions exercises spec.md scenario S1.
func TestS1CompleteAndStableExtensions(t *testing.T) {
	f := build(t, []string{"A", "B", "C", "D", "E"}, [][2]string{
		{"A", "B"}, {"B", "A"}, {"A", "C"}, {"B", "C"}, {"C", "D"}, {"D", "E"},
	})
	var counter meter.Counter

	complete := namesOf(f, enumerate.Complete(f, &counter))
	if diff := cmp.Diff([]string{"", "A,D", "B,D"}, complete); diff != "" {
		t.Errorf("complete extensions mismatch (-want +got):\n%s", diff)
	}

	stable := namesOf(f, enumerate.Stable(f, &counter))
	if diff := cmp.Diff([]string{"A,D", "B,D"}, stable); diff != "" {
		t.Errorf("stable extensions mismatch (-want +got):\n%s", diff)
	}
}

// TestS2CompleteAndStableExtensions exercises spec.md scenario S2 (S1 plus E->D).
func TestS2CompleteAndStableExtensions(t *testing.T) {
	f := build(t, []string{"A", "B", "C", "D", "E"}, [][2]string{
		{"A", "B"}, {"B", "A"}, {"A", "C"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"E", "D"},
	})
	var counter meter.Counter

	complete := namesOf(f, enumerate.Complete(f, &counter))
	want := []string{"", "A", "A,D", "A,E", "B", "B,D", "B,E", "E"}
	sort.Strings(want)
	if diff := cmp.Diff(want, complete); diff != "" {
		t.Errorf("complete extensions mismatch (-want +got):\n%s", diff)
	}

	stable := namesOf(f, enumerate.Stable(f, &counter))
	wantStable := []string{"A,D", "A,E", "B,D", "B,E"}
	sort.Strings(wantStable)
	if diff := cmp.Diff(wantStable, stable); diff != "" {
		t.Errorf("stable extensions mismatch (-want +got):\n%s", diff)
	}
}

// TestNoDuplicateExtensions guards against the dead/duplicated-enumeration
// bug named in spec.md §9: each complete extension must appear exactly once.
func TestNoDuplicateExtensions(t *testing.T) {
	f := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	var counter meter.Counter
	results := enumerate.Complete(f, &counter)
	seen := map[string]bool{}
	for _, r := range results {
		key := joinSorted(r.Names(f))
		require.False(t, seen[key], "duplicate extension %q", key)
		seen[key] = true
	}
}

// TestFindOneStableNoneExists covers spec.md scenario S6: an odd cycle has
// no stable extension.
func TestFindOneStableNoneExists(t *testing.T) {
	f := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	var counter meter.Counter
	_, ok := enumerate.FindOneStable(f, &counter)
	require.False(t, ok)
}

// TestFindOneCompleteAlwaysSucceeds covers the universal guarantee that a
// complete extension always exists.
func TestFindOneCompleteAlwaysSucceeds(t *testing.T) {
	f := build(t, []string{"A"}, [][2]string{{"A", "A"}})
	var counter meter.Counter
	e := enumerate.FindOneComplete(f, &counter)
	require.Empty(t, e.Names(f))
}

// TestCompleteWithEarlyStop verifies early-stop search finds an extension
// containing the target, and reports none for an argument that belongs to
// no complete extension.
func TestCompleteWithEarlyStop(t *testing.T) {
	f := build(t, []string{"A", "B", "C", "D", "E"}, [][2]string{
		{"A", "B"}, {"B", "A"}, {"A", "C"}, {"B", "C"}, {"C", "D"}, {"D", "E"},
	})
	var counter meter.Counter
	idxA, _ := f.IndexOf("A")
	e, ok := enumerate.CompleteWithEarlyStop(f, idxA, &counter)
	require.True(t, ok)
	require.Contains(t, e.Names(f), "A")

	idxC, _ := f.IndexOf("C")
	_, ok = enumerate.CompleteWithEarlyStop(f, idxC, &counter)
	require.False(t, ok, "C is in no complete extension of S1")
}

// TestCounterIncrementsPerLeaf verifies the shared counter ticks once per
// fully-built candidate, i.e. once per leaf of the (possibly pruned)
// recursion tree, not once per internal node.
func TestCounterIncrementsPerLeaf(t *testing.T) {
	f := build(t, []string{"A"}, nil)
	var counter meter.Counter
	enumerate.Complete(f, &counter)
	// A single unattacked argument: two leaves ({A} and {}), both
	// conflict-free, so both are evaluated.
	require.Equal(t, 2, counter.Count())
}

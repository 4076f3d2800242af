package astar

import "testing"

// TestFrontier_ExtractOrder verifies extraction follows ascending f with
// ties broken by insertion order.
func TestFrontier_ExtractOrder(t *testing.T) {
	fr := newFrontier[string]()
	fr.insert("c", 3, 3, 0)
	fr.insert("a", 1, 1, 1)
	fr.insert("b1", 2, 2, 2)
	fr.insert("b2", 2, 2, 3)

	want := []string{"a", "b1", "b2", "c"}
	for _, state := range want {
		if got := fr.extractMin().state; got != state {
			t.Fatalf("extractMin order: got %q, want %q", got, state)
		}
	}
	if fr.Len() != 0 {
		t.Fatalf("frontier not drained: %d entries left", fr.Len())
	}
}

// TestFrontier_MembershipIndex verifies the index tracks exactly the states
// present in the heap.
func TestFrontier_MembershipIndex(t *testing.T) {
	fr := newFrontier[string]()
	fr.insert("a", 1, 1, 0)
	fr.insert("b", 2, 2, 1)

	if len(fr.index) != fr.Len() {
		t.Fatalf("index size %d != heap size %d", len(fr.index), fr.Len())
	}

	_ = fr.extractMin()
	if _, ok := fr.index["a"]; ok {
		t.Fatal("extracted state still present in membership index")
	}
	if len(fr.index) != fr.Len() {
		t.Fatalf("index size %d != heap size %d after extract", len(fr.index), fr.Len())
	}
}

// TestFrontier_DecreaseOrSkip covers the three cases of the rule: absent →
// insert, worse g → replace, equal-or-better g → skip.
func TestFrontier_DecreaseOrSkip(t *testing.T) {
	fr := newFrontier[string]()

	if !fr.decreaseOrSkip("a", 5, 7, 0) {
		t.Fatal("absent state must be inserted unconditionally")
	}
	if fr.decreaseOrSkip("a", 5, 7, 1) {
		t.Fatal("equal g must be skipped")
	}
	if fr.decreaseOrSkip("a", 6, 6, 2) {
		t.Fatal("worse g must be skipped even with a lower f")
	}
	if !fr.decreaseOrSkip("a", 3, 5, 3) {
		t.Fatal("strictly better g must replace the stale entry")
	}
	if fr.Len() != 1 {
		t.Fatalf("replacement must excise the stale entry, have %d entries", fr.Len())
	}

	e := fr.extractMin()
	if e.g != 3 || e.node != 3 {
		t.Fatalf("stale entry survived: got g=%v node=%d", e.g, e.node)
	}
}

// TestFrontier_PeakWatermark verifies insert reports watermark advances and
// Peak survives shrinking.
func TestFrontier_PeakWatermark(t *testing.T) {
	fr := newFrontier[string]()
	if !fr.insert("a", 1, 1, 0) {
		t.Fatal("first insert must advance the watermark")
	}
	if !fr.insert("b", 2, 2, 1) {
		t.Fatal("second insert must advance the watermark")
	}
	_ = fr.extractMin()
	if fr.insert("c", 3, 3, 2) {
		t.Fatal("re-filling to a previous size must not advance the watermark")
	}
	if fr.Peak() != 2 {
		t.Fatalf("Peak = %d, want 2", fr.Peak())
	}
}

// TestArena_Unwind verifies path reconstruction root→goal, including the
// single-node root case.
func TestArena_Unwind(t *testing.T) {
	var ar arena[string, string]
	root := ar.add("s0", noParent, "", 0)
	mid := ar.add("s1", root, "a1", 1)
	leaf := ar.add("s2", mid, "a2", 2)

	path, actions := ar.unwind(leaf)
	if len(path) != 3 || path[0] != "s0" || path[2] != "s2" {
		t.Fatalf("unexpected path %v", path)
	}
	if len(actions) != 2 || actions[0] != "a1" || actions[1] != "a2" {
		t.Fatalf("unexpected actions %v", actions)
	}

	path, actions = ar.unwind(root)
	if len(path) != 1 || len(actions) != 0 {
		t.Fatalf("root unwind: path=%v actions=%v", path, actions)
	}
	if actions == nil {
		t.Fatal("root unwind must return an empty, non-nil action slice")
	}
}

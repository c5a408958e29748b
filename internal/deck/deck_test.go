package deck

import "testing"

func intPool(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestDraw_NeverRepeats(t *testing.T) {
	d := New(intPool(20))

	seen := make(map[int]bool)
	for range 4 {
		for _, v := range d.Draw(5) {
			if seen[v] {
				t.Fatalf("item %d drawn twice", v)
			}
			seen[v] = true
		}
	}
	if len(seen) != 20 {
		t.Errorf("drew %d distinct items, want 20", len(seen))
	}
}

func TestDraw_Exhaustion(t *testing.T) {
	d := New(intPool(7))

	if got := d.Draw(5); len(got) != 5 {
		t.Fatalf("first draw = %d items, want 5", len(got))
	}
	if got := d.Draw(5); len(got) != 2 {
		t.Fatalf("second draw = %d items, want remaining 2", len(got))
	}
	if got := d.Draw(5); got != nil {
		t.Fatalf("exhausted deck returned %d items, want nil", len(got))
	}
}

func TestDraw_NonPositive(t *testing.T) {
	d := New(intPool(3))
	if got := d.Draw(0); got != nil {
		t.Errorf("Draw(0) = %v, want nil", got)
	}
	if got := d.Draw(-1); got != nil {
		t.Errorf("Draw(-1) = %v, want nil", got)
	}
	if d.Remaining() != 3 {
		t.Errorf("remaining = %d, want 3", d.Remaining())
	}
}

func TestRemaining(t *testing.T) {
	d := New(intPool(10))
	if d.Remaining() != 10 {
		t.Fatalf("remaining = %d, want 10", d.Remaining())
	}
	d.Draw(4)
	if d.Remaining() != 6 {
		t.Errorf("remaining = %d, want 6", d.Remaining())
	}
}

func TestReset(t *testing.T) {
	d := New(intPool(5))
	d.Draw(5)
	if d.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", d.Remaining())
	}
	d.Reset()
	if d.Remaining() != 5 {
		t.Errorf("remaining after reset = %d, want 5", d.Remaining())
	}
	if got := d.Draw(5); len(got) != 5 {
		t.Errorf("draw after reset = %d items, want 5", len(got))
	}
}

func TestNew_DoesNotMutatePool(t *testing.T) {
	pool := intPool(10)
	New(pool)
	for i, v := range pool {
		if v != i {
			t.Fatalf("pool mutated at %d: %d", i, v)
		}
	}
}

func TestEmptyDeck(t *testing.T) {
	d := New([]int(nil))
	if d.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", d.Remaining())
	}
	if got := d.Draw(3); got != nil {
		t.Errorf("Draw on empty deck = %v, want nil", got)
	}
}

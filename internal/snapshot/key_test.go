package snapshot

import "testing"

func TestCanonicalKey_EquivalentRefs(t *testing.T) {
	refs := []string{
		"math/fractions-intro.json",
		"fractions-intro.json",
		"fractions-intro",
		"content/lessons/math/fractions-intro.json",
	}

	for _, ref := range refs {
		if got := CanonicalKey(ref, "", ""); got != "fractions-intro" {
			t.Errorf("CanonicalKey(%q) = %q, want fractions-intro", ref, got)
		}
	}
}

func TestCanonicalKey_PriorityOrder(t *testing.T) {
	tests := []struct {
		route, manifest, id string
		want                string
	}{
		{"math/a.json", "b.json", "c", "a"},
		{"", "math/b.json", "c", "b"},
		{"", "", "c", "c"},
		{"  ", "", "c", "c"}, // whitespace-only route is not a reference
		{"", "", "", ""},
	}

	for _, tc := range tests {
		got := CanonicalKey(tc.route, tc.manifest, tc.id)
		if got != tc.want {
			t.Errorf("CanonicalKey(%q, %q, %q) = %q, want %q",
				tc.route, tc.manifest, tc.id, got, tc.want)
		}
	}
}

func TestCanonicalKey_OnlyLastSuffixStripped(t *testing.T) {
	if got := CanonicalKey("weird.json.json", "", ""); got != "weird.json" {
		t.Errorf("got %q, want weird.json", got)
	}
}

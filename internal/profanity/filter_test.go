package profanity

import "testing"

func newFilter(t *testing.T) *Filter {
	t.Helper()
	f, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return f
}

func TestContainsProhibited_CuratedWords(t *testing.T) {
	f := newFilter(t)

	tests := []struct {
		text string
		want bool
	}{
		{"you are so sweet", false},
		{"hello", false},
		{"you are a loser", true},
		{"what a STUPID idea", true},
		{"", false},
	}

	for _, tc := range tests {
		if got := f.ContainsProhibited(tc.text); got != tc.want {
			t.Fatalf("ContainsProhibited(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestContainsProhibited_Deterministic(t *testing.T) {
	f := newFilter(t)
	for i := 0; i < 3; i++ {
		if f.ContainsProhibited("roses are red, violets are blue") {
			t.Fatal("clean text flagged")
		}
	}
}

package history

import (
	"math"
	"reflect"
	"testing"
)

func TestStore_AddBoundAndEviction(t *testing.T) {
	s := NewStore(3)

	for _, line := range []string{"a", "b", "c", "d"} {
		s.Add(line)
		if s.Len() > s.Cap() {
			t.Fatalf("after Add(%q): len %d exceeds cap %d", line, s.Len(), s.Cap())
		}
	}

	// "a" was oldest when "d" came in, so it went first.
	want := []string{"b", "c", "d"}
	if got := s.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestStore_AddPromotesDuplicates(t *testing.T) {
	s := NewStore(4)
	s.Add("a")
	s.Add("b")
	s.Add("c")

	s.Add("b")

	want := []string{"a", "c", "b"}
	if got := s.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d after promoting, want 3", s.Len())
	}
}

func TestStore_Uniqueness(t *testing.T) {
	s := NewStore(5)
	for _, line := range []string{"x", "y", "x", "z", "y", "x"} {
		s.Add(line)
	}

	seen := map[string]bool{}
	for _, line := range s.Lines() {
		if seen[line] {
			t.Errorf("duplicate entry %q in %v", line, s.Lines())
		}
		seen[line] = true
	}
}

func TestStore_ZeroCapacity(t *testing.T) {
	s := NewStore(0)
	s.Add("a")
	s.Add("b")

	if s.Len() != 0 {
		t.Errorf("zero-capacity store has %d entries, want 0", s.Len())
	}
	if _, ok := s.Get(1); ok {
		t.Error("Get(1) resolved on an empty store")
	}
}

func TestStore_GetCyclic(t *testing.T) {
	s := NewStore(5)
	s.Add("a")
	s.Add("b")
	s.Add("c")

	tests := []struct {
		pos  int
		want string
		ok   bool
	}{
		{0, "", false},
		// Backward: 1 is most recent, len is oldest, len+1 wraps to blank.
		{1, "c", true},
		{2, "b", true},
		{3, "a", true},
		{4, "", false},
		{5, "c", true},
		{8, "", false},
		{9, "c", true},
		// Forward: -1 is oldest, -len most recent, -(len+1) wraps to blank.
		{-1, "a", true},
		{-2, "b", true},
		{-3, "c", true},
		{-4, "", false},
		{-5, "a", true},
		{-8, "", false},
		{-9, "a", true},
		// Large magnitudes still land on the right slot (period 4).
		{4001, "c", true},
		{-4001, "a", true},
	}
	for _, tt := range tests {
		got, ok := s.Get(tt.pos)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Get(%d) = (%q, %v), want (%q, %v)", tt.pos, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStore_GetEmpty(t *testing.T) {
	s := NewStore(5)
	for _, pos := range []int{0, 1, -1, 100} {
		if _, ok := s.Get(pos); ok {
			t.Errorf("Get(%d) resolved on an empty store", pos)
		}
	}
}

func TestStore_GetMinInt(t *testing.T) {
	s := NewStore(5)
	s.Add("a")
	s.Add("b")
	s.Add("c")

	// math.MinInt saturates to math.MinInt+1 instead of overflowing on
	// negation. MinInt+1 = -9223372036854775807; 9223372036854775807 % 4 = 3,
	// so both extremes resolve to the third-oldest slot going forward.
	want, _ := s.Get(-3)
	got, ok := s.Get(math.MinInt)
	if !ok || got != want {
		t.Errorf("Get(MinInt) = (%q, %v), want (%q, true)", got, ok, want)
	}
	got, ok = s.Get(math.MinInt + 1)
	if !ok || got != want {
		t.Errorf("Get(MinInt+1) = (%q, %v), want (%q, true)", got, ok, want)
	}
}

func TestStore_GetDoesNotMutate(t *testing.T) {
	s := NewStore(4)
	s.Add("a")
	s.Add("b")

	before := s.Lines()
	for pos := -10; pos <= 10; pos++ {
		s.Get(pos)
	}
	if got := s.Lines(); !reflect.DeepEqual(got, before) {
		t.Errorf("Get mutated the store: %v, want %v", got, before)
	}
}

package difflib

import "testing"

// checkOpCodesCoverSequences verifies the contiguity invariants from the
// data model: opcodes partition [0,len(a)) and [0,len(b)) exactly, with no
// gaps or overlaps, and the stream starts at (0,0).
func checkOpCodesCoverSequences(t *testing.T, a, b []string, codes []OpCode) {
	t.Helper()
	if len(codes) == 0 {
		if len(a) != 0 || len(b) != 0 {
			t.Fatalf("empty opcode stream for non-empty sequences a=%v b=%v", a, b)
		}
		return
	}
	if codes[0].I1 != 0 || codes[0].J1 != 0 {
		t.Fatalf("first opcode does not start at (0,0): %+v", codes[0])
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1].I2 != codes[i].I1 {
			t.Fatalf("gap/overlap in a-range between %+v and %+v", codes[i-1], codes[i])
		}
		if codes[i-1].J2 != codes[i].J1 {
			t.Fatalf("gap/overlap in b-range between %+v and %+v", codes[i-1], codes[i])
		}
	}
	last := codes[len(codes)-1]
	if last.I2 != len(a) || last.J2 != len(b) {
		t.Fatalf("last opcode does not end at (len(a),len(b)): %+v vs (%d,%d)", last, len(a), len(b))
	}
}

func TestOpCodeCoverageInvariant(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"abc", ""},
		{"", "abc"},
		{"qabxcd", "abycdf"},
		{"one two three four five", "zero one three four"},
		{"aaaaaaaaaa", "aaaaaaaaaa"},
	}
	for _, c := range cases {
		a, b := splitChars(c[0]), splitChars(c[1])
		m := NewMatcher(a, b)
		checkOpCodesCoverSequences(t, a, b, m.GetOpCodes())
	}
}

func TestDeterminism(t *testing.T) {
	a := splitChars("the quick brown fox jumps over the lazy dog")
	b := splitChars("the quick brown fox leaps over the lazy cat")
	run := func() []OpCode { return NewMatcher(a, b).GetOpCodes() }
	first := run()
	for i := 0; i < 5; i++ {
		if got := run(); !opCodesEqual(got, first) {
			t.Fatalf("run %d differs from first run: %v vs %v", i, got, first)
		}
	}
}

func opCodesEqual(a, b []OpCode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHunkSeparationExceeds2N(t *testing.T) {
	n := 3
	a := numberedLines(40)
	b := append([]string(nil), a...)
	b[2] = "X3\n"  // near the start
	b[36] = "X37\n" // near the end, far apart
	groups := NewMatcher(a, b).GetGroupedOpCodes(n)
	if len(groups) != 2 {
		t.Fatalf("expected 2 separated hunks, got %d", len(groups))
	}
	gap := groups[1][0].I1 - groups[0][len(groups[0])-1].I2
	if gap <= 2*n {
		t.Fatalf("equal region between hunks must exceed 2n=%d, got %d", 2*n, gap)
	}
}

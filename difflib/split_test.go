package difflib

import (
	"reflect"
	"testing"
)

func TestSplitLinesStripped(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"foo", []string{"foo"}},
		{"foo\nbar", []string{"foo", "bar"}},
		{"foo\nbar\n", []string{"foo", "bar"}},
		{"foo\r\nbar\r", []string{"foo", "bar"}},
		{"a\rb\nc\r\nd", []string{"a", "b", "c", "d"}},
	}
	for _, c := range cases {
		if got := SplitLines(c.input, false); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitLines(%q, false) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestSplitLinesKeepEnds(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"foo\nbar\n", []string{"foo\n", "bar\n"}},
		{"foo\r\nbar\r", []string{"foo\r\n", "bar\r"}},
		{"one\ntwo", []string{"one\n", "two"}},
	}
	for _, c := range cases {
		if got := SplitLines(c.input, true); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitLines(%q, true) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestUnifiedDiffStringConvenienceEntryPoint(t *testing.T) {
	a := "one\ntwo\nthree\n"
	b := "one\nTWO\nthree\n"
	got, err := UnifiedDiffString(a, b, "a", "b", "", "", 3, "\n", true)
	if err != nil {
		t.Fatal(err)
	}
	want := "--- a\n+++ b\n@@ -1,3 +1,3 @@\n one\n-two\n+TWO\n three\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

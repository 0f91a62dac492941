// ABOUTME: Tests for CLI output helpers.
package main

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a much longer string", 10, "a much ..."},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.maxLen); got != c.want {
			t.Errorf("truncate(%q, %d) mismatch: got %q, want %q", c.in, c.maxLen, got, c.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("pad mismatch: got %q", got)
	}
	if got := padRight("abcdef", 5); got != "abcdef" {
		t.Errorf("overlong pad mismatch: got %q", got)
	}
}

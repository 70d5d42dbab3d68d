package utils

import (
	"strings"
	"testing"
)

func TestTruncateRunes(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		max    int
		suffix string
		want   string
	}{
		{"short unchanged", "hi", 5, "...", "hi"},
		{"exact unchanged", "12345", 5, "...", "12345"},
		{"cut with suffix", "hello world", 5, "...", "hello..."},
		{"zero max unchanged", "abc", 0, "...", "abc"},
		{"empty suffix", "abcdef", 3, "", "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.in, tc.max, tc.suffix); got != tc.want {
				t.Fatalf("TruncateRunes(%q, %d, %q) = %q; want %q", tc.in, tc.max, tc.suffix, got, tc.want)
			}
		})
	}
}

func TestTruncateRunes_MultibyteSafe(t *testing.T) {
	in := strings.Repeat("é", 10)
	got := TruncateRunes(in, 4, "…")
	if got != strings.Repeat("é", 4)+"…" {
		t.Fatalf("multibyte truncation broken: %q", got)
	}
}

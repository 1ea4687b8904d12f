package ytmwiki

import (
	"slices"
	"testing"
)

func TestBoundaryIndexAll(t *testing.T) {
	cases := []struct {
		name     string
		boundary Boundary
		s        string
		tok      string
		want     []int
	}{
		{
			name:     "url segment, longer id and glued letter",
			boundary: DefaultBoundary,
			s:        "YTM-14 http://foo/YTM-14 YTM-145 xYTM-14 (YTM-14)",
			tok:      "YTM-14",
			want:     []int{0, 42},
		},
		{
			name:     "punctuation neighbours",
			boundary: DefaultBoundary,
			s:        ":YTM-14. ,YTM-14; \"YTM-14\"",
			tok:      "YTM-14",
			want:     []int{1, 10, 19},
		},
		{
			name:     "unicode letters glue by default",
			boundary: DefaultBoundary,
			s:        "задачаYTM-14",
			tok:      "YTM-14",
			want:     nil,
		},
		{
			name:     "ascii boundary accepts non-ascii neighbours",
			boundary: ASCIIBoundary("_-/"),
			s:        "задачаYTM-14",
			tok:      "YTM-14",
			want:     []int{12},
		},
		{
			name:     "mention after email local part",
			boundary: DefaultBoundary,
			s:        "a@bob @bob",
			tok:      "@bob",
			want:     []int{6},
		},
		{
			name:     "url fragment query and ampersand",
			boundary: DefaultBoundary,
			s:        "http://foo/browse#YTM-14 http://foo/q?YTM-14 http://foo.com?a=1&YTM-14 YTM-14",
			tok:      "YTM-14",
			want:     []int{71},
		},
		{
			name:     "url run ends at unicode space",
			boundary: DefaultBoundary,
			s:        "http://foo#x\u3000YTM-14",
			tok:      "YTM-14",
			want:     []int{15},
		},
		{
			name:     "empty token",
			boundary: DefaultBoundary,
			s:        "anything",
			tok:      "",
			want:     nil,
		},
		{
			name:     "overlapping candidates",
			boundary: UnicodeBoundary(""),
			s:        "aa aa",
			tok:      "aa",
			want:     []int{0, 3},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.boundary.IndexAll(tc.s, tc.tok)
			if !slices.Equal(got, tc.want) {
				t.Fatalf("IndexAll(%q, %q) = %v, want %v", tc.s, tc.tok, got, tc.want)
			}
		})
	}
}

func TestBoundaryIsolated(t *testing.T) {
	s := "x-1 y"
	if !DefaultBoundary.Isolated(s, 0, 3) {
		t.Fatalf("expected x-1 to be isolated")
	}
	if DefaultBoundary.Isolated(s, 2, 3) {
		t.Fatalf("expected 1 to be glued to the hyphen")
	}
	if !DefaultBoundary.Isolated(s, 0, len(s)) {
		t.Fatalf("expected whole string to be isolated")
	}
}

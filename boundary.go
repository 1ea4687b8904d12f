package ytmwiki

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultIdentifierExtra lists the punctuation that glues onto an id. The slash
// keeps ids that are URL path segments from matching.
const defaultIdentifierExtra = `_-/\=@`

// Boundary reports whether r continues an identifier. A match is a whole token
// only when neither neighbouring rune continues an identifier.
type Boundary func(r rune) bool

// DefaultBoundary treats letters and digits of any script, plus _ - / \ = @, as
// identifier runes.
var DefaultBoundary = UnicodeBoundary(defaultIdentifierExtra)

// UnicodeBoundary treats Unicode letters and digits and the runes in extra as
// identifier runes.
func UnicodeBoundary(extra string) Boundary {
	return func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(extra, r)
	}
}

// ASCIIBoundary treats ASCII letters and digits and the runes in extra as
// identifier runes. Non-ASCII neighbours are acceptable.
func ASCIIBoundary(extra string) Boundary {
	return func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return true
		}
		return strings.ContainsRune(extra, r)
	}
}

// Isolated reports whether s[start:end] stands as a whole token in s.
func (b Boundary) Isolated(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if b(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if b(r) {
			return false
		}
	}
	return true
}

// IndexAll returns the byte offsets of every whole-token occurrence of tok in s.
// Occurrences inside a whitespace-delimited run that holds a URL scheme
// separator are part of that URL and never count.
func (b Boundary) IndexAll(s, tok string) []int {
	if tok == "" {
		return nil
	}
	var hits []int
	for i := 0; i+len(tok) <= len(s); {
		j := strings.Index(s[i:], tok)
		if j < 0 {
			break
		}
		j += i
		if b.Isolated(s, j, j+len(tok)) && !inURL(s, j, j+len(tok)) {
			hits = append(hits, j)
		}
		_, size := utf8.DecodeRuneInString(s[j:])
		i = j + size
	}
	return hits
}

// inURL reports whether s[start:end] lies in a whitespace-delimited run of s
// containing "://".
func inURL(s string, start, end int) bool {
	lo := strings.LastIndexFunc(s[:start], unicode.IsSpace)
	if lo < 0 {
		lo = 0
	} else {
		_, size := utf8.DecodeRuneInString(s[lo:])
		lo += size
	}
	hi := strings.IndexFunc(s[end:], unicode.IsSpace)
	if hi < 0 {
		hi = len(s)
	} else {
		hi += end
	}
	return strings.Contains(s[lo:hi], "://")
}

package ytmwiki

import (
	"cmp"
	"slices"
	"strings"
)

type replacement struct {
	start int
	end   int
	text  string
}

// rewritePlan collects replacements against one source string and applies them
// in a single pass, so replacement text is never rescanned.
type rewritePlan struct {
	src       string
	protected [][2]int
	edits     []replacement
}

func newRewritePlan(src string) *rewritePlan {
	return &rewritePlan{src: src, protected: inlineTokenRanges(src)}
}

// add records a replacement unless it touches an inline token already present
// in the source.
func (p *rewritePlan) add(start, end int, text string) bool {
	for _, r := range p.protected {
		if start < r[1] && end > r[0] {
			return false
		}
	}
	p.edits = append(p.edits, replacement{start: start, end: end, text: text})
	return true
}

// apply builds the rewritten string. Overlapping edits lose to the one that
// starts first; on equal starts the earlier recorded edit wins.
func (p *rewritePlan) apply() string {
	if len(p.edits) == 0 {
		return p.src
	}
	slices.SortStableFunc(p.edits, func(a, b replacement) int {
		return cmp.Compare(a.start, b.start)
	})
	var b strings.Builder
	grow := len(p.src)
	for _, e := range p.edits {
		grow += len(e.text)
	}
	b.Grow(grow)
	last := 0
	for _, e := range p.edits {
		if e.start < last {
			continue
		}
		b.WriteString(p.src[last:e.start])
		b.WriteString(e.text)
		last = e.end
	}
	b.WriteString(p.src[last:])
	return b.String()
}

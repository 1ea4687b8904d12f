package ytmwiki

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	var b strings.Builder
	width := 0
	for _, r := range text {
		w := ansi.PrintableRuneWidth(string(r))
		if width+w > limit-1 {
			break
		}
		b.WriteRune(r)
		width += w
	}
	return strings.TrimRight(b.String(), " ") + "…"
}

func fitURL(url string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}

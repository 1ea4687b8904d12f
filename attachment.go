package ytmwiki

import (
	"cmp"
	"slices"
	"strings"
)

const imageDelimiter = '!'

// Attachment maps an attachment file name to its download URL.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ReplaceImageNamesWithUrls rewrites !name! placeholders whose name exactly
// equals an attachment name. Names are compared verbatim, so spaces, commas and
// dots inside them are literal. Unknown placeholders are kept.
func (d *Decorator) ReplaceImageNamesWithUrls(raw string, attachments []Attachment) string {
	if raw == "" || len(attachments) == 0 {
		return raw
	}
	p := newRewritePlan(raw)
	d.planAttachments(p, attachments)
	return p.apply()
}

func (d *Decorator) planAttachments(p *rewritePlan, attachments []Attachment) {
	names := lookupOrder(attachments)
	if len(names) == 0 {
		return
	}
	s := p.src
	for i := 0; i < len(s); {
		j := strings.IndexByte(s[i:], imageDelimiter)
		if j < 0 {
			return
		}
		j += i
		i = j + 1
		rest := s[j+1:]
		for _, a := range names {
			if !strings.HasPrefix(rest, a.Name) || !strings.HasPrefix(rest[len(a.Name):], string(imageDelimiter)) {
				continue
			}
			end := j + 1 + len(a.Name) + 1
			if p.add(j, end, d.imageReplacement(a.URL)) {
				i = end
			}
			break
		}
	}
}

func (d *Decorator) imageReplacement(url string) string {
	if d.bareAttachmentURLs {
		return url
	}
	return string(imageDelimiter) + url + string(imageDelimiter)
}

// lookupOrder drops unnamed and duplicate attachments, keeping the first of
// each name, and orders the rest longest name first.
func lookupOrder(attachments []Attachment) []Attachment {
	seen := make(map[string]struct{}, len(attachments))
	out := make([]Attachment, 0, len(attachments))
	for _, a := range attachments {
		if a.Name == "" {
			continue
		}
		if _, dup := seen[a.Name]; dup {
			continue
		}
		seen[a.Name] = struct{}{}
		out = append(out, a)
	}
	slices.SortStableFunc(out, func(a, b Attachment) int {
		return cmp.Compare(len(b.Name), len(a.Name))
	})
	return out
}

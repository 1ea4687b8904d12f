package ytmwiki

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode"

	"github.com/muesli/reflow/ansi"
)

// PreviewRequest configures Preview.
type PreviewRequest struct {
	Writer  io.Writer
	Text    string
	Width   int
	Theme   Theme
	Options []PreviewOption
}

// Preview renders decorated text for a terminal. Issue tokens show the id and
// summary, user tokens show @name and image placeholders show their URL. Output
// is word-wrapped to Width cells when Width is positive.
func Preview(req PreviewRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("preview: Writer is nil")
	}
	cfg := previewConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	p := &previewer{width: req.Width, styles: theme.Styles(), cfg: cfg}
	for _, seg := range ParseInline(req.Text) {
		p.segment(seg)
	}
	if p.lineWidth > 0 {
		p.newline()
	}
	if _, err := io.WriteString(req.Writer, p.out.String()); err != nil {
		return fmt.Errorf("preview: write: %w", err)
	}
	return nil
}

type previewer struct {
	out          strings.Builder
	width        int
	lineWidth    int
	pendingSpace bool
	styles       Styles
	cfg          previewConfig
}

func (p *previewer) segment(seg Segment) {
	switch seg.Kind {
	case SegmentIssue:
		st := p.styles.Issue
		if seg.Issue.Resolved {
			st = p.styles.IssueResolved
		}
		p.write(seg.Issue.ID, st, p.trackerLink("issue", seg.Issue.ID))
		summary := seg.Issue.Summary
		if p.cfg.summaryWidth > 0 {
			summary = truncateWithEllipsis(summary, p.cfg.summaryWidth)
		}
		if summary != "" {
			p.write(" ("+summary+")", p.styles.Summary, "")
		}
	case SegmentUser:
		name := seg.User.Name
		if name == "" {
			name = seg.User.Login
		}
		p.write("@"+name, p.styles.User, p.trackerLink("users", seg.User.Login))
	case SegmentImage:
		p.write("[image]", p.styles.Image, "")
		p.pendingSpace = true
		p.word(fitURL(seg.URL, p.width), p.styles.URL, p.imageLink(seg.URL))
	default:
		p.write(seg.Text, p.styles.Text, "")
	}
}

func (p *previewer) trackerLink(kind, id string) string {
	if p.cfg.issueBaseURL == "" {
		return ""
	}
	return strings.TrimRight(p.cfg.issueBaseURL, "/") + "/" + kind + "/" + url.PathEscape(id)
}

// imageLink resolves root-relative attachment paths against the tracker URL.
// Without one they are not linked.
func (p *previewer) imageLink(u string) string {
	if !strings.HasPrefix(u, "/") {
		return u
	}
	if p.cfg.issueBaseURL == "" {
		return ""
	}
	return strings.TrimRight(p.cfg.issueBaseURL, "/") + u
}

// write splits s into words. Runs of blanks collapse to one space and newlines
// are kept.
func (p *previewer) write(s string, st Style, link string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			p.newline()
		}
		for line != "" {
			trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
			if len(trimmed) != len(line) {
				p.pendingSpace = true
				line = trimmed
				continue
			}
			end := strings.IndexFunc(line, unicode.IsSpace)
			if end < 0 {
				end = len(line)
			}
			p.word(line[:end], st, link)
			line = line[end:]
		}
	}
}

func (p *previewer) word(w string, st Style, link string) {
	n := ansi.PrintableRuneWidth(w)
	space := 0
	if p.pendingSpace && p.lineWidth > 0 {
		space = 1
	}
	if p.width > 0 && p.lineWidth > 0 && p.lineWidth+space+n > p.width {
		p.newline()
		space = 0
	}
	if space > 0 {
		p.out.WriteByte(' ')
		p.lineWidth++
	}
	p.pendingSpace = false
	p.emit(w, st, link)
	p.lineWidth += n
}

func (p *previewer) emit(w string, st Style, link string) {
	linked := link != "" && p.cfg.osc8
	if linked {
		p.out.WriteString(osc8Start)
		p.out.WriteString(link)
		p.out.WriteString(osc8Close)
	}
	if st.Prefix != "" {
		p.out.WriteString(st.Prefix)
		p.out.WriteString(w)
		p.out.WriteString(ansiReset)
	} else {
		p.out.WriteString(w)
	}
	if linked {
		p.out.WriteString(osc8End)
	}
}

func (p *previewer) newline() {
	p.out.WriteByte('\n')
	p.lineWidth = 0
	p.pendingSpace = false
}

package ytmwiki

import "strings"

// Inline token delimiters and issue statuses understood by the client.
const (
	IssueDelimiter   = "[ytmissue]"
	UserDelimiter    = "[ytmuser]"
	StatusResolved   = "resolved"
	StatusUnresolved = "unresolved"

	fieldSeparator = "|"
)

// Issue is the payload of an issue token.
type Issue struct {
	ID       string
	Summary  string
	Resolved bool
}

// Status returns the token status field.
func (i Issue) Status() string {
	if i.Resolved {
		return StatusResolved
	}
	return StatusUnresolved
}

// User is the payload of a user token.
type User struct {
	Login string
	Name  string
}

var delimiterStripper = strings.NewReplacer(IssueDelimiter, "", UserDelimiter, "")

// FormatIssue returns the inline token for i. Delimiter text inside the
// summary is removed so the token always parses back.
func FormatIssue(i Issue) string {
	return IssueDelimiter + i.ID + fieldSeparator + stripDelimiters(i.Summary) + fieldSeparator + i.Status() + IssueDelimiter
}

// FormatUser returns the inline token for u. Delimiter text inside the name is
// removed.
func FormatUser(u User) string {
	return UserDelimiter + u.Login + fieldSeparator + stripDelimiters(u.Name) + UserDelimiter
}

func stripDelimiters(s string) string {
	for strings.Contains(s, IssueDelimiter) || strings.Contains(s, UserDelimiter) {
		s = delimiterStripper.Replace(s)
	}
	return s
}

// SegmentKind identifies a piece of decorated text.
type SegmentKind uint8

const (
	SegmentText SegmentKind = iota
	SegmentIssue
	SegmentUser
	SegmentImage
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentText:
		return "text"
	case SegmentIssue:
		return "issue"
	case SegmentUser:
		return "user"
	case SegmentImage:
		return "image"
	default:
		return "unknown"
	}
}

// Segment is one piece of decorated text. Text always holds the exact source
// bytes, so joining the Text of every segment reproduces the input.
type Segment struct {
	Kind  SegmentKind
	Text  string
	Issue Issue
	User  User
	// URL is set for image segments.
	URL string
}

// ParseInline splits decorated text into plain text, issue, user and image
// segments. Tokens that are not terminated or have the wrong shape are treated
// as text.
func ParseInline(s string) []Segment {
	var segs []Segment
	textStart := 0
	for i := 0; i < len(s); {
		j := strings.IndexAny(s[i:], "[!")
		if j < 0 {
			break
		}
		i += j
		seg, n, ok := scanInlineToken(s[i:])
		if !ok {
			i++
			continue
		}
		if i > textStart {
			segs = append(segs, Segment{Kind: SegmentText, Text: s[textStart:i]})
		}
		segs = append(segs, seg)
		i += n
		textStart = i
	}
	if textStart < len(s) {
		segs = append(segs, Segment{Kind: SegmentText, Text: s[textStart:]})
	}
	return segs
}

func scanInlineToken(s string) (Segment, int, bool) {
	switch {
	case strings.HasPrefix(s, IssueDelimiter):
		body, n, ok := delimited(s, IssueDelimiter)
		if !ok {
			return Segment{}, 0, false
		}
		first := strings.Index(body, fieldSeparator)
		last := strings.LastIndex(body, fieldSeparator)
		if first < 0 || first == last {
			return Segment{}, 0, false
		}
		issue := Issue{ID: body[:first], Summary: body[first+1 : last]}
		switch body[last+1:] {
		case StatusResolved:
			issue.Resolved = true
		case StatusUnresolved:
		default:
			return Segment{}, 0, false
		}
		if issue.ID == "" {
			return Segment{}, 0, false
		}
		return Segment{Kind: SegmentIssue, Text: s[:n], Issue: issue}, n, true
	case strings.HasPrefix(s, UserDelimiter):
		body, n, ok := delimited(s, UserDelimiter)
		if !ok {
			return Segment{}, 0, false
		}
		login, name, found := strings.Cut(body, fieldSeparator)
		if !found || login == "" {
			return Segment{}, 0, false
		}
		return Segment{Kind: SegmentUser, Text: s[:n], User: User{Login: login, Name: name}}, n, true
	case len(s) > 0 && s[0] == imageDelimiter:
		end := strings.IndexByte(s[1:], imageDelimiter)
		if end < 0 {
			return Segment{}, 0, false
		}
		url := s[1 : 1+end]
		if !isImageURL(url) {
			return Segment{}, 0, false
		}
		n := end + 2
		return Segment{Kind: SegmentImage, Text: s[:n], URL: url}, n, true
	}
	return Segment{}, 0, false
}

func delimited(s, delim string) (string, int, bool) {
	rest := s[len(delim):]
	end := strings.Index(rest, delim)
	if end < 0 {
		return "", 0, false
	}
	return rest[:end], len(delim) + end + len(delim), true
}

// isImageURL accepts absolute http(s) URLs and root-relative tracker paths.
func isImageURL(s string) bool {
	switch {
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
	case len(s) > 1 && s[0] == '/' && s[1] != '/':
	default:
		return false
	}
	return !strings.ContainsAny(s, " \t\r\n")
}

// inlineTokenRanges returns the byte ranges of issue and user tokens in s.
func inlineTokenRanges(s string) [][2]int {
	if !strings.Contains(s, IssueDelimiter) && !strings.Contains(s, UserDelimiter) {
		return nil
	}
	var ranges [][2]int
	pos := 0
	for _, seg := range ParseInline(s) {
		if seg.Kind == SegmentIssue || seg.Kind == SegmentUser {
			ranges = append(ranges, [2]int{pos, pos + len(seg.Text)})
		}
		pos += len(seg.Text)
	}
	return ranges
}

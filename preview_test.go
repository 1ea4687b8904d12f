package ytmwiki

import (
	"bytes"
	"strings"
	"testing"
)

func boringTheme() Theme {
	return NewTheme("boring", Styles{})
}

func renderPreview(t *testing.T, text string, width int, opts ...PreviewOption) string {
	t.Helper()
	var out bytes.Buffer
	if err := Preview(PreviewRequest{Writer: &out, Text: text, Width: width, Theme: boringTheme(), Options: opts}); err != nil {
		t.Fatalf("Preview: %v", err)
	}
	return out.String()
}

func TestPreviewPlain(t *testing.T) {
	text := "foo [ytmissue]YTM-14|Fake issue summary|unresolved[ytmissue] and [ytmuser]u|Mr. User[ytmuser]"
	got := renderPreview(t, text, 0)
	want := "foo YTM-14 (Fake issue summary) and @Mr. User\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPreviewWraps(t *testing.T) {
	if got := renderPreview(t, "alpha beta gamma delta", 11); got != "alpha beta\ngamma delta\n" {
		t.Fatalf("got %q", got)
	}
	text := "foo [ytmissue]YTM-14|Fake issue summary|unresolved[ytmissue] and [ytmuser]u|Mr. User[ytmuser]"
	if got := renderPreview(t, text, 40); got != "foo YTM-14 (Fake issue summary) and @Mr.\nUser\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPreviewKeepsNewlines(t *testing.T) {
	if got := renderPreview(t, "one\ntwo   three\n", 0); got != "one\ntwo three\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPreviewImageAndEmptyName(t *testing.T) {
	got := renderPreview(t, "look !http://x.io/a.png! [ytmuser]bob|[ytmuser]", 0)
	if got != "look [image] http://x.io/a.png @bob\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPreviewRelativeImage(t *testing.T) {
	got := renderPreview(t, "!/api/files/1?sign=x!", 0)
	if got != "[image] /api/files/1?sign=x\n" {
		t.Fatalf("got %q", got)
	}
	linked := renderPreview(t, "!/api/files/1?sign=x!", 0,
		WithOSC8(true), WithIssueBaseURL("https://yt.example.com/"))
	if !strings.Contains(linked, osc8Start+"https://yt.example.com/api/files/1?sign=x"+osc8Close) {
		t.Fatalf("expected resolved OSC8 link in %q", linked)
	}
	unlinked := renderPreview(t, "!/api/files/1?sign=x!", 0, WithOSC8(true))
	if strings.Contains(unlinked, osc8Start) {
		t.Fatalf("unexpected OSC8 link without a base URL: %q", unlinked)
	}
}

func TestPreviewSummaryWidth(t *testing.T) {
	got := renderPreview(t, "[ytmissue]YTM-14|Fake issue summary|unresolved[ytmissue]", 0, WithSummaryWidth(8))
	if got != "YTM-14 (Fake is…)\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPreviewOSC8Links(t *testing.T) {
	got := renderPreview(t, "[ytmissue]YTM-1|s|unresolved[ytmissue]", 0,
		WithOSC8(true), WithIssueBaseURL("https://yt.example.com/"))
	link := osc8Start + "https://yt.example.com/issue/YTM-1" + osc8Close + "YTM-1" + osc8End
	if !strings.Contains(got, link) {
		t.Fatalf("expected OSC8 link in %q", got)
	}
	plain := renderPreview(t, "[ytmissue]YTM-1|s|unresolved[ytmissue]", 0, WithIssueBaseURL("https://yt.example.com/"))
	if strings.Contains(plain, osc8Start) {
		t.Fatalf("unexpected OSC8 sequence without WithOSC8: %q", plain)
	}
}

func TestPreviewStylesResolvedIssues(t *testing.T) {
	var out bytes.Buffer
	err := Preview(PreviewRequest{
		Writer: &out,
		Text:   "[ytmissue]YTM-1|done|resolved[ytmissue] [ytmissue]YTM-2|open|unresolved[ytmissue]",
		Theme:  DefaultTheme(),
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	styles := DefaultTheme().Styles()
	if !strings.Contains(out.String(), styles.IssueResolved.Prefix+"YTM-1"+ansiReset) {
		t.Fatalf("resolved issue not styled: %q", out.String())
	}
	if !strings.Contains(out.String(), styles.Issue.Prefix+"YTM-2"+ansiReset) {
		t.Fatalf("open issue not styled: %q", out.String())
	}
}

func TestPreviewRequiresWriter(t *testing.T) {
	if err := Preview(PreviewRequest{Text: "x"}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestTruncateAndFitURL(t *testing.T) {
	if got := truncateWithEllipsis("短い文字列です", 5); got != "短い…" {
		t.Fatalf("truncate wide runes: %q", got)
	}
	if got := fitURL("https://example.com/a", 15); got != "example.com/a" {
		t.Fatalf("fitURL strip scheme: %q", got)
	}
	if got := fitURL("https://example.com/a", 0); got != "https://example.com/a" {
		t.Fatalf("fitURL unlimited: %q", got)
	}
}

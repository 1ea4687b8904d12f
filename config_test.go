package ytmwiki

import (
	"strings"
	"testing"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	src := `
issue_id_pattern: "[A-Z][A-Z0-9]*-[0-9]+"
resolved_class: done
bare_attachment_urls: true
preview:
  theme: nord
  width: 60
`
	cfg, err := LoadConfig(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.IssueIDPattern != "[A-Z][A-Z0-9]*-[0-9]+" || cfg.ResolvedClass != "done" || !cfg.BareAttachmentURLs {
		t.Fatalf("unexpected decorator config: %+v", cfg)
	}
	if cfg.Preview.Theme != "nord" || cfg.Preview.Width != 60 || cfg.Preview.OSC8 != "auto" {
		t.Fatalf("unexpected preview config: %+v", cfg.Preview)
	}
	if cfg.IdentifierRunes != defaultIdentifierExtra {
		t.Fatalf("expected default identifier runes, got %q", cfg.IdentifierRunes)
	}

	d, err := New(cfg.Options()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := d.Decorate(Message{
		Text:        "P2-7 !a.png!",
		Rendered:    `<a href="/issue/P2-7" class="done" title="Port">P2-7</a>`,
		Attachments: []Attachment{{Name: "a.png", URL: "http://x/a.png"}},
	})
	if got != "[ytmissue]P2-7|Port|resolved[ytmissue] http://x/a.png" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadConfigEmptyIsDefault(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	if _, err := LoadConfig(strings.NewReader("issue_pattern: x\n")); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestConfigASCIIBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ASCIIBoundary = true
	d, err := New(cfg.Options()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := d.DecorateIssueLinks("задачаYTM-14", fakeIssueAnchor)
	if got != "задача[ytmissue]YTM-14|Fake issue summary|unresolved[ytmissue]" {
		t.Fatalf("got %q", got)
	}
}

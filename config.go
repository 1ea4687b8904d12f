package ytmwiki

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the decorator and preview settings.
type Config struct {
	IssueIDPattern     string        `yaml:"issue_id_pattern"`
	ResolvedClass      string        `yaml:"resolved_class"`
	IdentifierRunes    string        `yaml:"identifier_runes"`
	ASCIIBoundary      bool          `yaml:"ascii_boundary"`
	BareAttachmentURLs bool          `yaml:"bare_attachment_urls"`
	Preview            PreviewConfig `yaml:"preview"`
}

// PreviewConfig holds preview settings.
type PreviewConfig struct {
	Theme        string `yaml:"theme"`
	Width        int    `yaml:"width"`
	OSC8         string `yaml:"osc8"`
	IssueBaseURL string `yaml:"issue_base_url"`
	SummaryWidth int    `yaml:"summary_width"`
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		IssueIDPattern:  defaultIssueIDPattern,
		ResolvedClass:   defaultResolvedClass,
		IdentifierRunes: defaultIdentifierExtra,
		Preview: PreviewConfig{
			Theme: "default",
			OSC8:  "auto",
		},
	}
}

// LoadConfig reads a YAML configuration on top of DefaultConfig. Unknown keys
// are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Boundary returns the whole-token policy described by the config.
func (c Config) Boundary() Boundary {
	if c.ASCIIBoundary {
		return ASCIIBoundary(c.IdentifierRunes)
	}
	return UnicodeBoundary(c.IdentifierRunes)
}

// Options returns the decorator options described by the config.
func (c Config) Options() []Option {
	return []Option{
		WithIssueIDPattern(c.IssueIDPattern),
		WithResolvedClass(c.ResolvedClass),
		WithBoundary(c.Boundary()),
		WithBareAttachmentURLs(c.BareAttachmentURLs),
	}
}

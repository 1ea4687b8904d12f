package ytmwiki

// PreviewOption configures preview rendering.
type PreviewOption func(*previewConfig)

type previewConfig struct {
	osc8         bool
	issueBaseURL string
	summaryWidth int
}

// WithOSC8 enables or disables OSC 8 hyperlinks.
func WithOSC8(enabled bool) PreviewOption {
	return func(cfg *previewConfig) {
		cfg.osc8 = enabled
	}
}

// WithIssueBaseURL sets the tracker URL used to link issues and users when
// OSC 8 hyperlinks are enabled.
func WithIssueBaseURL(base string) PreviewOption {
	return func(cfg *previewConfig) {
		cfg.issueBaseURL = base
	}
}

// WithSummaryWidth truncates issue summaries to at most width cells. Zero
// disables truncation.
func WithSummaryWidth(width int) PreviewOption {
	return func(cfg *previewConfig) {
		cfg.summaryWidth = width
	}
}

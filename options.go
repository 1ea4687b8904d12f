package ytmwiki

import "go.uber.org/zap"

// Option configures a Decorator.
type Option func(*decoratorConfig)

type decoratorConfig struct {
	issueIDPattern     string
	resolvedClass      string
	boundary           Boundary
	bareAttachmentURLs bool
	logger             *zap.Logger
}

func defaultDecoratorConfig() decoratorConfig {
	return decoratorConfig{
		issueIDPattern: defaultIssueIDPattern,
		resolvedClass:  defaultResolvedClass,
		boundary:       DefaultBoundary,
	}
}

// WithIssueIDPattern sets the regular expression an issue id must match inside
// an issue href. The default is [A-Za-z]+-[0-9]+.
func WithIssueIDPattern(expr string) Option {
	return func(cfg *decoratorConfig) {
		cfg.issueIDPattern = expr
	}
}

// WithResolvedClass sets the anchor class that marks an issue as resolved.
func WithResolvedClass(name string) Option {
	return func(cfg *decoratorConfig) {
		cfg.resolvedClass = name
	}
}

// WithBoundary sets the whole-token policy used for issue ids and mentions.
func WithBoundary(b Boundary) Option {
	return func(cfg *decoratorConfig) {
		if b != nil {
			cfg.boundary = b
		}
	}
}

// WithBareAttachmentURLs drops the ! delimiters around resolved image
// placeholders instead of keeping the wiki image syntax.
func WithBareAttachmentURLs(enabled bool) Option {
	return func(cfg *decoratorConfig) {
		cfg.bareAttachmentURLs = enabled
	}
}

// WithLogger sets the logger used for debug diagnostics about skipped anchors.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *decoratorConfig) {
		cfg.logger = logger
	}
}

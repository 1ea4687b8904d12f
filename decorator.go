package ytmwiki

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidPattern reports an issue id pattern that does not compile.
var ErrInvalidPattern = errors.New("invalid issue id pattern")

// Message is one comment in both of its forms.
type Message struct {
	Text        string       `json:"text"`
	Rendered    string       `json:"wikifiedText"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Decorator rewrites raw comment text into inline markup. It holds no mutable
// state and is safe for concurrent use.
type Decorator struct {
	issueHref          *regexp.Regexp
	resolvedClass      string
	boundary           Boundary
	bareAttachmentURLs bool
	logger             *zap.Logger
}

var defaultDecorator = mustNew()

func mustNew(opts ...Option) *Decorator {
	d, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// New returns a Decorator configured by opts.
func New(opts ...Option) (*Decorator, error) {
	cfg := defaultDecoratorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if strings.TrimSpace(cfg.issueIDPattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	issueHref, err := compileIssueHref(cfg.issueIDPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decorator{
		issueHref:          issueHref,
		resolvedClass:      cfg.resolvedClass,
		boundary:           cfg.boundary,
		bareAttachmentURLs: cfg.bareAttachmentURLs,
		logger:             logger,
	}, nil
}

// Decorate applies attachment, issue and mention rewriting to msg.Text in one
// pass. When two rewrites overlap, the one starting first wins; equal starts
// prefer attachments, then issues, then mentions.
func (d *Decorator) Decorate(msg Message) string {
	p := newRewritePlan(msg.Text)
	d.planAttachments(p, msg.Attachments)
	if msg.Rendered != "" {
		entities := d.Extract(msg.Rendered)
		d.planIssues(p, entities)
		d.planMentions(p, entities)
	}
	return p.apply()
}

// Decorate rewrites msg with the default configuration.
func Decorate(msg Message) string {
	return defaultDecorator.Decorate(msg)
}

// DecorateIssueLinks replaces whole-token issue ids in raw that have an issue
// anchor in rendered with [ytmissue]ID|summary|status[ytmissue] tokens.
func DecorateIssueLinks(raw, rendered string) string {
	return defaultDecorator.DecorateIssueLinks(raw, rendered)
}

// DecorateUserNames replaces @login mentions in raw that have a user anchor in
// rendered with [ytmuser]login|name[ytmuser] tokens.
func DecorateUserNames(raw, rendered string) string {
	return defaultDecorator.DecorateUserNames(raw, rendered)
}

// ReplaceImageNamesWithUrls substitutes attachment URLs for the names in !name!
// image placeholders.
func ReplaceImageNamesWithUrls(raw string, attachments []Attachment) string {
	return defaultDecorator.ReplaceImageNamesWithUrls(raw, attachments)
}

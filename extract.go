package ytmwiki

import (
	"errors"
	"io"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const (
	defaultIssueIDPattern = `[A-Za-z]+-[0-9]+`
	defaultResolvedClass  = "issue-resolved"
)

var userHrefPattern = regexp.MustCompile(`(?:^|/)user/([^/?#]+)`)

func compileIssueHref(idPattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?:^|/)issue/(` + idPattern + `)(?:[/?#]|$)`)
}

type anchor struct {
	href  string
	title string
	class string
	text  strings.Builder
}

// ExtractEntities returns the issue and user anchors of rendered in document
// order, using the default configuration.
func ExtractEntities(rendered string) []Entity {
	return defaultDecorator.Extract(rendered)
}

// Extract returns the issue and user anchors of rendered in document order.
// Anchors that are unterminated or point elsewhere are skipped.
func (d *Decorator) Extract(rendered string) []Entity {
	if !strings.Contains(rendered, "<") {
		return nil
	}
	z := html.NewTokenizer(strings.NewReader(rendered))
	var (
		entities []Entity
		cur      *anchor
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				d.logger.Debug("rendered text tokenizer stopped", zap.Error(err))
			}
			if cur != nil {
				d.logger.Debug("skipping unterminated anchor", zap.String("href", cur.href))
			}
			return entities
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" {
				continue
			}
			if cur != nil {
				entities = d.appendEntity(entities, cur)
			}
			cur = &anchor{}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				switch string(key) {
				case "href":
					cur.href = string(val)
				case "title":
					cur.title = string(val)
				case "class":
					cur.class = string(val)
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "a" && cur != nil {
				entities = d.appendEntity(entities, cur)
				cur = nil
			}
		case html.TextToken:
			if cur != nil {
				cur.text.Write(z.Text())
			}
		}
	}
}

func (d *Decorator) appendEntity(entities []Entity, a *anchor) []Entity {
	e, ok := d.entityFor(a)
	if !ok {
		if a.href != "" {
			d.logger.Debug("skipping unrecognized anchor", zap.String("href", a.href))
		}
		return entities
	}
	return append(entities, e)
}

func (d *Decorator) entityFor(a *anchor) (Entity, bool) {
	if a.href == "" {
		return Entity{}, false
	}
	text := strings.Join(strings.Fields(a.text.String()), " ")
	if m := d.issueHref.FindStringSubmatch(a.href); m != nil {
		return Entity{
			Kind:     EntityIssue,
			ID:       m[1],
			Text:     text,
			Title:    a.title,
			Resolved: hasClass(a.class, d.resolvedClass),
			Href:     a.href,
		}, true
	}
	if m := userHrefPattern.FindStringSubmatch(a.href); m != nil {
		login, err := url.PathUnescape(m[1])
		if err != nil {
			login = m[1]
		}
		if login == "" {
			return Entity{}, false
		}
		return Entity{
			Kind:  EntityUser,
			ID:    login,
			Text:  text,
			Title: a.title,
			Href:  a.href,
		}, true
	}
	return Entity{}, false
}

func hasClass(classes, name string) bool {
	if name == "" {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

package ytmwiki

import "go.uber.org/zap"

const mentionPrefix = "@"

// DecorateUserNames replaces @login mentions in raw that have a user anchor in
// rendered. Mentions without an anchor stay as they are.
func (d *Decorator) DecorateUserNames(raw, rendered string) string {
	if raw == "" || rendered == "" {
		return raw
	}
	p := newRewritePlan(raw)
	d.planMentions(p, d.Extract(rendered))
	return p.apply()
}

func (d *Decorator) planMentions(p *rewritePlan, entities []Entity) {
	seen := make(map[string]struct{})
	for _, e := range entities {
		if e.Kind != EntityUser {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		mention := mentionPrefix + e.ID
		hits := d.boundary.IndexAll(p.src, mention)
		if len(hits) == 0 {
			d.logger.Debug("user anchor has no mention", zap.String("login", e.ID))
			continue
		}
		token := FormatUser(User{Login: e.ID, Name: e.DisplayName()})
		for _, at := range hits {
			p.add(at, at+len(mention), token)
		}
	}
}

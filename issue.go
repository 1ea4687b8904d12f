package ytmwiki

import "go.uber.org/zap"

// DecorateIssueLinks replaces whole-token issue ids in raw that have an issue
// anchor in rendered. The first anchor for an id supplies its summary and
// status.
func (d *Decorator) DecorateIssueLinks(raw, rendered string) string {
	if raw == "" || rendered == "" {
		return raw
	}
	p := newRewritePlan(raw)
	d.planIssues(p, d.Extract(rendered))
	return p.apply()
}

func (d *Decorator) planIssues(p *rewritePlan, entities []Entity) {
	seen := make(map[string]struct{})
	for _, e := range entities {
		if e.Kind != EntityIssue {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		hits := d.boundary.IndexAll(p.src, e.ID)
		if len(hits) == 0 {
			d.logger.Debug("issue anchor has no standalone match", zap.String("id", e.ID))
			continue
		}
		token := FormatIssue(Issue{ID: e.ID, Summary: e.Title, Resolved: e.Resolved})
		for _, at := range hits {
			p.add(at, at+len(e.ID), token)
		}
	}
}

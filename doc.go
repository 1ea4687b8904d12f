// Package ytmwiki decorates issue tracker comments with the inline markup used
// by the mobile client.
//
// A comment arrives in two forms: the raw text the user typed and the HTML the
// server rendered from it. The rendered form is used only as a source of
// metadata. Anchors pointing at issues and users are extracted once into
// Entity records, and the raw text is then rewritten in a single pass:
//
//   - issue ids become [ytmissue]ID|summary|resolved[ytmissue]
//   - user mentions become [ytmuser]login|display name[ytmuser]
//   - image placeholders !name! get the attachment URL in place of the name
//
// Anything that cannot be matched is left untouched. None of the functions
// fail on malformed input.
//
// Example:
//
//	out := ytmwiki.DecorateIssueLinks(
//		"see YTM-14",
//		`see <a href="/issue/YTM-14" title="Crash on start">YTM-14</a>`,
//	)
//	// out == "see [ytmissue]YTM-14|Crash on start|unresolved[ytmissue]"
//
// A Decorator built with New can be configured with a different issue id
// grammar, boundary policy or logger. The decorated text can be split back into
// segments with ParseInline and previewed on a terminal with Preview.
package ytmwiki

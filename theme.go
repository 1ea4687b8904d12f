package ytmwiki

import (
	"sort"
	"strconv"
	"strings"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the preview renderer.
type Styles struct {
	Text          Style
	Issue         Style
	IssueResolved Style
	Summary       Style
	User          Style
	Image         Style
	URL           Style
}

// Theme provides named styles for previews.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiDim       = "\x1b[2m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
	ansiStrike    = "\x1b[9m"
)

func fg(color int) string {
	return "\x1b[38;5;" + strconv.Itoa(color) + "m"
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

// palette holds 256-color indexes for each semantic role.
type palette struct {
	text    int
	issue   int
	summary int
	user    int
	image   int
	url     int
}

func stylesFromPalette(p palette) Styles {
	return Styles{
		Text:          style(fg(p.text)),
		Issue:         style(ansiBold, fg(p.issue)),
		IssueResolved: style(ansiStrike, fg(p.issue)),
		Summary:       style(ansiItalic, fg(p.summary)),
		User:          style(ansiBold, fg(p.user)),
		Image:         style(ansiDim, fg(p.image)),
		URL:           style(ansiUnderline, fg(p.url)),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette{text: 252, issue: 39, summary: 245, user: 170, image: 244, url: 75})},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(palette{text: 255, issue: 141, summary: 103, user: 212, image: 61, url: 117})},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette{text: 253, issue: 110, summary: 102, user: 150, image: 60, url: 109})},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette{text: 223, issue: 214, summary: 246, user: 142, image: 243, url: 109})},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette{text: 245, issue: 33, summary: 240, user: 136, image: 240, url: 37})},
	"github-light":   theme{name: "github-light", styles: stylesFromPalette(palette{text: 235, issue: 25, summary: 242, user: 90, image: 246, url: 31})},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

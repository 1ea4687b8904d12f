package ytmwiki

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8Close = "\x1b\\"
	osc8End   = "\x1b]8;;\x1b\\"
)

// DetectOSC8Support returns true if the current environment likely supports OSC 8 hyperlinks.
func DetectOSC8Support() bool {
	if os.Getenv("YTMWIKI_OSC8") == "0" {
		return false
	}
	if os.Getenv("DOMTERM") != "" || os.Getenv("WT_SESSION") != "" {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode", "ghostty":
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}

// DetectColorSupport reports whether ANSI styling should be emitted, honouring
// NO_COLOR and dumb terminals.
func DetectColorSupport() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

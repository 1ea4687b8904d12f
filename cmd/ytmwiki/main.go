package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"pkt.systems/version"
	"pkt.systems/ytmwiki"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/ytmwiki")
}

func main() {
	var (
		configPath   string
		only         string
		format       string
		preview      bool
		themeName    string
		listThemes   bool
		widthFlag    int
		osc8Flag     string
		boring       bool
		issueBaseURL string
		summaryWidth int
		outPath      string
		verbose      bool
	)

	flags := pflag.NewFlagSet("ytmwiki", pflag.ExitOnError)
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&only, "only", "all", "Decorators to run: all|issues|users|images")
	flags.StringVarP(&format, "format", "f", "text", "Output format: text|json")
	flags.BoolVarP(&preview, "preview", "p", false, "Render a terminal preview instead of inline markup")
	flags.StringVarP(&themeName, "theme", "t", "default", "Preview theme name")
	flags.BoolVar(&listThemes, "list-themes", false, "List available preview themes")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Preview width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks in preview: auto|on|off")
	flags.BoolVarP(&boring, "boring", "b", false, "Preview without ANSI styling")
	flags.StringVar(&issueBaseURL, "issue-base-url", "", "Tracker URL used to link issues and users in preview")
	flags.IntVar(&summaryWidth, "summary-width", 0, "Truncate issue summaries in preview to this many cells")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log skipped anchors and other diagnostics")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: ytmwiki [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nInputs are files, file:// or http(s):// URLs holding JSON comments")
		fmt.Fprintln(os.Stderr, `({"text", "wikifiedText", "attachments"}) or arrays of them.`)
		fmt.Fprintln(os.Stderr, "If no input is provided, comments are read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		for _, name := range ytmwiki.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	logger, err := buildLogger(verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg := ytmwiki.DefaultConfig()
	if configPath != "" {
		cfg, err = loadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
	}
	if flags.Changed("theme") {
		cfg.Preview.Theme = themeName
	}
	if flags.Changed("width") {
		cfg.Preview.Width = widthFlag
	}
	if flags.Changed("osc8") {
		cfg.Preview.OSC8 = osc8Flag
	}
	if flags.Changed("issue-base-url") {
		cfg.Preview.IssueBaseURL = issueBaseURL
	}
	if flags.Changed("summary-width") {
		cfg.Preview.SummaryWidth = summaryWidth
	}

	decorator, err := ytmwiki.New(append(cfg.Options(), ytmwiki.WithLogger(logger))...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	decorateMode, err := parseMode(only)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --only %q: %v\n", only, err)
		os.Exit(2)
	}
	switch format {
	case "text", "json":
	default:
		fmt.Fprintf(os.Stderr, "invalid --format %q: expected text|json\n", format)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	inputs, err := openInputs(ctx, flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = inputs.Close() }()

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	rc := runConfig{mode: decorateMode, format: format}
	if preview {
		theme, ok := ytmwiki.ThemeByName(cfg.Preview.Theme)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown theme %q\n", cfg.Preview.Theme)
			os.Exit(2)
		}
		if boring || !ytmwiki.DetectColorSupport() {
			theme = ytmwiki.NewTheme("boring", ytmwiki.Styles{})
		}
		osc8, err := resolveOSC8(cfg.Preview.OSC8, writer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid osc8 mode %q: %v\n", cfg.Preview.OSC8, err)
			os.Exit(2)
		}
		rc.preview = true
		rc.width = resolveWidth(cfg.Preview.Width)
		rc.theme = theme
		rc.previewOptions = []ytmwiki.PreviewOption{
			ytmwiki.WithOSC8(osc8),
			ytmwiki.WithIssueBaseURL(cfg.Preview.IssueBaseURL),
			ytmwiki.WithSummaryWidth(cfg.Preview.SummaryWidth),
		}
	}

	if err := process(inputs, writer, decorator, rc); err != nil {
		fmt.Fprintf(os.Stderr, "process: %v\n", err)
		os.Exit(1)
	}
}

type mode uint8

const (
	modeAll mode = iota
	modeIssues
	modeUsers
	modeImages
)

func parseMode(s string) (mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return modeAll, nil
	case "issues", "issue":
		return modeIssues, nil
	case "users", "user", "mentions":
		return modeUsers, nil
	case "images", "image", "attachments":
		return modeImages, nil
	default:
		return modeAll, fmt.Errorf("expected all|issues|users|images")
	}
}

type runConfig struct {
	mode           mode
	format         string
	preview        bool
	width          int
	theme          ytmwiki.Theme
	previewOptions []ytmwiki.PreviewOption
}

func decorate(d *ytmwiki.Decorator, msg ytmwiki.Message, m mode) string {
	switch m {
	case modeIssues:
		return d.DecorateIssueLinks(msg.Text, msg.Rendered)
	case modeUsers:
		return d.DecorateUserNames(msg.Text, msg.Rendered)
	case modeImages:
		return d.ReplaceImageNamesWithUrls(msg.Text, msg.Attachments)
	default:
		return d.Decorate(msg)
	}
}

type decoratedMessage struct {
	Text string `json:"text"`
}

// messageSource yields decoded comments until io.EOF.
type messageSource interface {
	Next() (ytmwiki.Message, error)
}

func process(src messageSource, w io.Writer, d *ytmwiki.Decorator, rc runConfig) error {
	out := bufio.NewWriter(w)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	for n := 1; ; n++ {
		msg, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		text := decorate(d, msg, rc.mode)
		switch {
		case rc.preview:
			if n > 1 {
				_ = out.WriteByte('\n')
			}
			if err := ytmwiki.Preview(ytmwiki.PreviewRequest{
				Writer:  out,
				Text:    text,
				Width:   rc.width,
				Theme:   rc.theme,
				Options: rc.previewOptions,
			}); err != nil {
				return fmt.Errorf("message %d: %w", n, err)
			}
		case rc.format == "json":
			if err := enc.Encode(decoratedMessage{Text: text}); err != nil {
				return fmt.Errorf("message %d: %w", n, err)
			}
		default:
			_, _ = out.WriteString(text)
			_ = out.WriteByte('\n')
		}
	}
	return out.Flush()
}

func loadConfigFile(path string) (ytmwiki.Config, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return ytmwiki.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return ytmwiki.LoadConfig(f)
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return isTerminal(w) && ytmwiki.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/ytmwiki"
)

type inputSource struct {
	name string
	open func() (io.Reader, io.Closer, error)
}

// commentStream decodes comments from its sources one after another, opening
// each lazily. Errors name the source and the message position within it.
type commentStream struct {
	sources []inputSource
	idx     int
	name    string
	n       int
	dec     *ytmwiki.MessageDecoder
	closer  io.Closer
	closed  bool
}

func newCommentStream(sources ...inputSource) *commentStream {
	return &commentStream{sources: sources}
}

// Next returns the next comment across all sources, or io.EOF after the last.
func (c *commentStream) Next() (ytmwiki.Message, error) {
	for {
		if c.closed {
			return ytmwiki.Message{}, io.EOF
		}
		if c.dec == nil {
			if c.idx >= len(c.sources) {
				c.closed = true
				return ytmwiki.Message{}, io.EOF
			}
			src := c.sources[c.idx]
			c.idx++
			reader, closer, err := src.open()
			if err != nil {
				return ytmwiki.Message{}, fmt.Errorf("%s: %w", src.name, err)
			}
			c.name = src.name
			c.n = 0
			c.dec = ytmwiki.NewMessageDecoder(reader)
			c.closer = closer
		}
		msg, err := c.dec.Next()
		if err == io.EOF {
			c.closeCurrent()
			continue
		}
		c.n++
		if err != nil {
			return ytmwiki.Message{}, fmt.Errorf("%s: message %d: %w", c.name, c.n, err)
		}
		return msg, nil
	}
}

func (c *commentStream) closeCurrent() error {
	c.dec = nil
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	return err
}

func (c *commentStream) Close() error {
	c.closed = true
	return c.closeCurrent()
}

func stdinSource() inputSource {
	return inputSource{name: "stdin", open: func() (io.Reader, io.Closer, error) {
		return os.Stdin, nil, nil
	}}
}

func openInputs(ctx context.Context, args []string) (*commentStream, error) {
	if len(args) == 0 {
		return newCommentStream(stdinSource()), nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(ctx, raw)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return newCommentStream(sources...), nil
}

func makeInputSource(ctx context.Context, raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return stdinSource(), nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
				return openURL(ctx, raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(ctx context.Context, raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

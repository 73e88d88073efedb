package source

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/bianoble/ff-fonts/internal/bundle"
)

// Google Fonts picks the font format from the User-Agent header.
var userAgents = map[string]string{
	"woff":  "Mozilla/5.0 (Windows NT 6.1; Trident/7.0; rv:11.0) like Gecko",
	"woff2": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"ttf":   "Mozilla/5.0 (Linux; U; Android 2.2; en-us; Nexus One Build/FRF91) AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1",
}

var (
	commentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	remoteURL = regexp.MustCompile(`url\((https?://[^)\s]+)\)`)
)

// GoogleFetcher downloads a Google Fonts stylesheet, minifies it and
// inlines every referenced font file as a base64 data URI.
type GoogleFetcher struct {
	Client  HTTPClient
	MaxSize int64         // max response size in bytes (0 = no limit)
	Timeout time.Duration // whole-fetch timeout (0 = no extra timeout beyond context)
	TempDir string        // directory for the result file ("" = os.TempDir())
}

func (g *GoogleFetcher) Fetch(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error) {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	format := opts.Format
	if format == "" {
		format = "woff"
	}
	agent := opts.UserAgent
	if agent == "" {
		var ok bool
		agent, ok = userAgents[format]
		if !ok {
			return nil, &SourceError{
				Source:    "google",
				Operation: "fetch",
				Err:       fmt.Errorf("unsupported format '%s'", format),
				Hint:      "use one of woff, woff2, ttf or set user_agent",
			}
		}
	}

	// Family names may contain spaces; Google Fonts reads '+' as a space.
	body, err := g.get(ctx, strings.ReplaceAll(url, " ", "+"), agent)
	if err != nil {
		return nil, err
	}

	css, err := g.inline(ctx, Minify(string(body)), format, agent)
	if err != nil {
		return nil, err
	}

	rec := bundle.Record{MD5: bundle.Checksum(css), Value: css}
	tmpPath, err := g.writeTemp(rec)
	if err != nil {
		return nil, &SourceError{Source: "google", Operation: "fetch", Err: err}
	}

	return &FetchResult{TempFile: tmpPath, MD5: rec.MD5, Value: rec.Value}, nil
}

// inline replaces every remote url(...) with the fetched bytes as a data URI.
func (g *GoogleFetcher) inline(ctx context.Context, css, format, agent string) (string, error) {
	matches := remoteURL.FindAllStringSubmatchIndex(css, -1)
	if len(matches) == 0 {
		return css, nil
	}

	encoded := make(map[string]string)
	var b strings.Builder
	last := 0
	for _, m := range matches {
		fontURL := css[m[2]:m[3]]
		data, ok := encoded[fontURL]
		if !ok {
			content, err := g.get(ctx, fontURL, agent)
			if err != nil {
				return "", err
			}
			data = base64.StdEncoding.EncodeToString(content)
			encoded[fontURL] = data
		}

		b.WriteString(css[last:m[0]])
		b.WriteString("url(data:application/font-")
		b.WriteString(format)
		b.WriteString(";base64,")
		b.WriteString(data)
		b.WriteString(")")
		last = m[1]
	}
	b.WriteString(css[last:])

	return b.String(), nil
}

func (g *GoogleFetcher) get(ctx context.Context, url, agent string) ([]byte, error) {
	client := g.Client
	if client == nil {
		client = DefaultHTTPClient{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SourceError{Source: "google", Operation: "fetch", Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", agent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &SourceError{Source: "google", Operation: "fetch", Err: fmt.Errorf("fetching %s: %w", url, err), Hint: "check network connectivity and URL"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SourceError{
			Source:    "google",
			Operation: "fetch",
			Err:       fmt.Errorf("HTTP %d from %s", resp.StatusCode, url),
			Hint:      "check the family names and formats in your config",
		}
	}

	var reader io.Reader = resp.Body
	if g.MaxSize > 0 {
		reader = io.LimitReader(resp.Body, g.MaxSize+1)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, &SourceError{Source: "google", Operation: "fetch", Err: fmt.Errorf("reading response: %w", err)}
	}

	if g.MaxSize > 0 && int64(len(content)) > g.MaxSize {
		return nil, &SourceError{
			Source:    "google",
			Operation: "fetch",
			Err:       fmt.Errorf("response from %s exceeds max size %d bytes", url, g.MaxSize),
		}
	}

	return content, nil
}

func (g *GoogleFetcher) writeTemp(rec bundle.Record) (string, error) {
	data, err := bundle.Marshal(rec)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(g.TempDir, "ff-fonts-*.json")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return path, nil
}

// Minify strips comments and insignificant whitespace from a stylesheet
// and rewrites double-quoted strings with single quotes, so rules read
// @font-face{font-family:'Name';...}. A ';' right before '}' is dropped.
func Minify(css string) string {
	css = commentRe.ReplaceAllString(css, "")

	out := make([]rune, 0, len(css))
	var quote rune
	space := false

	for _, r := range css {
		if quote != 0 {
			if r == quote {
				out = append(out, '\'')
				quote = 0
				continue
			}
			out = append(out, r)
			continue
		}

		switch {
		case unicode.IsSpace(r):
			space = true
			continue
		case strings.ContainsRune("{};:,)", r):
			if r == '}' && len(out) > 0 && out[len(out)-1] == ';' {
				out = out[:len(out)-1]
			}
			out = append(out, r)
		case r == '"' || r == '\'':
			if space && needsSpace(out) {
				out = append(out, ' ')
			}
			quote = r
			out = append(out, '\'')
		default:
			if space && needsSpace(out) {
				out = append(out, ' ')
			}
			out = append(out, r)
		}
		space = false
	}

	return string(out)
}

func needsSpace(out []rune) bool {
	if len(out) == 0 {
		return false
	}
	return !strings.ContainsRune("{};:,(", out[len(out)-1])
}

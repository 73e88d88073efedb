package fffonts

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/bianoble/ff-fonts/internal/source"
)

type stubFetcher struct {
	value string
	err   error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string, opts source.FetchOptions) (*source.FetchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &source.FetchResult{Value: s.value}, nil
}

// writeConfig writes a config with one Google and one local font and
// returns its path.
func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "fonts"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fonts", "input.woff"), []byte("ciao\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "ff-fonts.yaml")
	content := `google:
  - name: Lato Test
    formats: ["300", "300i"]
    display: swap
  - name: Rubik
local:
  - name: Name Abc
    file: fonts/input.woff
    weight: bold
    style: italic
    display: block
output_dir: dist
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return cfgPath
}

func newTestClient(t *testing.T, fetcher source.Fetcher) (*Client, string) {
	t.Helper()
	dir := t.TempDir()
	client, err := New(Options{
		ConfigPath: writeConfig(t, dir),
		Fetcher:    fetcher,
		Logger:     log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, dir
}

func TestClientURL(t *testing.T) {
	client, _ := newTestClient(t, &stubFetcher{})
	want := "https://fonts.googleapis.com/css?family=Lato Test:300,300i|Rubik"
	if got := client.URL(); got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}

func TestClientLocalCSS(t *testing.T) {
	client, _ := newTestClient(t, &stubFetcher{})
	want := "@font-face{font-family:'Name Abc';font-display:block;font-weight:bold;font-style:italic;src:url(data:application/font-woff;base64,Y2lhbwo=) format('woff')}"
	if got := client.LocalCSS(); got != want {
		t.Errorf("LocalCSS =\n%s\nwant\n%s", got, want)
	}
}

func TestClientBuildAndVerify(t *testing.T) {
	client, dir := newTestClient(t, &stubFetcher{value: "@font-face{font-family:'Rubik';src:url(x) format('woff')}"})

	result, err := client.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if filepath.Dir(result.Path) != filepath.Join(dir, "dist") {
		t.Errorf("path = %s", result.Path)
	}

	v := client.Verify([]string{result.Path})
	if len(v.Valid) != 1 {
		t.Errorf("verify = %+v", v)
	}
}

func TestClientBuildFetchError(t *testing.T) {
	client, _ := newTestClient(t, &stubFetcher{err: errors.New("offline")})

	_, err := client.Build(context.Background(), BuildOptions{})
	if !errors.Is(err, ErrRemoteFetch) {
		t.Errorf("err = %v, want ErrRemoteFetch", err)
	}
}

func TestNewOutputDirOverride(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "elsewhere")
	client, err := New(Options{ConfigPath: writeConfig(t, dir), OutputDir: out, Fetcher: &stubFetcher{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.Config().OutputDir != out {
		t.Errorf("output dir = %s", client.Config().OutputDir)
	}
}

func TestNewMissingConfig(t *testing.T) {
	_, err := New(Options{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

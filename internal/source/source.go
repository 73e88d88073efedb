package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
)

// Fetcher retrieves the @font-face rules served at a remote stylesheet URL.
// A call yields either a result or an error, never both.
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error)
}

// FetchOptions configures a remote fetch.
type FetchOptions struct {
	Format    string // "woff", "woff2" or "ttf"
	UserAgent string // overrides the agent derived from Format
}

// FetchResult holds the outcome of a successful remote fetch.
type FetchResult struct {
	// TempFile is a JSON copy of the result written by the fetcher.
	// The caller owns it and must remove it.
	TempFile string
	MD5      string
	Value    string
}

// SourceError represents an error associated with a specific source operation.
type SourceError struct {
	Source    string
	Operation string
	Err       error
	Hint      string
}

func (e *SourceError) Error() string {
	msg := fmt.Sprintf("%s: %s failed: %s", e.Source, e.Operation, e.Err)
	if e.Hint != "" {
		msg += " — " + e.Hint
	}
	return msg
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// FS abstracts the filesystem operations used while building a bundle.
type FS interface {
	ReadFile(path string) ([]byte, error)
	Remove(path string) error
}

// HTTPClient abstracts HTTP operations for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OSFS implements FS using the real operating system filesystem.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (OSFS) Remove(path string) error            { return os.Remove(path) }

// DefaultHTTPClient returns an HTTPClient using http.DefaultClient.
type DefaultHTTPClient struct{}

func (DefaultHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return http.DefaultClient.Do(req)
}

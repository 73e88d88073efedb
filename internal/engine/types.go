package engine

import "errors"

// ErrRemoteFetch wraps any failure of the remote stylesheet fetch.
var ErrRemoteFetch = errors.New("remote fetch failed")

// BuildResult holds the outcome of a build.
type BuildResult struct {
	// Checksum is the MD5 of the merged stylesheet before tagging.
	Checksum string
	// Path is where the record was written (or would be, on a dry run).
	Path string
	// Written is false on a dry run.
	Written bool

	URL         string
	RemoteBytes int
	LocalBytes  int
}

// FileError represents an error associated with a specific file.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// VerifyResult holds the outcome of a verify operation.
type VerifyResult struct {
	Valid   []string
	Invalid []FileError
}

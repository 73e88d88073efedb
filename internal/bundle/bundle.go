// Package bundle defines the persisted ff-fonts record and how it is
// named, written, read back and verified.
package bundle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bianoble/ff-fonts/internal/transform"
)

// ErrChecksumMismatch is returned by Verify when a record does not
// authenticate its own content.
var ErrChecksumMismatch = errors.New("checksum mismatch")

const (
	filePrefix = "ff-fonts"
	fileExt    = "json"
)

// Record is the document written once per build.
// MD5 is computed over the untagged stylesheet; Value holds the tagged one.
type Record struct {
	MD5   string `json:"md5"`
	Value string `json:"value"`
}

// FileName returns the output file name for a checksum.
func FileName(checksum string) string {
	return strings.Join([]string{filePrefix, checksum, fileExt}, ".")
}

// Marshal encodes a record as compact JSON without HTML escaping, so
// CSS text such as '>' is stored as written.
func Marshal(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Save writes rec into dir atomically using a temp file and rename.
// The directory is created if needed. It returns the written path.
func Save(dir string, rec Record) (string, error) {
	data, err := Marshal(rec)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(rec.MD5))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("writing temp record %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("renaming temp record to %s: %w", path, err)
	}

	return path, nil
}

// Load reads a record file.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record %s: %w", path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing record %s: %w", path, err)
	}
	return &rec, nil
}

// Verify checks that rec.MD5 is the checksum of the untagged value and,
// when path is non-empty, that the file name carries the same checksum.
func Verify(path string, rec *Record) error {
	if path != "" {
		if base := filepath.Base(path); base != FileName(rec.MD5) {
			return fmt.Errorf("%w: file name %s does not match md5 %s", ErrChecksumMismatch, base, rec.MD5)
		}
	}

	if actual := Checksum(transform.Untag(rec.Value)); actual != rec.MD5 {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, rec.MD5, actual)
	}
	return nil
}

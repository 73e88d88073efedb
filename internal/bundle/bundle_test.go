package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bianoble/ff-fonts/internal/transform"
)

func TestFileName(t *testing.T) {
	got := FileName("6e6bc4e49dd477ebc98ef4046c067b5f")
	if got != "ff-fonts.6e6bc4e49dd477ebc98ef4046c067b5f.json" {
		t.Errorf("FileName = %q", got)
	}
}

func TestMarshalNoHTMLEscape(t *testing.T) {
	data, err := Marshal(Record{MD5: "abc", Value: "a>b&c<d"})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"md5":"abc","value":"a>b&c<d"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	raw := "@font-face{font-family:'Lato';src:url(x) format('woff')}"
	rec := Record{MD5: Checksum(raw), Value: transform.Tag(raw)}

	path, err := Save(dir, rec)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != FileName(rec.MD5) {
		t.Errorf("path = %s", path)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should not remain after Save")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != rec {
		t.Errorf("loaded = %+v, want %+v", *loaded, rec)
	}

	if err := Verify(path, loaded); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ff-fonts.x.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "parsing record") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestVerifyTamperedValue(t *testing.T) {
	raw := "@font-face{font-family:'Lato';}"
	rec := &Record{MD5: Checksum(raw), Value: transform.Tag(raw) + "x"}

	err := Verify("", rec)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("err = %v, want ErrChecksumMismatch", err)
	}
}

func TestVerifyHashesUntaggedContent(t *testing.T) {
	raw := "@font-face{font-family:'Lato';}"
	// A record hashed after tagging does not authenticate.
	tagged := transform.Tag(raw)
	rec := &Record{MD5: Checksum(tagged), Value: tagged}

	if err := Verify("", rec); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("err = %v, want ErrChecksumMismatch", err)
	}
}

func TestVerifyFileNameMismatch(t *testing.T) {
	raw := "x"
	rec := &Record{MD5: Checksum(raw), Value: raw}

	err := Verify("/out/ff-fonts.0000.json", rec)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("err = %v, want ErrChecksumMismatch", err)
	}
	if !strings.Contains(err.Error(), "file name") {
		t.Errorf("unexpected error: %v", err)
	}
}

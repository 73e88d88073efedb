package source

import "encoding/base64"

// LocalEncoder reads font files and encodes them as base64.
type LocalEncoder struct {
	FS FS
}

// Encode returns the base64 encoding of the file at dir+file.
// The two parts are concatenated as given, so dir normally ends with a
// separator. Any read failure yields the empty string.
func (l *LocalEncoder) Encode(file, dir string) string {
	fs := l.FS
	if fs == nil {
		fs = OSFS{}
	}

	data, err := fs.ReadFile(dir + file)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

package bundle

import (
	"crypto/md5"
	"encoding/hex"
)

// Checksum returns the lowercase hex MD5 digest of s.
func Checksum(s string) string {
	h := md5.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}

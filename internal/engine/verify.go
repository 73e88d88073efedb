package engine

import "github.com/bianoble/ff-fonts/internal/bundle"

// VerifyEngine checks persisted records against their own checksum.
type VerifyEngine struct{}

// Verify loads each record file and checks that its name and md5 match
// the untagged stylesheet it holds.
func (e *VerifyEngine) Verify(paths []string) *VerifyResult {
	result := &VerifyResult{}

	for _, p := range paths {
		rec, err := bundle.Load(p)
		if err == nil {
			err = bundle.Verify(p, rec)
		}
		if err != nil {
			result.Invalid = append(result.Invalid, FileError{Path: p, Err: err})
			continue
		}
		result.Valid = append(result.Valid, p)
	}

	return result
}

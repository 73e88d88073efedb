package fffonts

import "github.com/bianoble/ff-fonts/internal/engine"

// Type aliases re-export engine result types as the public API.

type BuildResult = engine.BuildResult
type VerifyResult = engine.VerifyResult
type FileError = engine.FileError

// ErrRemoteFetch is wrapped by Build when the Google Fonts fetch fails.
var ErrRemoteFetch = engine.ErrRemoteFetch

package fontface

import (
	"strings"

	"github.com/bianoble/ff-fonts/internal/config"
)

// Family returns the query segment for one font: the name, followed by
// ':' and the comma-joined formats when there are any.
func Family(font config.GoogleFont) string {
	formats := strings.Join(font.Formats, ",")
	if formats == "" {
		return font.Name
	}
	return font.Name + ":" + formats
}

// QueryURL appends the '|'-joined family segments to base.
// Names are not escaped.
func QueryURL(fonts []config.GoogleFont, base string) string {
	segments := make([]string, len(fonts))
	for i, font := range fonts {
		segments[i] = Family(font)
	}
	return base + strings.Join(segments, "|")
}

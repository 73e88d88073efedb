// Package fontface builds @font-face rules for local fonts and the
// Google Fonts query URL for remote ones.
package fontface

import (
	"strings"

	"github.com/bianoble/ff-fonts/internal/config"
)

// Encoder turns a local font file into base64 text. It returns the
// empty string when the file cannot be read.
type Encoder interface {
	Encode(file, dir string) string
}

// Face holds everything needed to emit one @font-face rule.
type Face struct {
	Name    string
	Display string
	Weight  string
	Style   string
	Format  string
	Data    string // base64 font bytes
}

// Rule renders f as a single @font-face rule. Optional declarations are
// emitted in the order display, weight, style. It returns "" when the
// name, format or data is empty.
func Rule(f Face) string {
	if f.Name == "" || f.Format == "" || f.Data == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("@font-face{font-family:'")
	b.WriteString(f.Name)
	b.WriteString("';")
	if f.Display != "" {
		b.WriteString("font-display:" + f.Display + ";")
	}
	if f.Weight != "" {
		b.WriteString("font-weight:" + f.Weight + ";")
	}
	if f.Style != "" {
		b.WriteString("font-style:" + f.Style + ";")
	}
	b.WriteString("src:url(data:application/font-")
	b.WriteString(f.Format)
	b.WriteString(";base64,")
	b.WriteString(f.Data)
	b.WriteString(") format('")
	b.WriteString(f.Format)
	b.WriteString("')}")

	return b.String()
}

// Format returns the text after the last '.' in file, or "" if there
// is no dot.
func Format(file string) string {
	dot := strings.LastIndex(file, ".")
	if dot < 0 {
		return ""
	}
	return file[dot+1:]
}

// Local encodes one configured font and renders its rule.
func Local(font config.LocalFont, dir string, enc Encoder) string {
	return Rule(Face{
		Name:    font.Name,
		Display: font.Display,
		Weight:  font.Weight,
		Style:   font.Style,
		Format:  Format(font.File),
		Data:    enc.Encode(font.File, dir),
	})
}

// Locals renders every font in order and concatenates the rules with no
// separator. Fonts that render to "" leave no trace.
func Locals(fonts []config.LocalFont, dir string, enc Encoder) string {
	var b strings.Builder
	for _, font := range fonts {
		b.WriteString(Local(font, dir, enc))
	}
	return b.String()
}

package transform

import (
	"strings"

	"github.com/bianoble/ff-fonts/internal/config"
)

// FamilyDecl opens every @font-face rule this tool reads or writes.
const FamilyDecl = "@font-face{font-family:'"

// AddDisplay inserts font-display:<display>; right after the font-family
// declaration of every rule whose family is named by a font with a
// display value. Fonts without display are skipped.
//
// The search key includes the closing quote and semicolon, so "Lato"
// never matches a rule for "LatoSans".
func AddDisplay(css string, fonts []config.GoogleFont) string {
	for _, f := range fonts {
		if f.Display == "" {
			continue
		}
		search := FamilyDecl + f.Name + "';"
		css = strings.ReplaceAll(css, search, search+"font-display:"+f.Display+";")
	}
	return css
}

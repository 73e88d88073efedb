package transform

import (
	"testing"

	"github.com/bianoble/ff-fonts/internal/config"
)

func TestAddDisplay(t *testing.T) {
	const css = "@font-face{font-family:'Lato';font-weight:300;}" +
		"@font-face{font-family:'LatoSans';font-weight:400;}" +
		"@font-face{font-family:'Rubik';font-weight:400;}" +
		"@font-face{font-family:'Lato';font-weight:700;}"

	tests := []struct {
		name  string
		fonts []config.GoogleFont
		want  string
	}{
		{
			name:  "no fonts",
			fonts: nil,
			want:  css,
		},
		{
			name:  "font without display",
			fonts: []config.GoogleFont{{Name: "Lato"}},
			want:  css,
		},
		{
			name:  "every matching rule patched",
			fonts: []config.GoogleFont{{Name: "Lato", Display: "swap"}},
			want: "@font-face{font-family:'Lato';font-display:swap;font-weight:300;}" +
				"@font-face{font-family:'LatoSans';font-weight:400;}" +
				"@font-face{font-family:'Rubik';font-weight:400;}" +
				"@font-face{font-family:'Lato';font-display:swap;font-weight:700;}",
		},
		{
			name: "several families",
			fonts: []config.GoogleFont{
				{Name: "Rubik", Display: "block"},
				{Name: "LatoSans", Display: "fallback"},
				{Name: "Missing", Display: "swap"},
			},
			want: "@font-face{font-family:'Lato';font-weight:300;}" +
				"@font-face{font-family:'LatoSans';font-display:fallback;font-weight:400;}" +
				"@font-face{font-family:'Rubik';font-display:block;font-weight:400;}" +
				"@font-face{font-family:'Lato';font-weight:700;}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDisplay(css, tt.fonts); got != tt.want {
				t.Errorf("AddDisplay =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestAddDisplayLiteralName(t *testing.T) {
	// Regex metacharacters in family names are matched literally.
	css := "@font-face{font-family:'A+B (Pro)';src:x}"
	got := AddDisplay(css, []config.GoogleFont{{Name: "A+B (Pro)", Display: "optional"}})
	want := "@font-face{font-family:'A+B (Pro)';font-display:optional;src:x}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

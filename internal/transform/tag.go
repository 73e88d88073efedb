package transform

import "strings"

// Marker is prefixed to every font-family value by Tag.
const Marker = "FF "

// Tag prefixes every @font-face family name with Marker.
func Tag(css string) string {
	return strings.ReplaceAll(css, FamilyDecl, FamilyDecl+Marker)
}

// Untag reverses Tag, removing exactly one Marker per rule.
func Untag(css string) string {
	return strings.ReplaceAll(css, FamilyDecl+Marker, FamilyDecl)
}

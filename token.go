package elementify

import "strings"

// SpaceCategory marks a token that stands for a literal space rather than
// a letter sequence.
const SpaceCategory = "space"

// Token is a single dictionary entry. Symbol is the match key and is
// compared case-insensitively; the remaining fields are display metadata.
type Token struct {
	Number   int    `json:"atomicNumber" msgpack:"atomicNumber" yaml:"atomicNumber"`
	Symbol   string `json:"symbol" msgpack:"symbol" yaml:"symbol"`
	Name     string `json:"name" msgpack:"name" yaml:"name"`
	Category string `json:"group" msgpack:"group" yaml:"group"`
}

// IsSpace reports whether t represents a literal space.
func (t Token) IsSpace() bool {
	return t.Category == SpaceCategory
}

// HasNumber reports whether t carries a display number. A zero number means
// "no number".
func (t Token) HasNumber() bool {
	return t.Number != 0
}

// CategoryClass returns the category as a lowercase, hyphenated identifier,
// e.g. "Noble Gas" becomes "noble-gas".
func (t Token) CategoryClass() string {
	return strings.ToLower(strings.ReplaceAll(t.Category, " ", "-"))
}

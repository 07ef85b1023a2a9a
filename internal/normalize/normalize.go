// Package normalize turns raw prompt input into the form the segmenter
// expects: lowercase English letters separated by single spaces.
package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrEmpty            = errors.New("empty string detected")
	ErrInvalidCharacter = errors.New("string should only consist of English letters and spaces")
)

var alpha = regexp.MustCompile(`^[a-z ]+$`)

// Input trims raw, collapses every run of whitespace to one space and
// lowercases it. It fails when nothing is left or when a character other
// than an English letter or a space remains.
func Input(raw string) (string, error) {
	s := strings.Join(strings.Fields(raw), " ")
	s = cases.Lower(language.Und).String(s)

	if s == "" {
		return "", ErrEmpty
	}
	if !alpha.MatchString(s) {
		return "", fmt.Errorf("%w: found %q", ErrInvalidCharacter, firstInvalid(s))
	}
	return s, nil
}

// Valid reports whether s is already normalized.
func Valid(s string) bool {
	return alpha.MatchString(s) && s == strings.Join(strings.Fields(s), " ")
}

func firstInvalid(s string) rune {
	for _, r := range s {
		if r != ' ' && (r < 'a' || r > 'z') {
			return r
		}
	}
	return 0
}

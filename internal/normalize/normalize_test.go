package normalize

import (
	"errors"
	"testing"
)

func TestInput(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		err      error
	}{
		{name: "already normalized", raw: "bacon", expected: "bacon"},
		{name: "uppercase", raw: "BaCoN", expected: "bacon"},
		{name: "surrounding whitespace", raw: "  bacon \t", expected: "bacon"},
		{name: "inner runs collapse", raw: "happy    birthday", expected: "happy birthday"},
		{name: "tabs and newlines collapse", raw: "happy\t\nbirthday", expected: "happy birthday"},
		{name: "empty", raw: "", err: ErrEmpty},
		{name: "only whitespace", raw: "   ", err: ErrEmpty},
		{name: "digits", raw: "b4con", err: ErrInvalidCharacter},
		{name: "punctuation", raw: "x-ray", err: ErrInvalidCharacter},
		{name: "accented letter", raw: "café", err: ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Input(tt.raw)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Input(%q) error = %v, want %v", tt.raw, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Input(%q) error = %v", tt.raw, err)
			}
			if result != tt.expected {
				t.Errorf("Input(%q) = %q, want %q", tt.raw, result, tt.expected)
			}
		})
	}
}

func TestInput_ReportsOffendingCharacter(t *testing.T) {
	_, err := Input("x-ray")
	if err == nil || err.Error() != `string should only consist of English letters and spaces: found '-'` {
		t.Errorf("Input() error = %v", err)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"bacon", true},
		{"happy birthday", true},
		{"Bacon", false},
		{"happy  birthday", false},
		{" bacon", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.input); got != tt.expected {
			t.Errorf("Valid(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

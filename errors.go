package elementify

import "fmt"

// InvalidSymbolError is returned when a dictionary contains a token whose
// symbol is empty. Such a token would match at every position without
// consuming input.
type InvalidSymbolError struct {
	Index int
	Token Token
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid dictionary: token %d (%q, number %d) has an empty symbol",
		e.Index, e.Token.Name, e.Token.Number)
}

// LimitExceededError is returned when a Segmenter configured with a partial
// limit creates more partial segmentations than allowed.
type LimitExceededError struct {
	Limit    int
	Position int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("segmentation limit exceeded: more than %d partial segmentations at position %d",
		e.Limit, e.Position)
}

package elementify

import "strings"

// Segmentation is one way of covering a word with tokens, in reading order.
type Segmentation []Token

// Symbols returns the symbol of every token in order.
func (s Segmentation) Symbols() []string {
	symbols := make([]string, len(s))
	for i, t := range s {
		symbols[i] = t.Symbol
	}
	return symbols
}

// Text returns the concatenated symbols, which equal the segmented word up to
// letter case.
func (s Segmentation) Text() string {
	var sb strings.Builder
	for _, t := range s {
		sb.WriteString(t.Symbol)
	}
	return sb.String()
}

// segment is a node of a persistent list. Partial segmentations that share a
// prefix share the nodes of that prefix, so extending one never copies it.
// A nil *segment is the empty segmentation.
type segment struct {
	token  int // index into the dictionary
	prev   *segment
	length int
}

func newSegment(token int, prev *segment) *segment {
	length := 1
	if prev != nil {
		length = prev.length + 1
	}
	return &segment{
		token:  token,
		prev:   prev,
		length: length,
	}
}

func (s *segment) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// materialize copies the list into a Segmentation, resolving token indexes
// against tokens.
func (s *segment) materialize(tokens []Token) Segmentation {
	out := make(Segmentation, s.Len())
	for node := s; node != nil; node = node.prev {
		out[node.length-1] = tokens[node.token]
	}
	return out
}

// Package elementify enumerates every way a word can be spelled as a sequence
// of short dictionary symbols, such as the symbols of the chemical elements.
package elementify

import "strings"

type Config struct {
	// MaxPartials bounds the number of partial segmentations a single call may
	// create. Zero means unlimited.
	MaxPartials int
}

func DefaultConfig() *Config {
	return &Config{
		MaxPartials: 0,
	}
}

type Option func(*Config)

func WithMaxPartials(limit int) Option {
	return func(c *Config) {
		c.MaxPartials = limit
	}
}

// Segmenter splits words into dictionary tokens. It holds no mutable state
// and is safe for concurrent use.
type Segmenter struct {
	dict   *Dictionary
	config *Config
}

func NewSegmenter(dict *Dictionary, opts ...Option) *Segmenter {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	return &Segmenter{
		dict:   dict,
		config: config,
	}
}

// Segment validates tokens and returns every segmentation of word using them.
// It fails only when the token list itself is malformed.
func Segment(word string, tokens []Token) ([]Segmentation, error) {
	dict, err := NewDictionary(tokens)
	if err != nil {
		return nil, err
	}
	return dict.Segment(word), nil
}

func (s *Segmenter) Dictionary() *Dictionary {
	return s.dict
}

// Segment returns every segmentation of word, in enumeration order. The
// result is never nil. An error is returned only when the partial limit is
// exceeded.
func (s *Segmenter) Segment(word string) ([]Segmentation, error) {
	var stats Stats
	return s.segment(word, &stats)
}

// SegmentWithStats is Segment, additionally reporting what the run did.
func (s *Segmenter) SegmentWithStats(word string) ([]Segmentation, Stats, error) {
	var stats Stats
	segs, err := s.segment(word, &stats)
	return segs, stats, err
}

// Elementify segments word and wraps the segmentations in a Result.
func (s *Segmenter) Elementify(word string) (Result, error) {
	segs, err := s.Segment(word)
	if err != nil {
		return Result{}, err
	}
	return NewResult(word, segs), nil
}

// segment fills table[i] with every segmentation of word[:i], visiting
// positions in increasing order so table[i] is complete before anything is
// extended from it. For each position, tokens are tried in dictionary order
// and each matching token extends the entries of table[i] in their order.
func (s *Segmenter) segment(word string, stats *Stats) ([]Segmentation, error) {
	n := len(word)
	table := make([][]*segment, n+1)
	table[0] = []*segment{nil}

	stats.Positions = n + 1
	partials := 0

	for i := 0; i <= n; i++ {
		if len(table[i]) == 0 {
			stats.PrunedPositions++
			continue
		}
		stats.VisitedPositions++

		for t, symbol := range s.dict.symbols {
			stats.Probes++
			end := i + len(symbol)
			if end > n || !strings.EqualFold(word[i:end], symbol) {
				continue
			}
			stats.Matches++

			for _, prev := range table[i] {
				table[end] = append(table[end], newSegment(t, prev))
			}
			partials += len(table[i])

			if limit := s.config.MaxPartials; limit > 0 && partials > limit {
				stats.Partials = partials
				return nil, &LimitExceededError{Limit: limit, Position: i}
			}
		}
	}

	out := make([]Segmentation, len(table[n]))
	for i, seg := range table[n] {
		out[i] = seg.materialize(s.dict.tokens)
	}

	stats.Partials = partials
	stats.Solutions = len(out)
	stats.MemoryEstimate = estimateMemory(partials, out)
	return out, nil
}

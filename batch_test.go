package elementify

import (
	"context"
	"errors"
	"testing"
)

func TestSegmentAll(t *testing.T) {
	s := NewSegmenter(PeriodicTable())
	words := []string{"bacon", "xyz", "h", "chocolate", "bacon"}

	results, err := SegmentAll(context.Background(), s, words, WithConcurrency(2))
	if err != nil {
		t.Fatalf("SegmentAll() error = %v", err)
	}
	if len(results) != len(words) {
		t.Fatalf("len(SegmentAll()) = %d, want %d", len(results), len(words))
	}

	for i, word := range words {
		if results[i].Word != word {
			t.Errorf("results[%d].Word = %q, want %q", i, results[i].Word, word)
		}
		single, _ := s.Elementify(word)
		if results[i].Len() != single.Len() {
			t.Errorf("results[%d].Len() = %d, want %d", i, results[i].Len(), single.Len())
		}
	}
}

func TestSegmentAll_Empty(t *testing.T) {
	results, err := SegmentAll(context.Background(), NewSegmenter(PeriodicTable()), nil)
	if err != nil {
		t.Fatalf("SegmentAll() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(SegmentAll()) = %d, want 0", len(results))
	}
}

func TestSegmentAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SegmentAll(ctx, NewSegmenter(PeriodicTable()), []string{"bacon", "chocolate"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("SegmentAll() error = %v, want context.Canceled", err)
	}
}

func TestSegmentAll_LimitExceeded(t *testing.T) {
	s := NewSegmenter(mustDictionary(t, tokens("a", "aa")), WithMaxPartials(10))

	_, err := SegmentAll(context.Background(), s, []string{"a", "aaaaaaaaaaaa"}, WithConcurrency(0))

	var limitErr *LimitExceededError
	if !errors.As(err, &limitErr) {
		t.Errorf("SegmentAll() error = %v, want *LimitExceededError", err)
	}
}

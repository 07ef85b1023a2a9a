package elementify

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func FuzzSegment(f *testing.F) {
	f.Add("bacon")
	f.Add("")
	f.Add("he")
	f.Add("HELLO world")
	f.Add("aaaaaaaa")
	f.Add("café")
	f.Add("x-ray")

	s := NewSegmenter(PeriodicTable(), WithMaxPartials(1_000_000))

	f.Fuzz(func(t *testing.T, word string) {
		if len(word) > 32 {
			return
		}

		segs, err := s.Segment(word)
		var limitErr *LimitExceededError
		if errors.As(err, &limitErr) {
			return
		}
		if err != nil {
			t.Fatalf("Segment(%q) error = %v", word, err)
		}
		if segs == nil {
			t.Fatalf("Segment(%q) returned nil", word)
		}

		for _, seg := range segs {
			text := seg.Text()
			if len(text) != len(word) || !strings.EqualFold(text, word) {
				t.Errorf("segmentation %v does not cover %q", seg.Symbols(), word)
			}
		}

		again, _ := s.Segment(word)
		if !reflect.DeepEqual(segs, again) {
			t.Errorf("Segment(%q) is not deterministic", word)
		}
	})
}

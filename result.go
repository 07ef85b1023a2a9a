package elementify

import "fmt"

// Result holds every segmentation of a word.
type Result struct {
	Word          string         `json:"word" msgpack:"word"`
	Segmentations []Segmentation `json:"solutions" msgpack:"solutions"`
}

func NewResult(word string, segs []Segmentation) Result {
	if segs == nil {
		segs = []Segmentation{}
	}
	return Result{
		Word:          word,
		Segmentations: segs,
	}
}

// Len returns the number of segmentations.
func (r Result) Len() int {
	return len(r.Segmentations)
}

// Summary returns the headline shown above the solutions.
func (r Result) Summary() string {
	return Summary(r.Len())
}

// Summary renders a solution count as "No Solution", "1 Solution" or
// "N Solutions".
func Summary(n int) string {
	switch n {
	case 0:
		return "No Solution"
	case 1:
		return "1 Solution"
	default:
		return fmt.Sprintf("%d Solutions", n)
	}
}

package elementify

// Stats describes a single segmentation run.
type Stats struct {
	Positions        int   // Positions in the table, len(word)+1
	VisitedPositions int   // Positions reached by at least one partial segmentation
	PrunedPositions  int   // Positions skipped because nothing reached them
	Probes           int   // Symbol comparisons attempted
	Matches          int   // Symbol comparisons that matched
	Partials         int   // Partial segmentations created, including complete ones
	Solutions        int   // Complete segmentations returned
	MemoryEstimate   int64 // Estimated bytes allocated for the table and the result
}

// PruneRatio returns the fraction of positions that were skipped.
func (s Stats) PruneRatio() float64 {
	if s.Positions == 0 {
		return 0
	}
	return float64(s.PrunedPositions) / float64(s.Positions)
}

// Estimate memory for a run:
// - segment node: ~24 bytes (int, pointer, int)
// - table slot: 8 bytes per partial (pointer)
// - Token: ~56 bytes (int + three string headers)
// - Segmentation slice header: 24 bytes
func estimateMemory(partials int, segs []Segmentation) int64 {
	estimate := int64(partials) * (24 + 8)
	for _, seg := range segs {
		estimate += 24
		estimate += int64(len(seg)) * 56
	}
	return estimate
}

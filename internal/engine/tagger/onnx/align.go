package onnx

// argmaxAt picks the highest-scoring label at each of the given sequence
// positions.
//
// logits: flat [seqLen * numLabels] float32 for a single window
// positions: index of the first sub-token of every word in the window
//
// Returns one label index per position. Ties go to the lower index.
func argmaxAt(logits []float32, numLabels int, positions []int) []int {
	out := make([]int, len(positions))
	for i, pos := range positions {
		off := pos * numLabels
		best := 0
		for l := 1; l < numLabels; l++ {
			if logits[off+l] > logits[off+best] {
				best = l
			}
		}
		out[i] = best
	}
	return out
}

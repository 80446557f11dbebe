package random

// Permuter reorders index lists uniformly at random.
type Permuter struct {
	src Source
}

// NewPermuter creates a Permuter consuming src.
func NewPermuter(src Source) *Permuter {
	return &Permuter{src: src}
}

// Permute returns the elements of indices in a uniformly random order.
//
// Elements are drawn one at a time, uniformly and without replacement, from
// the shrinking set of remaining candidates, so every ordering is equally
// likely. The input slice is not modified.
func (p *Permuter) Permute(indices []int) []int {
	candidates := make([]int, len(indices))
	copy(candidates, indices)

	out := make([]int, 0, len(indices))
	for len(candidates) > 0 {
		i := p.src.Intn(len(candidates))
		out = append(out, candidates[i])

		// Order of the remaining candidates is irrelevant to uniformity.
		last := len(candidates) - 1
		candidates[i] = candidates[last]
		candidates = candidates[:last]
	}
	return out
}

// Range returns the indices 0..n-1 in order.
func Range(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

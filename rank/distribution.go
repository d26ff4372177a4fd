package rank

import (
	"math/rand"
	"sort"
)

// Distribution maps each page ID to a non-negative probability. Distributions
// produced by this package always sum to 1 within floating-point tolerance.
type Distribution map[string]float64

// Sum returns the total probability mass assigned by the distribution.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, p := range d {
		sum += p
	}
	return sum
}

// cdfSampler draws pages from a distribution with probability proportional to
// their assigned mass. It builds a cumulative weight table over a stable page
// ordering and locates each draw with a binary search instead of scanning the
// weight list linearly.
type cdfSampler struct {
	pages []string
	cum   []float64
}

func newCDFSampler(pages []string, dist Distribution) *cdfSampler {
	cum := make([]float64, len(pages))
	var total float64
	for i, page := range pages {
		total += dist[page]
		cum[i] = total
	}
	return &cdfSampler{pages: pages, cum: cum}
}

// draw picks the next page using the provided randomness source.
func (s *cdfSampler) draw(rng *rand.Rand) string {
	total := s.cum[len(s.cum)-1]
	i := sort.SearchFloat64s(s.cum, rng.Float64()*total)
	if i == len(s.pages) {
		i = len(s.pages) - 1
	}
	return s.pages[i]
}

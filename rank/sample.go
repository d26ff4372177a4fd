package rank

import (
	"math/rand"
	"time"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

// Sample estimates the PageRank score of every page by simulating a random
// surfer for cfg.Samples steps and normalizing the per-page visit counts.
//
// The walk starts on a uniformly random page which seeds the simulation but
// is not itself counted as a visit. Each subsequent page is drawn from the
// transition model of the current one. Pages the walk never reached are
// absent from the result; with a large sample count this is an acceptable
// approximation artifact. The returned values are multiples of 1/cfg.Samples
// and sum to 1.
func Sample(g *graph.Graph, cfg Config) (Distribution, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("pagerank sampler config validation failed: %w", err)
	}
	if g.Len() == 0 {
		return nil, xerrors.Errorf("pagerank sampler: %w", graph.ErrEmptyGraph)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pages := g.Pages()
	current := pages[rng.Intn(len(pages))]

	visits := make(map[string]int, g.Len())
	for i := 0; i < cfg.Samples; i++ {
		dist, err := Transition(g, current, cfg.DampingFactor)
		if err != nil {
			return nil, err
		}
		current = newCDFSampler(pages, dist).draw(rng)
		visits[current]++
	}

	ranks := make(Distribution, len(visits))
	for page, count := range visits {
		ranks[page] = float64(count) / float64(cfg.Samples)
	}
	return ranks, nil
}

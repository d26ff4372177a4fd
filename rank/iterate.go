/*
   Package rank estimates the relative importance of the pages of a link
   graph with the PageRank model of the random surfer.

   Under this model a surfer lands on some page of the graph and from that
   point on repeatedly selects one of two options:

       They follow one of the outgoing links of the current page. Surfers
       choose this option with a predefined probability referred to as the
       damping factor.

       Alternatively, they abandon the current page and teleport to a random
       page of the graph.

   Repeating these steps in perpetuity performs a random walk of the page
   graph, and the PageRank score of a page is the probability that the surfer
   is found on it. By this definition the following holds:

       Each PageRank score is a value in the [0, 1] range.
       The sum of all assigned PageRank scores is equal to 1.

   The package provides two independent estimators of the same quantity: a
   Monte Carlo simulation of the surfer (Sample) and a deterministic
   fixed-point iteration of the PageRank recurrence (Iterate).
*/
package rank

import (
	"math"
	"sync"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

// Iterate computes the PageRank score of every page by repeatedly applying
// the PageRank recurrence until the maximum absolute per-page change between
// two successive passes drops below cfg.MinDeltaForConvergence.
//
// Each pass derives the complete next snapshot from the previous one
// (Jacobi-style); partially updated scores are never read within a pass. The
// rank mass parked on dangling pages is redistributed uniformly across the
// whole graph so no probability mass is lost. Unlike Sample the result is
// deterministic and covers every page of the graph.
func Iterate(g *graph.Graph, cfg Config) (Distribution, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("pagerank solver config validation failed: %w", err)
	}
	if g.Len() == 0 {
		return nil, xerrors.Errorf("pagerank solver: %w", graph.ErrEmptyGraph)
	}

	pages := g.Pages()
	numPages := float64(len(pages))
	indexOf := make(map[string]int, len(pages))
	for i, page := range pages {
		indexOf[page] = i
	}

	old := make([]float64, len(pages))
	next := make([]float64, len(pages))
	contrib := make([]float64, len(pages))
	for i := range old {
		old[i] = 1.0 / numPages
	}

	for {
		// Accumulate the link contributions of the old snapshot: each
		// page distributes its score evenly across its outgoing links,
		// while the mass held by dangling pages is pooled for uniform
		// redistribution.
		for i := range contrib {
			contrib[i] = 0
		}
		var danglingMass float64
		for i, page := range pages {
			outDegree := g.OutDegree(page)
			if outDegree == 0 {
				danglingMass += old[i]
				continue
			}
			share := old[i] / float64(outDegree)
			g.VisitOutLinks(page, func(dst string) {
				contrib[indexOf[dst]] += share
			})
		}

		maxDelta := combineScores(cfg, old, next, contrib, danglingMass/numPages)

		// The old snapshot becomes scratch space for the pass after
		// this one; next now holds the freshest scores.
		old, next = next, old
		if maxDelta < cfg.MinDeltaForConvergence {
			break
		}
	}

	ranks := make(Distribution, len(pages))
	for i, page := range pages {
		ranks[page] = old[i]
	}
	return ranks, nil
}

// combineScores computes the next snapshot from the accumulated contributions
// and returns the maximum absolute per-page score change. The per-page
// updates only read the old snapshot so they are fanned out across
// cfg.ComputeWorkers workers over disjoint index ranges.
func combineScores(cfg Config, old, next, contrib []float64, danglingShare float64) float64 {
	teleportProb := (1.0 - cfg.DampingFactor) / float64(len(old))

	numWorkers := cfg.ComputeWorkers
	if numWorkers > len(old) {
		numWorkers = len(old)
	}
	if numWorkers < 2 {
		return combineRange(cfg.DampingFactor, teleportProb, old, next, contrib, danglingShare, 0, len(old))
	}

	var wg sync.WaitGroup
	deltas := make([]float64, numWorkers)
	chunk := (len(old) + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		from, to := w*chunk, (w+1)*chunk
		if to > len(old) {
			to = len(old)
		}
		wg.Add(1)
		go func(w, from, to int) {
			defer wg.Done()
			deltas[w] = combineRange(cfg.DampingFactor, teleportProb, old, next, contrib, danglingShare, from, to)
		}(w, from, to)
	}
	wg.Wait()

	var maxDelta float64
	for _, delta := range deltas {
		if delta > maxDelta {
			maxDelta = delta
		}
	}
	return maxDelta
}

func combineRange(damping, teleportProb float64, old, next, contrib []float64, danglingShare float64, from, to int) float64 {
	var maxDelta float64
	for i := from; i < to; i++ {
		next[i] = teleportProb + damping*(contrib[i]+danglingShare)
		if delta := math.Abs(next[i] - old[i]); delta > maxDelta {
			maxDelta = delta
		}
	}
	return maxDelta
}

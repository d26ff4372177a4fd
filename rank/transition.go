package rank

import (
	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

// Transition returns the probability distribution over which page a random
// surfer visits next given the page they are currently on.
//
// With probability damping the surfer follows one of the outgoing links of
// page, each link being equally likely; with probability 1-damping they
// teleport to a page chosen uniformly from the whole graph. Every page of the
// graph receives an entry and the entries sum to 1.
//
// A dangling page (no outgoing links) would trap the surfer, so its
// distribution is uniform over the whole graph instead.
func Transition(g *graph.Graph, page string, damping float64) (Distribution, error) {
	if damping <= 0 || damping >= 1.0 {
		return nil, xerrors.Errorf("transition model: damping factor must be in the range (0, 1): got %v", damping)
	}
	if g.Len() == 0 {
		return nil, xerrors.Errorf("transition model: %w", graph.ErrEmptyGraph)
	}
	if !g.HasPage(page) {
		return nil, xerrors.Errorf("transition model: %q: %w", page, graph.ErrUnknownPage)
	}

	numPages := float64(g.Len())
	dist := make(Distribution, g.Len())

	outDegree := g.OutDegree(page)
	if outDegree == 0 {
		for _, p := range g.Pages() {
			dist[p] = 1.0 / numPages
		}
		return dist, nil
	}

	teleportProb := (1.0 - damping) / numPages
	followProb := damping / float64(outDegree)
	for _, p := range g.Pages() {
		dist[p] = teleportProb
	}
	g.VisitOutLinks(page, func(dst string) {
		dist[dst] += followProb
	})
	return dist, nil
}

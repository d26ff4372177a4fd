/*
   Defines the immutable link graph that the ranking algorithms operate on.
*/
package graph

import (
	"sort"

	"golang.org/x/xerrors"
)

var (
	// ErrEmptyGraph is returned when an operation requires a graph with at
	// least one page.
	ErrEmptyGraph = xerrors.New("graph contains no pages")

	// ErrUnknownPage is returned when a query references a page that is
	// not part of the graph.
	ErrUnknownPage = xerrors.New("page not present in graph")
)

type pageSet map[string]struct{}

// Graph is an immutable directed link graph. Each page maps to the set of
// pages it links out to. Targets that are not themselves pages of the graph
// and self-links are dropped at construction time so every recorded edge
// points at a page that exists.
type Graph struct {
	links map[string]pageSet

	// pages holds the page IDs in sorted order so that iteration over the
	// graph is deterministic.
	pages []string
}

// New creates a Graph from the provided adjacency lists. The input is copied;
// mutating it after the call does not affect the returned graph.
func New(links map[string][]string) *Graph {
	g := &Graph{
		links: make(map[string]pageSet, len(links)),
		pages: make([]string, 0, len(links)),
	}
	for page := range links {
		g.links[page] = make(pageSet)
		g.pages = append(g.pages, page)
	}
	sort.Strings(g.pages)

	for page, outLinks := range links {
		for _, dst := range outLinks {
			if dst == page {
				continue
			}
			if _, exists := g.links[dst]; !exists {
				continue
			}
			g.links[page][dst] = struct{}{}
		}
	}
	return g
}

// Len returns the number of pages in the graph.
func (g *Graph) Len() int { return len(g.pages) }

// Pages returns the IDs of all pages in the graph in sorted order. The
// returned slice is shared; callers must not modify it.
func (g *Graph) Pages() []string { return g.pages }

// HasPage returns true if the specified page is part of the graph.
func (g *Graph) HasPage(page string) bool {
	_, exists := g.links[page]
	return exists
}

// OutDegree returns the number of outbound links for the specified page. A
// page with out-degree zero is a dangling page.
func (g *Graph) OutDegree(page string) int { return len(g.links[page]) }

// LinksTo returns true if src contains an outbound link to dst.
func (g *Graph) LinksTo(src, dst string) bool {
	_, exists := g.links[src][dst]
	return exists
}

// VisitOutLinks invokes visitFn once for every outbound link of the specified
// page. Iteration order is not defined.
func (g *Graph) VisitOutLinks(page string, visitFn func(dst string)) {
	for dst := range g.links[page] {
		visitFn(dst)
	}
}

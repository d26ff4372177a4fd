package rank

import (
	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(IterateTestSuite))

type IterateTestSuite struct{}

func (s *IterateTestSuite) TestTwoPageCycle(c *gc.C) {
	g := graph.New(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html"},
	})

	ranks, err := Iterate(g, Config{})
	c.Assert(err, gc.IsNil)
	c.Assert(ranks, gc.HasLen, 2)
	c.Assert(almostEqual(ranks["1.html"], 0.5, 1e-9), gc.Equals, true)
	c.Assert(almostEqual(ranks["2.html"], 0.5, 1e-9), gc.Equals, true)
}

func (s *IterateTestSuite) TestDanglingMassIsRedistributed(c *gc.C) {
	// 1 -> 2 -> 3 with 3 dangling; the mass parked on 3 must flow back
	// into all pages instead of leaking out of the distribution.
	g := graph.New(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"3.html"},
		"3.html": nil,
	})

	ranks, err := Iterate(g, Config{})
	c.Assert(err, gc.IsNil)
	c.Assert(ranks, gc.HasLen, 3)
	c.Assert(almostEqual(ranks.Sum(), 1.0, 1e-6), gc.Equals, true)
	for page, score := range ranks {
		c.Assert(score >= 0, gc.Equals, true, gc.Commentf("page %q", page))
	}

	// Pages deeper in the chain accumulate more rank.
	c.Assert(ranks["3.html"] > ranks["2.html"], gc.Equals, true)
	c.Assert(ranks["2.html"] > ranks["1.html"], gc.Equals, true)
}

func (s *IterateTestSuite) TestIsolatedSinglePage(c *gc.C) {
	g := graph.New(map[string][]string{"1.html": nil})

	ranks, err := Iterate(g, Config{})
	c.Assert(err, gc.IsNil)
	c.Assert(ranks, gc.HasLen, 1)
	c.Assert(almostEqual(ranks["1.html"], 1.0, 1e-9), gc.Equals, true)
}

func (s *IterateTestSuite) TestDeterministic(c *gc.C) {
	g := fixtureGraph()

	first, err := Iterate(g, Config{})
	c.Assert(err, gc.IsNil)
	second, err := Iterate(g, Config{})
	c.Assert(err, gc.IsNil)
	c.Assert(first, gc.DeepEquals, second)
}

func (s *IterateTestSuite) TestParallelCombineMatchesSequential(c *gc.C) {
	g := fixtureGraph()

	sequential, err := Iterate(g, Config{ComputeWorkers: 1})
	c.Assert(err, gc.IsNil)
	parallel, err := Iterate(g, Config{ComputeWorkers: 4})
	c.Assert(err, gc.IsNil)
	c.Assert(parallel, gc.DeepEquals, sequential)
}

func (s *IterateTestSuite) TestInvalidArguments(c *gc.C) {
	_, err := Iterate(graph.New(nil), Config{})
	c.Assert(xerrors.Is(err, graph.ErrEmptyGraph), gc.Equals, true)

	_, err = Iterate(fixtureGraph(), Config{MinDeltaForConvergence: -0.5})
	c.Assert(err, gc.ErrorMatches, "(?s).*MinDeltaForConvergence must be in the range \\(0, 1\\).*")
}

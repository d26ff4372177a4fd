package rank

import (
	"math"
	"math/rand"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(SampleTestSuite))

type SampleTestSuite struct{}

func (s *SampleTestSuite) TestRanksAreNormalizedVisitFrequencies(c *gc.C) {
	g := fixtureGraph()
	cfg := Config{Samples: 1000, Rand: rand.New(rand.NewSource(42))}

	ranks, err := Sample(g, cfg)
	c.Assert(err, gc.IsNil)
	c.Assert(almostEqual(ranks.Sum(), 1.0, 1e-9), gc.Equals, true)

	// Every score is a non-negative multiple of 1/n.
	for page, score := range ranks {
		c.Assert(score >= 0, gc.Equals, true, gc.Commentf("page %q", page))
		scaled := score * float64(cfg.Samples)
		c.Assert(almostEqual(scaled, math.Round(scaled), 1e-9), gc.Equals, true,
			gc.Commentf("page %q: score %v is not a multiple of 1/%d", page, score, cfg.Samples))
	}
}

func (s *SampleTestSuite) TestSeededSourceIsReproducible(c *gc.C) {
	g := fixtureGraph()

	first, err := Sample(g, Config{Samples: 500, Rand: rand.New(rand.NewSource(42))})
	c.Assert(err, gc.IsNil)
	second, err := Sample(g, Config{Samples: 500, Rand: rand.New(rand.NewSource(42))})
	c.Assert(err, gc.IsNil)
	c.Assert(first, gc.DeepEquals, second)
}

func (s *SampleTestSuite) TestIsolatedSinglePage(c *gc.C) {
	g := graph.New(map[string][]string{"1.html": nil})

	ranks, err := Sample(g, Config{Samples: 100, Rand: rand.New(rand.NewSource(1))})
	c.Assert(err, gc.IsNil)
	c.Assert(ranks, gc.DeepEquals, Distribution{"1.html": 1.0})
}

func (s *SampleTestSuite) TestApproximatesStationaryDistribution(c *gc.C) {
	// With a healthy sample count the estimate should land close to the
	// deterministic solver's output.
	g := fixtureGraph()
	cfg := Config{Samples: 50000, Rand: rand.New(rand.NewSource(42))}

	sampled, err := Sample(g, cfg)
	c.Assert(err, gc.IsNil)
	iterated, err := Iterate(g, Config{})
	c.Assert(err, gc.IsNil)

	for _, page := range g.Pages() {
		c.Assert(almostEqual(sampled[page], iterated[page], 0.02), gc.Equals, true,
			gc.Commentf("page %q: sampled %v, iterated %v", page, sampled[page], iterated[page]))
	}
}

func (s *SampleTestSuite) TestInvalidArguments(c *gc.C) {
	g := fixtureGraph()

	_, err := Sample(g, Config{Samples: -1})
	c.Assert(err, gc.ErrorMatches, "(?s).*Samples must be at least equal to 1.*")

	_, err = Sample(g, Config{DampingFactor: 1.5})
	c.Assert(err, gc.ErrorMatches, "(?s).*DampingFactor must be in the range \\(0, 1\\).*")

	_, err = Sample(graph.New(nil), Config{})
	c.Assert(xerrors.Is(err, graph.ErrEmptyGraph), gc.Equals, true)
}

package rank

import (
	"math/rand"

	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// Default values applied by Config.validate when the corresponding fields are
// left unset.
const (
	DefaultDampingFactor          = 0.85
	DefaultSamples                = 10000
	DefaultMinDeltaForConvergence = 0.001
)

// Config encapsulates the tunable parameters for the ranking algorithms.
type Config struct {
	// DampingFactor is the probability that a random surfer follows one of
	// the outgoing links on the page they are currently visiting instead
	// of teleporting to a random page in the graph. It must lie strictly
	// between 0 and 1.
	//
	// If not specified, a default value of 0.85 will be used instead.
	DampingFactor float64

	// Samples is the number of random-walk steps performed by the sampling
	// estimator.
	//
	// If not specified, a default value of 10000 will be used instead.
	Samples int

	// MinDeltaForConvergence terminates the iterative solver once the
	// maximum absolute per-page score change between two successive
	// passes drops below it.
	//
	// If not specified, a default value of 0.001 will be used instead.
	MinDeltaForConvergence float64

	// ComputeWorkers is the number of workers used to combine per-page
	// scores during each pass of the iterative solver. If not specified, a
	// default value of 1 will be used instead.
	ComputeWorkers int

	// Rand is the randomness source for the sampling estimator. Callers
	// that need reproducible runs should provide a source with a fixed
	// seed. If not specified, a time-seeded source is used and runs are
	// not reproducible.
	Rand *rand.Rand
}

// validate checks whether the configuration is valid and sets the default
// values where required.
func (c *Config) validate() error {
	var err error
	if c.DampingFactor < 0 || c.DampingFactor >= 1.0 {
		err = multierror.Append(err, xerrors.New("DampingFactor must be in the range (0, 1)"))
	} else if c.DampingFactor == 0 {
		c.DampingFactor = DefaultDampingFactor
	}

	if c.Samples < 0 {
		err = multierror.Append(err, xerrors.New("Samples must be at least equal to 1"))
	} else if c.Samples == 0 {
		c.Samples = DefaultSamples
	}

	if c.MinDeltaForConvergence < 0 || c.MinDeltaForConvergence >= 1.0 {
		err = multierror.Append(err, xerrors.New("MinDeltaForConvergence must be in the range (0, 1)"))
	} else if c.MinDeltaForConvergence == 0 {
		c.MinDeltaForConvergence = DefaultMinDeltaForConvergence
	}

	if c.ComputeWorkers <= 0 {
		c.ComputeWorkers = 1
	}

	return err
}

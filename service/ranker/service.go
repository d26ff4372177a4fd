/*
   Periodically reloads the link graph and refreshes the PageRank scores of
   its pages.
*/
package ranker

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/rank"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/Ahmed-Sermani/go-pagerank/service/ranker GraphLoader,Reporter

// GraphLoader is implemented by objects that can supply the link graph whose
// pages are to be ranked.
type GraphLoader interface {
	Load() (*graph.Graph, error)
}

// Reporter is implemented by objects that receive the computed rank mappings.
type Reporter interface {
	Report(title string, ranks rank.Distribution) error
}

type Config struct {
	// Loader supplies the link graph for each rank pass.
	Loader GraphLoader

	// Reporter receives the rank mapping produced by each estimator.
	Reporter Reporter

	// Rank holds the parameters forwarded to the ranking algorithms.
	Rank rank.Config

	// UpdateInterval is the time between subsequent rank passes. A zero
	// value causes the service to execute a single pass and exit.
	UpdateInterval time.Duration

	// Clock drives the scheduling of rank passes. If not specified, the
	// wall clock is used instead.
	Clock clock.Clock

	// Logger for the service. If not specified, a null logger is used
	// instead.
	Logger *logrus.Entry
}

func (c *Config) validate() error {
	var err error
	if c.Loader == nil {
		err = multierror.Append(err, xerrors.New("graph loader has not been provided"))
	}
	if c.Reporter == nil {
		err = multierror.Append(err, xerrors.New("reporter has not been provided"))
	}
	if c.UpdateInterval < 0 {
		err = multierror.Append(err, xerrors.New("update interval must not be negative"))
	}
	if c.Clock == nil {
		c.Clock = clock.WallClock
	}
	if c.Logger == nil {
		nullLogger := logrus.New()
		nullLogger.SetOutput(io.Discard)
		c.Logger = logrus.NewEntry(nullLogger)
	}
	if c.Rank.Samples == 0 {
		c.Rank.Samples = rank.DefaultSamples
	}
	return err
}

// Service ranks the pages of a link graph on a fixed schedule.
type Service struct {
	cfg Config
}

// NewService creates a new ranker service instance with the specified config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("ranker service: config validation failed: %w", err)
	}
	return &Service{cfg: cfg}, nil
}

// Name implements service.Service.
func (svc *Service) Name() string { return "ranker" }

// Run implements service.Service. If the configured update interval is zero
// the call performs a single rank pass and returns; otherwise it keeps
// executing passes on that interval until the context gets cancelled or a
// pass fails.
func (svc *Service) Run(ctx context.Context) error {
	svc.cfg.Logger.WithField("update_interval", svc.cfg.UpdateInterval.String()).Info("starting service")
	defer svc.cfg.Logger.Info("stopped service")

	if svc.cfg.UpdateInterval == 0 {
		return svc.rankPass()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-svc.cfg.Clock.After(svc.cfg.UpdateInterval):
			if err := svc.rankPass(); err != nil {
				return err
			}
		}
	}
}

// rankPass loads the current link graph, runs both PageRank estimators on it
// and hands each resulting rank mapping to the configured reporter.
func (svc *Service) rankPass() error {
	logger := svc.cfg.Logger.WithField("pass_id", uuid.New().String())
	startAt := svc.cfg.Clock.Now()

	g, err := svc.cfg.Loader.Load()
	if err != nil {
		return xerrors.Errorf("ranker: load graph: %w", err)
	}
	logger.WithField("num_pages", g.Len()).Info("loaded link graph")

	sampled, err := rank.Sample(g, svc.cfg.Rank)
	if err != nil {
		return xerrors.Errorf("ranker: %w", err)
	}
	title := fmt.Sprintf("PageRank Results from Sampling (n = %d)", svc.cfg.Rank.Samples)
	if err := svc.cfg.Reporter.Report(title, sampled); err != nil {
		return xerrors.Errorf("ranker: report sampled scores: %w", err)
	}

	iterated, err := rank.Iterate(g, svc.cfg.Rank)
	if err != nil {
		return xerrors.Errorf("ranker: %w", err)
	}
	if err := svc.cfg.Reporter.Report("PageRank Results from Iteration", iterated); err != nil {
		return xerrors.Errorf("ranker: report iterated scores: %w", err)
	}

	logger.WithField("duration", svc.cfg.Clock.Now().Sub(startAt).String()).Info("completed rank pass")
	return nil
}

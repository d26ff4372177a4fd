package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Ahmed-Sermani/go-pagerank/corpus"
	"github.com/Ahmed-Sermani/go-pagerank/report"
	"github.com/Ahmed-Sermani/go-pagerank/service"
	"github.com/Ahmed-Sermani/go-pagerank/service/ranker"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

var appName = "go-pagerank"

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	logger := rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"host": host,
	})

	if err := run(logger); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		os.Exit(1)
	}
}

func run(logger *logrus.Entry) error {
	svcGroup, err := setupServices(logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGHUP)
	defer cancel()

	return svcGroup.Run(ctx)
}

func setupServices(logger *logrus.Entry) (service.ServiceGroup, error) {
	var rankerCfg ranker.Config

	flag.Float64Var(&rankerCfg.Rank.DampingFactor, "damping-factor", 0.85, "The probability that the random surfer follows an outbound link instead of teleporting to a random page")
	flag.IntVar(&rankerCfg.Rank.Samples, "num-samples", 10000, "The number of random-walk steps performed by the sampling estimator")
	flag.Float64Var(&rankerCfg.Rank.MinDeltaForConvergence, "min-delta", 0.001, "The maximum per-page score change below which the iterative solver is considered converged")
	flag.IntVar(&rankerCfg.Rank.ComputeWorkers, "ranker-num-workers", runtime.NumCPU(), "The number of workers to use for combining rank scores (defaults to number of CPUs)")
	flag.DurationVar(&rankerCfg.UpdateInterval, "update-interval", 0, "The time between subsequent rank passes (0 ranks the corpus once and exits)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] CORPUS_DIR\n\n", appName)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return nil, xerrors.New("a single corpus directory argument must be specified")
	}

	rankerCfg.Loader = corpus.NewLoader(flag.Arg(0))
	rankerCfg.Reporter = report.NewWriter(os.Stdout)
	rankerCfg.Logger = logger.WithField("service", "ranker")

	svc, err := ranker.NewService(rankerCfg)
	if err != nil {
		return nil, err
	}
	return service.ServiceGroup{svc}, nil
}

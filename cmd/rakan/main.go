// Command rakan drives a Metropolis-Hastings redistricting walk end to end:
// load a contiguity graph, seed an initial partition, run N accepted steps
// at the given weights, and report the resulting score trajectory.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/rakanmcmc/rakan/history"
	"github.com/rakanmcmc/rakan/internal/config"
	"github.com/rakanmcmc/rakan/internal/obslog"
	"github.com/rakanmcmc/rakan/internal/obsmetrics"
	"github.com/rakanmcmc/rakan/loader"
	"github.com/rakanmcmc/rakan/publish"
	"github.com/rakanmcmc/rakan/rakanerr"
	"github.com/rakanmcmc/rakan/sampler"
	"github.com/rakanmcmc/rakan/score"
	"github.com/rakanmcmc/rakan/seed"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the CLI: <prog> <graph-file> [--alpha α] [--beta β]
// [--gamma γ] [--eta η] [--steps N]. Only the graph file is positional;
// further positional arguments are ignored. Every field can also be set by
// RAKAN_ environment variables read via internal/config, with CLI flags
// winning when both are present.
func run(args []string) int {
	cfg := config.Load()

	fs := pflag.NewFlagSet("rakan", pflag.ContinueOnError)
	alpha := fs.Float64P("alpha", "a", cfg.Weights.Alpha, "compactness weight")
	beta := fs.Float64P("beta", "b", cfg.Weights.Beta, "population balance weight")
	gamma := fs.Float64P("gamma", "g", cfg.Weights.Gamma, "border preservation weight")
	eta := fs.Float64P("eta", "e", cfg.Weights.Eta, "VRA weight")
	steps := fs.IntP("steps", "n", cfg.Steps, "number of accepted steps to run")
	rngSeed := fs.Int64P("seed", "s", cfg.Seed, "RNG seed (0 selects the fixed default)")
	metricsAddr := fs.String("metrics-addr", cfg.MetricsAddr, "address to serve /metrics on, empty disables")
	redisAddr := fs.String("redis-addr", cfg.RedisAddr, "Redis address for outbound step publication, empty disables")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	positional := fs.Args()
	graphFile := cfg.GraphFile
	if len(positional) > 0 {
		graphFile = positional[0]
	}
	if graphFile == "" {
		fmt.Fprintln(os.Stderr, "usage: rakan <graph-file> [--alpha=..] [--beta=..] [--gamma=..] [--eta=..] [--steps=..]")
		return 2
	}

	os.Setenv("RAKAN_LOG_LEVEL", cfg.LogLevel)
	os.Setenv("RAKAN_LOG_FORMAT", cfg.LogFormat)
	logger := obslog.Setup()

	weights := score.Weights{Alpha: *alpha, Beta: *beta, Gamma: *gamma, Eta: *eta}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, logger)
	}

	f, err := os.Open(graphFile)
	if err != nil {
		logger.Error("graph_open_failed", "file", graphFile, "err", err)
		return 1
	}
	defer f.Close()

	g, err := loader.LoadGraph(f)
	if err != nil {
		logger.Error("graph_load_failed", "err", err)
		return exitCode(err)
	}
	logger.Info("graph_loaded", "n", g.N(), "k", g.K())

	if err := seed.Seed(g, seed.WithSeed(*rngSeed)); err != nil {
		logger.Error("seed_failed", "err", err)
		return exitCode(err)
	}
	logger.Info("graph_seeded")

	var pub publish.Publisher = publish.NoOp{}
	if *redisAddr != "" {
		if client := publish.OpenFromAddr(*redisAddr); client != nil {
			pub = publish.NewRedisStream(client, "rakan:steps")
		}
	}

	h := history.New()
	sink := fanoutSink{history: h, publisher: pub}
	s := sampler.New(g, sampler.WithSeed(*rngSeed), sampler.WithSink(sink))

	start := time.Now()
	if err := s.Walk(*steps, weights); err != nil {
		logger.Error("walk_failed", "err", err)
		return exitCode(err)
	}
	obsmetrics.WalkDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	obsmetrics.AcceptedTotal.Add(float64(h.Len()))

	logger.Info("walk_complete", "accepted_steps", h.Len())
	printSummary(h)
	return 0
}

// fanoutSink implements history.Sink, recording every accepted step to an
// in-memory History and publishing it outward, matching spec §9's "History
// over an append-sink capability" so History never depends on publish.
type fanoutSink struct {
	history   *history.History
	publisher publish.Publisher
}

func (s fanoutSink) Append(assignment []int, terms score.Terms) {
	s.history.Append(assignment, terms)
	obsmetrics.StepsTotal.Inc()
	obsmetrics.ScoreTotal.Observe(terms.Total)
	_ = s.publisher.Publish(context.Background(), publish.PublishedStep{
		Assignment: append([]int(nil), assignment...),
		Terms:      terms,
	})
}

func printSummary(h *history.History) {
	scores := h.Scores()
	if len(scores) == 0 {
		fmt.Println("no accepted steps")
		return
	}
	last := scores[len(scores)-1]
	fmt.Printf("accepted_steps=%d final_total=%.4f final_compactness=%.4f final_border=%.4f final_vra=%.4f\n",
		len(scores), last["total"], last["compact"], last["border"], last["vra"])
}

func exitCode(err error) int {
	var rerr *rakanerr.Error
	if !errors.As(err, &rerr) {
		return 1
	}
	switch rerr.Kind {
	case rakanerr.InvalidInput:
		return 2
	case rakanerr.InvariantBroken:
		return 3
	case rakanerr.SeedingFailed:
		return 4
	case rakanerr.IllegalTransition:
		return 5
	default:
		return 1
	}
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", obsmetrics.Handler())
	logger.Info("metrics_listen", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics_server_failed", "err", err)
	}
}

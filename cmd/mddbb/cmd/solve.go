package cmd

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mddbb/cmd/mddbb/config"
	"github.com/katalvlaran/mddbb/examples"
	"github.com/katalvlaran/mddbb/metrics"
	"github.com/katalvlaran/mddbb/problem"
	"github.com/katalvlaran/mddbb/solver"
)

var (
	solveWidth       int
	solveTimeLimit   int
	solveProblem     string
	solveN           int
	solveFile        string
	solveMetricsAddr string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the solver against a bundled example problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyFlagOverrides(cfg)

		var p problem.Problem
		if solveFile != "" {
			p, err = readEdgeList(solveFile)
		} else {
			p, err = buildProblem(cfg.Solve.Problem, cfg.Solve.N)
		}
		if err != nil {
			return err
		}

		collector := metrics.New(prometheus.DefaultRegisterer)
		if solveMetricsAddr != "" {
			serveMetrics(solveMetricsAddr)
		}

		opts := solver.Options{
			Width:     cfg.Solve.Width,
			TimeLimit: time.Duration(cfg.Solve.TimeLimitSeconds) * time.Second,
			Logger:    logger,
			Metrics:   collector,
			OnProgress: func(pr solver.Progress) {
				fmt.Printf("incumbent=%v lowerBound=%v upperBound=%v gap=%.4f\n",
					pr.Incumbent.Value, pr.LowerBound, pr.UpperBound, pr.Gap)
			},
		}

		res, err := solver.New(p, opts).Solve()
		if err != nil {
			return err
		}

		fmt.Printf("optimal=%v lowerBound=%v upperBound=%v gap=%.4f elapsed=%s\n",
			res.Optimal, res.LowerBound, res.UpperBound, res.Gap, res.Elapsed)

		return nil
	},
}

func applyFlagOverrides(cfg *config.Config) {
	if solveWidth != 0 {
		cfg.Solve.Width = solveWidth
	}
	if solveTimeLimit != 0 {
		cfg.Solve.TimeLimitSeconds = solveTimeLimit
	}
	if solveProblem != "" {
		cfg.Solve.Problem = solveProblem
	}
	if solveN != 0 {
		cfg.Solve.N = solveN
	}
}

func buildProblem(name string, n int) (problem.Problem, error) {
	switch name {
	case "sum":
		return examples.NewSumProblem(n), nil
	case "k3":
		return examples.NewK3Problem()
	case "disconnected":
		return examples.NewDisconnectedProblem()
	default:
		return nil, fmt.Errorf("solve: unknown problem %q (want sum, k3, or disconnected)", name)
	}
}

func init() {
	solveCmd.Flags().IntVar(&solveWidth, "width", 0, "fixed MDD width (0 = adaptive)")
	solveCmd.Flags().IntVar(&solveTimeLimit, "time-limit", 0, "time budget in seconds (0 = unbounded)")
	solveCmd.Flags().StringVar(&solveProblem, "problem", "", "built-in problem: sum, k3, or disconnected")
	solveCmd.Flags().IntVar(&solveN, "n", 0, "variable count for the sum problem")
	solveCmd.Flags().StringVar(&solveFile, "file", "", "path to a minla edge-list instance file (overrides --problem)")
	solveCmd.Flags().StringVar(&solveMetricsAddr, "metrics-addr", "", "address to serve /metrics on (e.g. :9090); empty disables it")
}

// serveMetrics exposes the default Prometheus registry's /metrics endpoint
// on addr in the background, the way the grounding example wires
// promhttp.Handler alongside its own engine.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		log.Printf("metrics server listening on %s\n", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics server error: %v\n", err)
		}
	}()
}

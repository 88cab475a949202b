// Command leakcheck runs a fixed-vs-random timing test against key expansion, encryption, and decryption and reports
// Welch's t statistic for each.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/codahale/fips197/internal/leakage"
)

func main() {
	var (
		samples  = flag.Int("samples", 1_000_000, "the number of timed calls per target")
		keySizes = flag.String("key-sizes", "16,24,32", "comma-separated key sizes in bytes")
		ops      = flag.String("ops", "expand,encrypt,decrypt", "comma-separated operations to test")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, log, *samples, strings.Split(*keySizes, ","), strings.Split(*ops, ","))
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, log *slog.Logger, samples int, keySizes, ops []string) int {
	targets, err := buildTargets(keySizes, ops)
	if err != nil {
		log.Error("invalid flags", "err", err)
		return 2
	}

	leaky := false
	for _, target := range targets {
		log.Info("evaluating", "target", target.Name, "samples", samples)

		r, err := leakage.Evaluate(ctx, target, samples)
		if err != nil {
			log.Error("evaluation failed", "target", target.Name, "err", err)
			return 1
		}

		log.Info("result",
			"target", r.Name,
			"t", r.T,
			"leaky", r.Leaky(),
			slog.Group("fixed", "n", r.Fixed.Count, "mean", r.Fixed.Mean, "p50", r.Fixed.P50, "p99", r.Fixed.P99),
			slog.Group("random", "n", r.Random.Count, "mean", r.Random.Mean, "p50", r.Random.P50, "p99", r.Random.P99),
		)
		leaky = leaky || r.Leaky()
	}

	if leaky {
		return 1
	}
	return 0
}

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/bcdannyboy/gbmc/config"
	"github.com/bcdannyboy/gbmc/models"
	"github.com/bcdannyboy/gbmc/positions"
	"github.com/bcdannyboy/gbmc/probability"
	"github.com/bcdannyboy/gbmc/report"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gbmc",
		Short: "Price European call and put options by Monte Carlo simulation of GBM",
		Long: "gbmc prices a European call and put by sampling terminal prices under\n" +
			"risk-neutral geometric Brownian motion. Parameters are read from .env and\n" +
			"MC_* environment variables; without them the built-in defaults are used.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func run(cfg *config.Config, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	var noise *models.GaussianNoise
	if cfg.HasSeed {
		noise = models.NewGaussianNoise(cfg.Seed)
	} else {
		noise = models.NewEntropyNoise()
	}
	logger.Info("starting simulation",
		"s0", cfg.S0,
		"strike", cfg.Strike,
		"rate", cfg.Rate,
		"sigma", cfg.Sigma,
		"maturity", cfg.Maturity,
		"simulations", cfg.NumSimulations,
		"seed", noise.Seed,
	)

	// call and put draw consecutively from the same generator
	pricer := probability.NewPricer(noise)
	pricer.Logger = logger

	var progress *report.Progress
	if cfg.Progress {
		progress = report.NewProgress(stderr)
	}

	estimate := func(kind positions.OptionKind) (probability.Result, error) {
		if progress == nil {
			return pricer.Estimate(cfg.Params(kind))
		}
		tracker := progress.Track(kind.String(), cfg.NumSimulations)
		pricer.Progress = tracker.Add
		result, err := pricer.Estimate(cfg.Params(kind))
		if err != nil {
			tracker.Abort()
		}
		return result, err
	}

	call, err := estimate(positions.Call)
	if err != nil {
		logger.Error("call estimate failed", "error", err)
		return err
	}
	put, err := estimate(positions.Put)
	if err != nil {
		logger.Error("put estimate failed", "error", err)
		return err
	}
	if progress != nil {
		progress.Wait()
	}

	if cfg.Output == config.OutputJSON {
		return report.JSON(stdout, report.NewSummary(cfg.Params(positions.Call), noise.Seed, call, put))
	}
	return report.Text(stdout, call, put)
}

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-optics/dielectric/kk"
	"github.com/cwbudde/algo-optics/dielectric/model"
	"github.com/cwbudde/algo-optics/dielectric/optics"
	"github.com/cwbudde/algo-optics/dielectric/phs"
)

func run(cmd *cobra.Command, out io.Writer, opts options, logger *zap.Logger) error {
	cfg, err := loadModelConfig(opts.config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if opts.config == "" || flags.Changed("emin") {
		cfg.Grid.Start = opts.emin
	}
	if opts.config == "" || flags.Changed("emax") {
		cfg.Grid.Stop = opts.emax
	}
	if opts.config == "" || flags.Changed("step") {
		cfg.Grid.Step = opts.step
	}

	method, err := kk.ParseMethod(opts.method)
	if err != nil {
		return fmt.Errorf("%w: %q", err, opts.method)
	}

	n, err := cfg.Grid.samples()
	if err != nil {
		return err
	}

	energy := model.Grid(cfg.Grid.Start, cfg.Grid.Step, n)
	eps1, eps2, err := model.Evaluate(cfg.Oscillators, energy)
	if err != nil {
		return err
	}

	logger.Debug("model evaluated",
		zap.Int("samples", n),
		zap.Int("oscillators", len(cfg.Oscillators)),
		zap.Float64("start", cfg.Grid.Start),
		zap.Float64("step", cfg.Grid.Step))

	corrected, err := phs.Apply(phs.Spectrum{Energy: energy, Eps1: eps1, Eps2: eps2}, opts.delta,
		phs.WithEnergyTol(opts.tol),
		phs.WithWorkers(opts.workers),
		phs.WithMethod(method),
		phs.WithLogger(logger))
	if err != nil {
		logger.Error("PHS correction failed", zap.Error(err))
		return err
	}

	consts, err := optics.FromDielectric(corrected.Energy, corrected.Eps1, corrected.Eps2)
	if err != nil {
		return err
	}

	return printTable(out, opts.every, eps1, eps2, corrected, consts)
}

func printTable(out io.Writer, every int, eps1, eps2 []float64, c phs.Spectrum, o optics.Constants) error {
	if every < 1 {
		every = 1
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "E [eV]\teps1\teps2\teps1 PHS\teps2 PHS\tn\tk\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t----\t--------\t--------\t-\t-\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < c.Len(); i += every {
		if _, err := fmt.Fprintf(tw, "%.4f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\n",
			c.Energy[i], eps1[i], eps2[i], c.Eps1[i], c.Eps2[i], o.N[i], o.K[i]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/b97tsk/seedmap/almanac"
	"github.com/b97tsk/seedmap/rangemap"
)

func _newSolveCommand(app *_App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Print the lowest location for part 1, part 2 or both",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(cmd, args); err != nil {
				return err
			}
			defer app.log.Sync()
			return app.solve(cmd)
		},
	}
	cmd.Flags().Int("part", 0, "run only part 1 or part 2")
	cmd.Flags().Duration("bench", 0, "repeat each part for this long and report timings")
	cmd.Flags().String("format", "", "input format: text, yaml or snapshot (default from extension)")
	return cmd
}

func (app *_App) solve(cmd *cobra.Command) error {
	start := time.Now()
	w := cmd.OutOrStdout()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	in, err := app.loadInput()
	if err != nil {
		return err
	}
	modes, err := in.parts(app.cfg.Part)
	if err != nil {
		return err
	}

	fprintf(w, "DAY 05\n----\n")
	if in.Format == _formatSnapshot {
		fprintf(w, "INPUT: %v (%v) [%v]\n", in.Name, in.Format, in.Elapsed)
	} else {
		fprintf(w, "INPUT: %v (%d lines) [%v]\n", in.Name, in.Lines, in.Elapsed)
	}

	for _, mode := range modes {
		mode := mode
		run := func() (uint64, error) {
			a, err := in.load(mode)
			if err != nil {
				return 0, err
			}
			return a.Lowest(app.stageOptions()...)
		}

		if err := app.trace(in, mode); err != nil {
			return err
		}

		r, err := _runPart(ctx, app.log, run, app.cfg.Bench)
		if err != nil {
			return errorf("part %d: %w", mode.Part(), err)
		}
		fprintf(w, "PART %d: %v\n", mode.Part(), r)
	}

	fprintf(w, "----\nFinished in %v\n", time.Since(start))
	return nil
}

// trace logs the range count after every stage when debug logging is on.
func (app *_App) trace(in *_Input, mode almanac.SeedMode) error {
	if !app.log.Core().Enabled(zap.DebugLevel) {
		return nil
	}
	a, err := in.load(mode)
	if err != nil {
		return err
	}
	p, err := a.Pipeline(app.stageOptions()...)
	if err != nil {
		return err
	}
	app.log.Debug("seeds",
		zap.Int("part", mode.Part()),
		zap.Int("ranges", len(a.Seeds)),
		zap.Uint64("values", rangemap.Size(a.Seeds)),
	)
	p.Fold(func(i int, m rangemap.Map, out []rangemap.Range) {
		app.log.Debug("stage",
			zap.Int("part", mode.Part()),
			zap.Int("stage", i+1),
			zap.String("map", m.Name()),
			zap.Int("ranges", len(out)),
			zap.Uint64("values", rangemap.Size(out)),
		)
	})
	return nil
}

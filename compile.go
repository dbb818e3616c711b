package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/b97tsk/seedmap/almanac"
	"github.com/b97tsk/seedmap/rangemap"
)

func _newCompileCommand(app *_App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile IN OUT",
		Short: "Parse an almanac and store it as a snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(cmd, args[:1]); err != nil {
				return err
			}
			defer app.log.Sync()
			return app.compile(cmd, args[1])
		},
	}
	cmd.Flags().Int("part", almanac.SeedRanges.Part(), "seed mode to read text input in")
	cmd.Flags().String("format", "", "input format: text or yaml (default from extension)")
	return cmd
}

func (app *_App) compile(cmd *cobra.Command, out string) error {
	in, err := app.loadInput()
	if err != nil {
		return err
	}
	a, err := in.single(app.cfg.Part)
	if err != nil {
		return err
	}
	if _, err := a.Pipeline(app.stageOptions()...); err != nil {
		return err
	}
	if err := almanac.WriteSnapshot(out, a); err != nil {
		return err
	}

	app.log.Info("snapshot written",
		zap.String("input", in.Name),
		zap.String("output", out),
		zap.Stringer("seeds", a.Mode),
		zap.Int("maps", len(a.Maps)),
		zap.Uint64("values", rangemap.Size(a.Seeds)),
	)
	fprintf(cmd.OutOrStdout(), "%v -> %v (part %d)\n", in.Name, out, a.Mode.Part())
	return nil
}

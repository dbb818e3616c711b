package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/b97tsk/seedmap/almanac"
	"github.com/b97tsk/seedmap/rangemap"
)

func _newCheckCommand(app *_App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [FILE]",
		Short: "Report map sizes and entries whose sources overlap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(cmd, args); err != nil {
				return err
			}
			defer app.log.Sync()
			return app.check(cmd)
		},
	}
	cmd.Flags().Int("part", almanac.SeedRanges.Part(), "seed mode to read text input in")
	cmd.Flags().String("format", "", "input format: text, yaml or snapshot (default from extension)")
	return cmd
}

func (app *_App) check(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()

	in, err := app.loadInput()
	if err != nil {
		return err
	}
	a, err := in.single(app.cfg.Part)
	if err != nil {
		return err
	}

	covered := rangemap.CoveredSize(a.Seeds)
	fprintf(w, "seeds: %d ranges, %d values", len(a.Seeds), covered)
	if !rangemap.Disjoint(a.Seeds) {
		fprintf(w, " (overlapping, %d values counted twice)", rangemap.Size(a.Seeds)-covered)
	}
	fprintln(w)

	overlaps := 0
	for i, m := range a.Maps {
		fprintf(w, "%d %v: %d entries\n", i+1, m.Name(), m.Len())
		entries := m.Entries()
		for _, o := range m.Overlaps() {
			overlaps++
			fprintf(w, "  overlap %v: entry %d (%v) before entry %d (%v)\n",
				o.Range, o.First+1, entries[o.First], o.Second+1, entries[o.Second])
			app.log.Warn("overlapping entries, first one wins",
				zap.String("map", m.Name()),
				zap.Int("first", o.First+1),
				zap.Int("second", o.Second+1),
				zap.Stringer("range", o.Range),
			)
		}
	}

	if len(a.Maps) != app.cfg.Stages {
		return errorf("%w: want %d maps, got %d", rangemap.ErrStageCount, app.cfg.Stages, len(a.Maps))
	}
	if overlaps == 0 {
		fprintln(w, "no overlapping entries")
	}
	return nil
}

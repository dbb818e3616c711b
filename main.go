package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/b97tsk/seedmap/almanac"
	"github.com/b97tsk/seedmap/rangemap"
)

type _App struct {
	v   *viper.Viper
	log *zap.Logger
	cfg _Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := _newRootCommand().ExecuteContext(ctx); err != nil {
		log, lerr := _newLogger(false)
		if lerr != nil {
			eprintln("seedmap:", err)
		} else {
			_reportError(log, err)
		}
		stop()
		os.Exit(1)
	}
}

func _reportError(log *zap.Logger, err error) {
	log.Error("seedmap failed", zap.Error(err))
	_ = log.Sync()
}

func _newRootCommand() *cobra.Command {
	app := &_App{v: _newViper(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "seedmap",
		Short:         "Find the lowest location reachable from an almanac's seeds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file (default ./seedmap.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every stage")
	root.PersistentFlags().Int("stages", rangemap.DefaultStageCount, "number of maps an almanac must have")

	root.AddCommand(
		_newSolveCommand(app),
		_newCheckCommand(app),
		_newCompileCommand(app),
	)
	return root
}

// setup loads the configuration for cmd and builds the logger.
func (app *_App) setup(cmd *cobra.Command, args []string) error {
	cfg, err := _loadConfig(app.v, cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	app.cfg = cfg

	log, err := _newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	app.log = log
	return nil
}

func _newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// _Input is a loaded input file. Text inputs keep their raw bytes, since every
// part parses them again in its own seed mode.
type _Input struct {
	Name    string
	Format  string
	Lines   int
	Text    []byte
	Almanac *almanac.Almanac
	Elapsed time.Duration
}

func (app *_App) loadInput() (*_Input, error) {
	name := app.cfg.Input
	format, err := _detectFormat(name, app.cfg.Format)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	in := &_Input{Name: name, Format: format}

	switch format {
	case _formatSnapshot:
		in.Almanac, err = almanac.ReadSnapshot(name)
		if err != nil {
			return nil, err
		}
	default:
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		data, err := io.ReadAll(_countLines(file, &in.Lines))
		if err != nil {
			return nil, err
		}
		if format == _formatYAML {
			in.Almanac, err = almanac.DecodeYAML(bytes.NewReader(data))
			if err != nil {
				return nil, err
			}
		} else {
			in.Text = bytes.TrimRight(data, " \t\r\n")
		}
	}

	in.Elapsed = time.Since(start)
	app.log.Debug("input loaded",
		zap.String("name", name),
		zap.String("format", format),
		zap.Int("lines", in.Lines),
		zap.Duration("elapsed", in.Elapsed),
	)
	return in, nil
}

// load returns the almanac of in for mode, parsing text inputs on demand.
func (in *_Input) load(mode almanac.SeedMode) (*almanac.Almanac, error) {
	if in.Almanac == nil {
		return almanac.Parse(bytes.NewReader(in.Text), mode)
	}
	if in.Almanac.Mode != mode {
		return nil, errorf("%v holds seed %v, not %v", in.Name, in.Almanac.Mode, mode)
	}
	return in.Almanac, nil
}

// parts returns the seed modes to run: the one asked for, the one a loaded
// almanac holds, or both for text.
func (in *_Input) parts(part int) ([]almanac.SeedMode, error) {
	if part != 0 {
		mode, err := almanac.SeedModeForPart(part)
		if err != nil {
			return nil, err
		}
		return []almanac.SeedMode{mode}, nil
	}
	if in.Almanac != nil {
		return []almanac.SeedMode{in.Almanac.Mode}, nil
	}
	return []almanac.SeedMode{almanac.SeedValues, almanac.SeedRanges}, nil
}

// single returns the almanac a YAML or snapshot input holds, or parses text
// input in the seed mode of part.
func (in *_Input) single(part int) (*almanac.Almanac, error) {
	if in.Almanac != nil {
		return in.Almanac, nil
	}
	mode, err := almanac.SeedModeForPart(part)
	if err != nil {
		return nil, err
	}
	return in.load(mode)
}

func (app *_App) stageOptions() []rangemap.Option {
	return []rangemap.Option{rangemap.WithStageCount(app.cfg.Stages)}
}

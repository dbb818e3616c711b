package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/b97tsk/seedmap/rangemap"
)

const (
	_defaultInput      = "inputs/day_05.txt"
	_defaultConfigName = "seedmap"
	_envPrefix         = "SEEDMAP"
)

const (
	_formatText     = "text"
	_formatYAML     = "yaml"
	_formatSnapshot = "snapshot"
)

type _Config struct {
	Input   string
	Part    int
	Bench   time.Duration
	Stages  int
	Format  string
	Verbose bool
}

func _newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("input", _defaultInput)
	v.SetDefault("stages", rangemap.DefaultStageCount)
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// _loadConfig merges, lowest first: defaults, the config file, SEEDMAP_*
// environment variables and the flags of cmd.
func _loadConfig(v *viper.Viper, cmd *cobra.Command) (cfg _Config, err error) {
	if err = v.BindPFlags(cmd.Flags()); err != nil {
		return
	}

	if name := v.GetString("config"); name != "" {
		v.SetConfigFile(name)
	} else {
		v.SetConfigName(_defaultConfigName)
		v.AddConfigPath(".")
	}
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	cfg = _Config{
		Input:   v.GetString("input"),
		Part:    v.GetInt("part"),
		Bench:   v.GetDuration("bench"),
		Stages:  v.GetInt("stages"),
		Format:  v.GetString("format"),
		Verbose: v.GetBool("verbose"),
	}
	switch {
	case cfg.Part < 0 || cfg.Part > 2:
		err = errorf("part must be 1 or 2, got %d", cfg.Part)
	case cfg.Stages <= 0:
		err = errorf("stages must be positive, got %d", cfg.Stages)
	case cfg.Bench < 0:
		err = errorf("bench duration must not be negative, got %v", cfg.Bench)
	}
	return
}

func _detectFormat(name, format string) (string, error) {
	switch format {
	case _formatText, _formatYAML, _formatSnapshot:
		return format, nil
	case "":
	default:
		return "", errorf("unknown input format %q", format)
	}
	switch {
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return _formatYAML, nil
	case strings.HasSuffix(name, ".gob"):
		return _formatSnapshot, nil
	}
	return _formatText, nil
}

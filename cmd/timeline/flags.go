package main

import (
	"errors"

	"github.com/hackebrot/go-timeline/internal/config"
	"github.com/urfave/cli"
)

var errNoScript = errors.New("no script given, pass --script or a path argument")

func scriptFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "script, s",
		Usage: "path to the YAML timeline script",
	}
}

func playFlags() []cli.Flag {
	defaults := config.DefaultPlayerConfig()
	return []cli.Flag{
		scriptFlag(),
		cli.DurationFlag{
			Name:  "frame",
			Usage: "interval between clock ticks",
			Value: defaults.FrameInterval,
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error",
			Value: defaults.LogLevel,
		},
		cli.StringFlag{
			Name:  "log-format",
			Usage: "log format: text, json",
			Value: defaults.LogFormat,
		},
		cli.IntFlag{
			Name:  "loop",
			Usage: "replay the timeline this many more times",
		},
		cli.BoolFlag{
			Name:  "no-bars",
			Usage: "disable progress bars",
		},
	}
}

// playerConfig builds the configuration from flags over the defaults.
func playerConfig(ctx *cli.Context) (config.PlayerConfig, error) {
	cfg := config.DefaultPlayerConfig()

	cfg.ScriptPath = ctx.String("script")
	if cfg.ScriptPath == "" {
		cfg.ScriptPath = ctx.Args().First()
	}
	if cfg.ScriptPath == "" {
		return cfg, errNoScript
	}

	if ctx.IsSet("frame") {
		cfg.FrameInterval = ctx.Duration("frame")
	}
	if ctx.IsSet("log-level") {
		cfg.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("log-format") {
		cfg.LogFormat = ctx.String("log-format")
	}
	cfg.NoBars = ctx.Bool("no-bars")
	cfg.Loops = ctx.Int("loop")

	return cfg, nil
}

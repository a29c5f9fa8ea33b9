package main

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/thomascamminady/piper/internal/config"
	"github.com/thomascamminady/piper/internal/runner"
	"github.com/thomascamminady/piper/logging"
	"github.com/thomascamminady/piper/pipes"
	"github.com/urfave/cli/v2"
)

func createApp() *cli.App {
	return &cli.App{
		Name:                 "piper",
		Usage:                "Clean up tabular activity data with chains of pipes",
		UsageText:            "piper [command]",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			newPipesCmd(),
			newRunCmd(),
		},
	}
}

func newPipesCmd() *cli.Command {
	return &cli.Command{
		Name:  "pipes",
		Usage: "List the names of all available pipes",
		Action: func(ctx *cli.Context) error {
			for _, name := range pipes.Names() {
				fmt.Fprintln(ctx.App.Writer, name)
			}
			return nil
		},
	}
}

// flagKeys maps command-line flags onto config keys
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"log-format":    "log.format",
	"input-format":  "input.format",
	"delimiter":     "input.delimiter",
	"nil-value":     "input.nil_value",
	"output-format": "output.format",
	"output-dir":    "output.dir",
	"concurrency":   "concurrency",
}

func newRunCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Apply a chain of pipes to input files, writing one output per input",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file (yaml, toml or json)"},
			&cli.StringFlag{Name: "env-file", Usage: ".env file to load"},
			&cli.StringSliceFlag{Name: "pipe", Aliases: []string{"p"}, Usage: "pipe to apply, in order (repeatable, defaults to magic)"},
			&cli.StringFlag{Name: "input-format", Usage: "csv, jsonl or snapshot (inferred from extensions by default)"},
			&cli.StringFlag{Name: "output-format", Usage: "csv, jsonl or snapshot (the input format by default)"},
			&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "directory for outputs (next to inputs by default)"},
			&cli.StringFlag{Name: "delimiter", Usage: "delimiter of csv inputs"},
			&cli.StringFlag{Name: "nil-value", Usage: "string representing nil in csv data"},
			&cli.IntFlag{Name: "concurrency", Usage: "number of inputs processed at once"},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn, error or fatal"},
			&cli.StringFlag{Name: "log-format", Usage: "console or json"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() == 0 {
				return cli.Exit("at least one input FILE is required", 2)
			}
			v := viper.New()
			for flag, key := range flagKeys {
				if ctx.IsSet(flag) {
					v.Set(key, ctx.Value(flag))
				}
			}
			if ctx.IsSet("pipe") {
				v.Set("pipes", ctx.StringSlice("pipe"))
			}
			cfg, err := config.Load(
				config.WithViper(v),
				config.WithConfigFile(ctx.String("config")),
				config.WithEnvFile(ctx.String("env-file")),
			)
			if err != nil {
				return err
			}
			restore, err := installLogger(cfg)
			if err != nil {
				return err
			}
			defer restore()

			inputs, err := runner.ExpandInputs(ctx.Args().Slice())
			if err != nil {
				return err
			}
			r, err := runner.New(cfg)
			if err != nil {
				return err
			}
			results, err := r.Run(ctx.Context, inputs)
			if err != nil {
				return err
			}
			for _, res := range results {
				fmt.Fprintf(ctx.App.Writer, "%s -> %s (%d -> %d rows)\n", res.Input, res.Output, res.RowsIn, res.RowsOut)
			}
			return nil
		},
	}
}

func installLogger(cfg *config.Config) (func(), error) {
	level, err := logging.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	restore := logging.SetLogger(logger)
	return func() {
		_ = logger.Sync()
		restore()
	}, nil
}

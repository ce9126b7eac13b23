// Command isolatecss renders sheet files through an in-memory styling engine
// with the isolate plugin installed, so the generated reset rule can be
// inspected.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rickchristie/isolate"
	"github.com/rickchristie/isolate/events"
	"github.com/rickchristie/isolate/loggers"
	"github.com/rickchristie/isolate/memsheet"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorDim   = "\033[2m"
)

type options struct {
	configPath string
	isolate    string
	trace      bool
	verbosity  int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "isolatecss",
		Short: "Inspect the reset rule generated by the isolate plugin",
		Long: `isolatecss builds sheets from YAML files with the isolate plugin
installed and prints the resulting CSS, reset rule first.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "plugin config file (.yaml, .toml or .json)")
	root.PersistentFlags().StringVar(&opts.isolate, "isolate", "", `override the global isolate option ("true", "false" or a rule name)`)
	root.PersistentFlags().BoolVar(&opts.trace, "trace", false, "print every plugin event as YAML to stderr")
	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newReplCmd(opts))
	return root
}

func setupLogger(w io.Writer, verbosity int) {
	level := zerolog.WarnLevel
	switch {
	case verbosity == 1:
		level = zerolog.InfoLevel
	case verbosity >= 2:
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// loadConfig resolves the plugin config from --config and --isolate.
func loadConfig(opts *options) (isolate.Config, error) {
	cfg := isolate.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := isolate.LoadConfig(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	switch opts.isolate {
	case "":
	case "true":
		cfg.Isolate = isolate.Bool(true)
	case "false":
		cfg.Isolate = isolate.Bool(false)
	default:
		cfg.Isolate = isolate.Named(opts.isolate)
	}
	return cfg, nil
}

// newEngine creates an engine with the isolate plugin installed.
func newEngine(opts *options, traceOut io.Writer) (*memsheet.Engine, *isolate.Plugin, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	engine := memsheet.New()
	pluginOpts := []isolate.Option{
		isolate.WithScheduler(engine.Scheduler()),
		isolate.WithLogger(log.Logger),
	}
	if opts.trace {
		registry := events.NewRegistry()
		registry.Subscribe(loggers.NewLoggerSubscriberWithWriter(traceOut))
		pluginOpts = append(pluginOpts, isolate.WithEvents(registry))
	}

	plugin := isolate.New(cfg, pluginOpts...)
	engine.Use(plugin)
	return engine, plugin, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/rickchristie/isolate/memsheet"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render <sheet.yaml>...",
		Short: "Build every sheet in the given files and print the CSS",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, plugin, err := newEngine(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open sheet file: %w", err)
				}
				specs, err := memsheet.ParseSheetsYAML(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				for _, spec := range specs {
					engine.BuildSpec(spec)
				}
				log.Info().Str("file", path).Int("sheets", len(specs)).Msg("sheets built")
			}
			engine.Tick()

			stats := plugin.Stats()
			log.Info().
				Int64("seen", stats.RulesSeen).
				Int64("isolated", stats.RulesIsolated).
				Int64("publishes", stats.Publishes).
				Msg("isolate summary")

			fmt.Fprintln(cmd.OutOrStdout(), engine.String())
			return nil
		},
	}
}

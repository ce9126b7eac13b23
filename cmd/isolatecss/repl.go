package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rickchristie/isolate"
	"github.com/rickchristie/isolate/memsheet"
	"github.com/spf13/cobra"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Add rules interactively and watch the reset rule grow",
		Long: `Each line is one sheet written as a YAML flow mapping, for example:

  link: {color: red}, item: {color: blue, isolate: false}

Commands: :css prints every sheet, :quit exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, plugin, err := newEngine(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:      colorCyan + "isolate> " + colorReset,
				Stdout:      cmd.OutOrStdout(),
				Stderr:      cmd.ErrOrStderr(),
				HistoryFile: "",
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()

			return repl(rl, cmd.OutOrStdout(), engine, plugin)
		},
	}
}

// lineReader is the part of readline the loop needs.
type lineReader interface {
	Readline() (string, error)
}

func repl(rl lineReader, w io.Writer, engine *memsheet.Engine, plugin *isolate.Plugin) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":css":
			fmt.Fprintln(w, engine.String())
			continue
		}

		blocks, err := memsheet.ParseBlocksYAML([]byte("{" + line + "}"))
		if err != nil {
			fmt.Fprintf(w, "%s%v%s\n", colorRed, err, colorReset)
			continue
		}
		engine.Build(blocks, isolate.SheetOptions{})
		engine.Tick()

		if rule := plugin.ResetRule(); rule != nil {
			fmt.Fprintf(w, "%sreset selector:%s\n%s\n", colorDim, colorReset, rule.Selector())
		} else {
			fmt.Fprintf(w, "%sno reset rule yet%s\n", colorDim, colorReset)
		}
	}
}

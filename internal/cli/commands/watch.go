package commands

import (
	"os"
	"os/signal"
	"syscall"

	"frg/internal/ui"
	"frg/internal/watch"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// WatchCommand handles the watch command
type WatchCommand struct {
	env *Environment
}

// NewWatchCommand creates a new WatchCommand
func NewWatchCommand(env *Environment) *WatchCommand {
	return &WatchCommand{env: env}
}

// Execute generates once and then regenerates on every settled change until
// SIGINT or SIGTERM
func (wc *WatchCommand) Execute(cmd *cobra.Command, args []string) error {
	quiet := wc.env.Config.Flags.Quiet

	g, err := wc.env.newGenerator(false)
	if err != nil {
		return err
	}
	formatter := ui.NewFormatter(cmd.OutOrStdout())

	regenerate := func() error {
		plan, statuses, err := g.Run()
		if err != nil {
			return err
		}
		if !quiet {
			formatter.PrintSummary(plan.Discovery, statuses)
		}
		return nil
	}

	if err := regenerate(); err != nil {
		return err
	}

	casesPath := wc.env.Config.GetCasesPath()
	w, err := watch.New(casesPath, watch.Config{
		DebounceDelay: watch.DefaultDebounceDelay,
		Relevant: func(path string) bool {
			_, ok := g.Layout().Classify(path)
			return ok
		},
		OnChange: regenerate,
		OnError: func(err error) {
			color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
		},
	}, wc.env.Logger)
	if err != nil {
		return err
	}

	if !quiet {
		color.New(color.FgCyan).Fprintf(cmd.OutOrStdout(), "Watching %s (%d directories), press Ctrl+C to stop\n", casesPath, w.Dirs())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Run(ctx)
}

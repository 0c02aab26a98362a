package commands

import (
	"frg/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	env *Environment
}

// NewListCommand creates a new ListCommand
func NewListCommand(env *Environment) *ListCommand {
	return &ListCommand{env: env}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := lc.env.Config.Flags

	g, err := lc.env.newGenerator(!flags.JSON)
	if err != nil {
		return err
	}

	d, err := g.Discover()
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cmd.OutOrStdout())
	if flags.JSON {
		return formatter.PrintManifest(d, g.Layout(), flags.NameFilter)
	}

	formatter.PrintGroupList(d, g.Layout(), flags.ShowFiles, flags.NameFilter)
	return nil
}

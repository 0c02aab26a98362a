package commands

import (
	"frg/internal/ui"

	"github.com/spf13/cobra"
)

// CheckCommand handles the check command
type CheckCommand struct {
	env *Environment
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(env *Environment) *CheckCommand {
	return &CheckCommand{env: env}
}

// Execute runs the command. Stale runners make it fail with
// domain.ErrStaleArtifact.
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	g, err := cc.env.newGenerator(true)
	if err != nil {
		return err
	}

	plan, err := g.Plan()
	if err != nil {
		return err
	}

	statuses, checkErr := g.Check(plan)
	if !cc.env.Config.Flags.Quiet {
		ui.NewFormatter(cmd.OutOrStdout()).PrintCheck(statuses)
	}
	return checkErr
}

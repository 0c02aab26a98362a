package commands

import (
	"fmt"

	"frg/internal/ui"

	"github.com/spf13/cobra"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	env *Environment
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(env *Environment) *GenerateCommand {
	return &GenerateCommand{env: env}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := gc.env.Config.Flags

	g, err := gc.env.newGenerator(!flags.Stdout)
	if err != nil {
		return err
	}

	plan, err := g.Plan()
	if err != nil {
		return err
	}

	if flags.Stdout {
		out := cmd.OutOrStdout()
		for _, artifact := range plan.Artifacts {
			if len(plan.Artifacts) > 1 {
				fmt.Fprintf(out, "// ==> %s <==\n", artifact.Path)
			}
			if _, err := out.Write(artifact.Content); err != nil {
				return err
			}
		}
		return nil
	}

	statuses, err := g.Apply(plan)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		ui.NewFormatter(cmd.OutOrStdout()).PrintSummary(plan.Discovery, statuses)
	}
	return nil
}

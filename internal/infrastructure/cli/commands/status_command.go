package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheldir/provsh/internal/app"
)

// NewStatusCommand creates the status command
func NewStatusCommand(container *app.Container) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "status VARIABLE",
		Short: "Report whether a variable is effectively configured",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := container.StatusService.Check(cmd.Context(), args[0], profile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Variable: %s\n", status.Variable)
			fmt.Fprintf(out, "Dialect:  %s\n", status.Dialect)
			if status.ProfilePath != "" {
				fmt.Fprintf(out, "Profile:  %s (exists: %v)\n", status.ProfilePath, status.ProfileExists)
			} else {
				fmt.Fprintln(out, "Profile:  <unresolved>")
			}
			fmt.Fprintf(out, "Set in environment:   %v\n", status.SetInEnv)
			fmt.Fprintf(out, "Set in shell profile: %v\n", status.SetInProfile)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Explicit profile file to inspect")
	return cmd
}

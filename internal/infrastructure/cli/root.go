package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sheldir/provsh/internal/app"
	"github.com/sheldir/provsh/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "provsh",
		Short: "provsh - idempotent shell profile provisioning",
		Long:  "provsh writes environment variables into shell profiles (zsh, bash, PowerShell) exactly once, without disturbing the rest of the file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewSetCommand(container))
	root.AddCommand(commands.NewStatusCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	return root, nil
}

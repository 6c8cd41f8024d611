package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sheldir/provsh/internal/app"
	"github.com/sheldir/provsh/internal/domain"
	"github.com/sheldir/provsh/internal/services"
)

// NewSetCommand creates the set command
func NewSetCommand(container *app.Container) *cobra.Command {
	var profile string
	var placeholders []string

	cmd := &cobra.Command{
		Use:   "set VARIABLE [VALUE]",
		Short: "Provision an environment variable into the shell profile",
		Long:  "Writes a marked export block for VARIABLE into the active shell's profile. Without VALUE the settings sidecar is consulted. Repeated runs are no-ops.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := services.ProvisionInput{
				Variable:          args[0],
				ProfilePath:       profile,
				ExtraPlaceholders: placeholders,
			}
			if len(args) == 2 {
				input.Value = args[1]
			}
			result, err := container.ProvisionService.Run(cmd.Context(), input)
			if err != nil {
				return err
			}
			renderResult(cmd.OutOrStdout(), result)
			if result.Status == domain.StatusFailed {
				return fmt.Errorf("%s: %s", result.Variable, result.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Explicit profile file to write (overrides shell detection)")
	cmd.Flags().StringSliceVar(&placeholders, "placeholder", nil, "Additional values to treat as \"not configured\"")

	return cmd
}

// renderResult prints one provisioning outcome
func renderResult(out io.Writer, result domain.ProvisionResult) {
	switch result.Status {
	case domain.StatusUpdated:
		fmt.Fprintf(out, "Updated %s\n", result.ProfilePath)
		fmt.Fprintf(out, "Reload with: %s\n", result.ReloadHint)
	case domain.StatusSkipped:
		fmt.Fprintf(out, "Skipped: %s\n", result.Reason)
	case domain.StatusFailed:
		fmt.Fprintf(out, "Failed: %s\n", result.Reason)
	}
}

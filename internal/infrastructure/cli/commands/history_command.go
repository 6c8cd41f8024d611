package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sheldir/provsh/internal/app"
	"github.com/sheldir/provsh/internal/domain"
)

const msgNoHistoryRecorded = "No provisioning history recorded yet."

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the provision log",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent provisioning attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryEntries(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the provision log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ProvisionLog == nil {
				return fmt.Errorf("provision log unavailable")
			}
			if err := container.ProvisionLog.Clear(); err != nil {
				return fmt.Errorf("failed to clear provision log: %w", err)
			}
			return nil
		},
	}
}

// newHistoryExportCommand creates the 'history export' subcommand
func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export the provision log to a JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ProvisionLog == nil {
				return fmt.Errorf("provision log unavailable")
			}
			if err := container.ProvisionLog.ExportJSON(args[0]); err != nil {
				return fmt.Errorf("failed to export provision log to %s: %w", args[0], err)
			}
			return nil
		},
	}
}

// listHistoryEntries lists recent provision log entries
func listHistoryEntries(out io.Writer, container *app.Container, limit int) error {
	store := container.ProvisionLog
	if store == nil {
		return fmt.Errorf("provision log unavailable")
	}

	records, err := store.Records(limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve provision log: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, msgNoHistoryRecorded)
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s | %s | %s | %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			rec.Variable,
			rec.Status,
			rec.Reason)
	}

	return nil
}

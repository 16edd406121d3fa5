package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/locqa/locqa/internal/adapters/outbound/tui"
	"github.com/locqa/locqa/internal/domain"
)

func newHistoryCmd() *cobra.Command {
	var (
		jsonOutput bool
		last       int
	)

	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "Show previous QA runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			entries, err := newQAService().History(absPath)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if last > 0 && len(entries) > last {
				entries = entries[len(entries)-last:]
			}

			if jsonOutput {
				if entries == nil {
					entries = []domain.RunEntry{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	cmd.Flags().IntVar(&last, "last", 0, "Show only the most recent N runs")

	return cmd
}

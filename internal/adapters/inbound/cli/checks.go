package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/locqa/locqa/internal/adapters/outbound/tui"
	"github.com/locqa/locqa/internal/domain"
)

// checkerListing is the JSON shape of `locqa checks --json`.
type checkerListing struct {
	Checkers       []domain.Category       `json:"checkers"`
	SeverityPolicy []domain.Classification `json:"severity_policy"`
}

func newChecksCmd() *cobra.Command {
	var (
		path       string
		skip       []string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List the checkers and the severity policy",
		Long:  "Show the checker registry in evaluation order, honoring skip.categories from .locqa.yaml and --skip.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			var override domain.ProjectConfig
			for _, s := range skip {
				override.Skip.Categories = append(override.Skip.Categories, domain.Category(s))
			}

			active, err := newQAService().ActiveCategories(absPath, override)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(checkerListing{Checkers: active, SeverityPolicy: domain.SeverityPolicy()})
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCheckers(active, domain.SeverityPolicy()))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project root holding .locqa.yaml")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Checker categories to skip")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

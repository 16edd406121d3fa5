package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/locqa/locqa/internal/adapters/outbound/config"
	"github.com/locqa/locqa/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		glossary string
		lengths  string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .locqa.yaml configuration file",
		Long:  "Create a .locqa.yaml with the default fail policy and worker count.",
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

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			content := generateConfig(glossary, lengths)

			if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&glossary, "glossary", "glossary.json", "Glossary path written to the config")
	cmd.Flags().StringVar(&lengths, "lengths", "", "Length limits path written to the config")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .locqa.yaml")

	return cmd
}

func generateConfig(glossary, lengths string) string {
	cfg := domain.DefaultConfig()

	var b strings.Builder
	b.WriteString("# locqa configuration\n\n")
	fmt.Fprintf(&b, "glossary: %s\n", glossary)
	if lengths != "" {
		fmt.Fprintf(&b, "lengths: %s\n", lengths)
	} else {
		b.WriteString("# lengths: metadata.json\n")
	}
	b.WriteString("# feedback: feedback/edits.jsonl\n")
	b.WriteString("# output: qa_report.json\n\n")
	fmt.Fprintf(&b, "workers: %d\n", cfg.Workers)
	fmt.Fprintf(&b, "fail_on: %s\n\n", cfg.FailOn)

	b.WriteString("# skip:\n#   categories:\n")
	for _, c := range domain.ValidCategories {
		fmt.Fprintf(&b, "#     - %s\n", c)
	}

	fmt.Fprintf(&b, "\nlog:\n  level: %s\n  format: %s\n", cfg.Log.Level, cfg.Log.Format)
	return b.String()
}

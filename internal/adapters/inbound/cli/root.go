package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/locqa/locqa/internal/adapters/outbound/config"
	"github.com/locqa/locqa/internal/adapters/outbound/feedback"
	"github.com/locqa/locqa/internal/adapters/outbound/gitinfo"
	"github.com/locqa/locqa/internal/adapters/outbound/history"
	"github.com/locqa/locqa/internal/adapters/outbound/report"
	"github.com/locqa/locqa/internal/adapters/outbound/rules"
	"github.com/locqa/locqa/internal/application"
	"github.com/locqa/locqa/internal/pkg/logger"
)

var (
	version = "dev"
	commit  = "none"
)

// historyLimit caps .locqa/history/runs.json.
const historyLimit = 200

type globalFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:   "locqa",
		Short: "Quality checks for translated UI strings",
		Long: "locqa checks batches of translated strings against a glossary, placeholder markers, " +
			"per-key length limits and style rules, and reports every finding as JSON or in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := g.logLevel
			if level == "" {
				level = "warn"
			}
			return logger.Init(level, g.logFormat)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Diagnostic log format (console, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd(&g))
	cmd.AddCommand(newChecksCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// newQAService wires the outbound adapters into the application service.
func newQAService() *application.QAService {
	return application.NewQAService(
		config.New(),
		rules.New(),
		feedback.New(),
		report.New(),
		history.New(historyLimit),
		gitinfo.New(),
	)
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// ExecuteContext runs the root command with ctx; cancelling it aborts a run.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// PrintError reports a command error on stderr.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

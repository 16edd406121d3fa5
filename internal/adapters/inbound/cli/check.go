package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/locqa/locqa/internal/adapters/outbound/records"
	"github.com/locqa/locqa/internal/adapters/outbound/report"
	"github.com/locqa/locqa/internal/adapters/outbound/tui"
	"github.com/locqa/locqa/internal/application"
	"github.com/locqa/locqa/internal/domain"
	"github.com/locqa/locqa/internal/pkg/logger"
)

type checkOptions struct {
	path       string
	csvPath    string
	sourcePath string
	targets    []string
	lang       string
	glossary   string
	lengths    string
	feedback   string
	out        string
	workers    int
	failOn     string
	skip       []string
	jsonOutput bool
	ciMode     bool
	noHistory  bool
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [strings.csv]",
		Short: "Run QA checks over a batch of translated strings",
		Long: "Evaluate every record against the glossary, placeholder, length and style checkers.\n" +
			"Records come from a key,source,target,lang CSV or from go-i18n message files (--source/--target).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if opts.csvPath != "" {
					return errors.New("give the CSV either as an argument or with --csv, not both")
				}
				opts.csvPath = args[0]
			}

			absPath, err := filepath.Abs(opts.path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			src, err := opts.recordSource()
			if err != nil {
				return err
			}

			overrides, err := opts.overrides(g)
			if err != nil {
				return err
			}

			result, err := newQAService().Run(cmd.Context(), application.QARequest{
				ProjectPath: absPath,
				Records:     src,
				Overrides:   overrides,
				NoHistory:   opts.noHistory,
				// .locqa.yaml may contribute log settings.
				OnConfig: func(cfg domain.ProjectConfig) error {
					return logger.Init(cfg.Log.Level, cfg.Log.Format)
				},
			})
			if err != nil {
				return fmt.Errorf("qa run failed: %w", err)
			}

			if opts.jsonOutput {
				data, err := report.Encode(result.Report)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(result.Report, result.Records))
			}

			if opts.ciMode && result.Failed() {
				return fmt.Errorf("qa failed: %d blockers, %d warnings (fail_on=%s)",
					result.Report.Blockers(), result.Report.Warnings(), result.Config.FailOn)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.path, "path", ".", "Project root holding .locqa.yaml and run history")
	f.StringVar(&opts.csvPath, "csv", "", "CSV file with key,source,target,lang columns")
	f.StringVar(&opts.sourcePath, "source", "", "Source-language message file (JSON, YAML or TOML)")
	f.StringSliceVar(&opts.targets, "target", nil, "Translated message file; repeatable")
	f.StringVar(&opts.lang, "lang", "", "Language of the target files when not in their names")
	f.StringVar(&opts.glossary, "glossary", "", "Glossary file (preferred_terms, forbidden)")
	f.StringVar(&opts.lengths, "lengths", "", "Length limits file (length_limits mapping)")
	f.StringVar(&opts.feedback, "feedback", "", "edits.jsonl with reviewer corrections applied before QA")
	f.StringVar(&opts.out, "out", "", "Write the JSON report to this file")
	f.IntVar(&opts.workers, "workers", 0, "Records evaluated in parallel (default from config, 1)")
	f.StringVar(&opts.failOn, "fail-on", "", "CI fail policy: blocker, any or never")
	f.StringSliceVar(&opts.skip, "skip", nil, "Checker categories to skip")
	f.BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON")
	f.BoolVar(&opts.ciMode, "ci", false, "CI mode: exit 1 when the report fails the fail policy")
	f.BoolVar(&opts.noHistory, "no-history", false, "Do not record this run in .locqa/history")

	return cmd
}

func (o checkOptions) recordSource() (domain.RecordSource, error) {
	switch {
	case o.csvPath != "" && o.sourcePath != "":
		return nil, errors.New("use either a CSV or --source/--target message files, not both")
	case o.csvPath != "":
		return records.NewCSVSource(o.csvPath), nil
	case o.sourcePath != "":
		if len(o.targets) == 0 {
			return nil, errors.New("--source needs at least one --target")
		}
		return records.NewMessageSource(o.sourcePath, o.targets, o.lang), nil
	default:
		return nil, errors.New("no records given: pass a CSV file or --source with --target")
	}
}

func (o checkOptions) overrides(g *globalFlags) (domain.ProjectConfig, error) {
	if o.workers < 0 {
		return domain.ProjectConfig{}, fmt.Errorf("--workers must be >= 0 (got %d)", o.workers)
	}
	skip := make([]domain.Category, len(o.skip))
	for i, s := range o.skip {
		skip[i] = domain.Category(s)
	}
	return domain.ProjectConfig{
		Glossary: o.glossary,
		Lengths:  o.lengths,
		Feedback: o.feedback,
		Output:   o.out,
		Workers:  o.workers,
		FailOn:   domain.FailPolicy(o.failOn),
		Skip:     domain.SkipConfig{Categories: skip},
		Log:      domain.LogConfig{Level: g.logLevel, Format: g.logFormat},
	}, nil
}

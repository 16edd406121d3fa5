package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/locqa/locqa/internal/domain"
	"github.com/locqa/locqa/internal/domain/check"
	"github.com/locqa/locqa/internal/pkg/logger"
	"github.com/locqa/locqa/internal/pkg/worker"
)

const poolReleaseTimeout = 5 * time.Second

// QARequest describes one batch run. Records is required; Overrides carries
// explicit values (typically CLI flags) layered over .locqa.yaml.
type QARequest struct {
	ProjectPath string
	Records     domain.RecordSource
	Overrides   domain.ProjectConfig
	NoHistory   bool
	// OnConfig, if set, receives the resolved config before any input is
	// read. An error aborts the run.
	OnConfig func(domain.ProjectConfig) error
}

// QAResult is the outcome of a successful run.
type QAResult struct {
	RunID      string
	Report     *domain.Report
	Records    int
	CommitHash string
	Dirty      bool
	Config     domain.ProjectConfig
}

// Failed applies the run's fail policy to the report.
func (r *QAResult) Failed() bool {
	return r.Report.Failed(r.Config.FailOn)
}

// QAService orchestrates a QA run:
// config → rule set → records → feedback overlay → evaluate → report file → history.
type QAService struct {
	configLoader domain.ConfigLoader
	rulesLoader  domain.RuleSetLoader
	overlay      domain.RecordOverlay
	writer       domain.ReportWriter
	history      domain.RunHistory
	gitInfo      domain.GitInfo

	now   func() time.Time
	newID func() string
}

func NewQAService(
	configLoader domain.ConfigLoader,
	rulesLoader domain.RuleSetLoader,
	overlay domain.RecordOverlay,
	writer domain.ReportWriter,
	history domain.RunHistory,
	gitInfo domain.GitInfo,
) *QAService {
	return &QAService{
		configLoader: configLoader,
		rulesLoader:  rulesLoader,
		overlay:      overlay,
		writer:       writer,
		history:      history,
		gitInfo:      gitInfo,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Config returns the project configuration with overrides applied.
func (s *QAService) Config(projectPath string, overrides domain.ProjectConfig) (domain.ProjectConfig, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	cfg = cfg.Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, err
	}
	return cfg, nil
}

// ActiveCategories lists the checker categories a run would evaluate, in
// registry order.
func (s *QAService) ActiveCategories(projectPath string, overrides domain.ProjectConfig) ([]domain.Category, error) {
	cfg, err := s.Config(projectPath, overrides)
	if err != nil {
		return nil, err
	}
	checkers := check.Without(check.DefaultCheckers(), cfg.Skip.Categories...)
	cats := make([]domain.Category, len(checkers))
	for i, c := range checkers {
		cats[i] = c.Category()
	}
	return cats, nil
}

// History returns the recorded runs for a project, oldest first.
func (s *QAService) History(projectPath string) ([]domain.RunEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Load(projectPath)
}

// Run executes one batch. Any failure before the report is complete returns
// no result; report-file errors fail the run, history errors do not.
func (s *QAService) Run(ctx context.Context, req QARequest) (*QAResult, error) {
	if req.Records == nil {
		return nil, errors.New("no record source given")
	}

	// 1. Config
	cfg, err := s.Config(req.ProjectPath, req.Overrides)
	if err != nil {
		return nil, err
	}
	if req.OnConfig != nil {
		if err := req.OnConfig(cfg); err != nil {
			return nil, err
		}
	}
	runID := s.newID()
	log := logger.With(zap.String("run_id", runID))

	// 2. Rule set
	rules, err := s.rulesLoader.Load(cfg.Glossary, cfg.Lengths)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	if cfg.Glossary == "" {
		log.Warn("No glossary configured; terminology checks have no terms")
	}

	// 3. Records
	recs, err := req.Records.Load()
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	// 4. Reviewer corrections
	if cfg.Feedback != "" && s.overlay != nil {
		recs, err = s.overlay.Apply(cfg.Feedback, recs)
		if err != nil {
			return nil, fmt.Errorf("applying feedback: %w", err)
		}
	}

	// 5. Evaluate
	report, err := s.evaluate(ctx, cfg, recs, rules)
	if err != nil {
		return nil, err
	}

	result := &QAResult{
		RunID:   runID,
		Report:  report,
		Records: len(recs),
		Config:  cfg,
	}

	// 6. Report file
	if cfg.Output != "" {
		if err := s.writer.Write(cfg.Output, report); err != nil {
			return nil, err
		}
		log.Info("Report written", zap.String("path", cfg.Output))
	}

	// 7. Commit stamp and history
	s.stamp(req.ProjectPath, result)
	if !req.NoHistory && s.history != nil {
		entry := domain.NewRunEntry(runID, s.now().UTC().Format(time.RFC3339), result.CommitHash, result.Records, report)
		entry.Dirty = result.Dirty
		if err := s.history.Save(req.ProjectPath, entry); err != nil {
			log.Warn("Failed to save run history", zap.Error(err))
		}
	}

	log.Info("QA run complete",
		zap.Int("records", result.Records),
		zap.Int("issues", report.Summary.Issues),
		zap.Int("blockers", report.Blockers()),
		zap.Bool("pass", report.Summary.Pass),
	)
	return result, nil
}

func (s *QAService) evaluate(ctx context.Context, cfg domain.ProjectConfig, recs []domain.TranslationRecord, rules *domain.RuleSet) (*domain.Report, error) {
	checkers := check.Without(check.DefaultCheckers(), cfg.Skip.Categories...)
	opts := []check.AggregatorOption{}

	if cfg.Workers > 1 && len(recs) > 1 {
		pool, err := worker.New("evaluate", cfg.Workers)
		if err != nil {
			return nil, err
		}
		defer pool.Release(poolReleaseTimeout)
		opts = append(opts, check.WithRunner(pool))
	}

	agg := check.NewAggregator(check.NewEvaluator(checkers...), opts...)
	return agg.Run(ctx, recs, rules)
}

func (s *QAService) stamp(projectPath string, result *QAResult) {
	if s.gitInfo == nil || !s.gitInfo.IsGitRepo(projectPath) {
		return
	}
	hash, err := s.gitInfo.CommitHash(projectPath)
	if err != nil {
		logger.Debug("No commit to stamp", zap.Error(err))
		return
	}
	result.CommitHash = hash
	if dirty, err := s.gitInfo.IsDirty(projectPath); err == nil {
		result.Dirty = dirty
	}
}

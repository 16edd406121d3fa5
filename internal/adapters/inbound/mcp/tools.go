package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/locqa/locqa/internal/adapters/outbound/records"
	"github.com/locqa/locqa/internal/application"
	"github.com/locqa/locqa/internal/domain"
)

// checkResult is the payload of locqa_check.
type checkResult struct {
	RunID   string         `json:"run_id"`
	Records int            `json:"records"`
	Failed  bool           `json:"failed"`
	FailOn  string         `json:"fail_on"`
	Report  *domain.Report `json:"report"`
}

// checkerListing is the payload of locqa_list_checks.
type checkerListing struct {
	Checkers       []domain.Category       `json:"checkers"`
	SeverityPolicy []domain.Classification `json:"severity_policy"`
}

// registerTools registers all locqa MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, svc *application.QAService) {
	s.AddTool(
		mcplib.NewTool("locqa_check",
			mcplib.WithDescription("Run QA checks over translated strings and return the JSON report. "+
				"Give either csv, or source with targets."),
			mcplib.WithString("csv", mcplib.Description("CSV file with key,source,target,lang columns")),
			mcplib.WithString("source", mcplib.Description("Source-language message file")),
			mcplib.WithString("targets", mcplib.Description("Comma-separated translated message files")),
			mcplib.WithString("lang", mcplib.Description("Language of the target files when not in their names")),
			mcplib.WithString("glossary", mcplib.Description("Glossary file; defaults to .locqa.yaml")),
			mcplib.WithString("lengths", mcplib.Description("Length limits file; defaults to .locqa.yaml")),
			mcplib.WithString("feedback", mcplib.Description("edits.jsonl applied before QA")),
			mcplib.WithString("skip", mcplib.Description("Comma-separated checker categories to skip")),
			mcplib.WithNumber("workers", mcplib.Description("Records evaluated in parallel")),
			mcplib.WithBoolean("record_history", mcplib.Description("Append this run to .locqa/history")),
		),
		handleCheck(projectPath, svc),
	)

	s.AddTool(
		mcplib.NewTool("locqa_list_checks",
			mcplib.WithDescription("List the active checkers in evaluation order and the severity of every rule outcome"),
		),
		handleListChecks(projectPath, svc),
	)
}

func handleCheck(projectPath string, svc *application.QAService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		str := func(key string) string {
			v, _ := args[key].(string)
			return strings.TrimSpace(v)
		}

		var src domain.RecordSource
		switch {
		case str("csv") != "" && str("source") != "":
			return errorResult("give either csv or source/targets, not both"), nil
		case str("csv") != "":
			src = records.NewCSVSource(resolve(projectPath, str("csv")))
		case str("source") != "":
			targets := splitAndTrim(str("targets"))
			if len(targets) == 0 {
				return errorResult("source needs at least one target"), nil
			}
			for i, t := range targets {
				targets[i] = resolve(projectPath, t)
			}
			src = records.NewMessageSource(resolve(projectPath, str("source")), targets, str("lang"))
		default:
			return errorResult("no records given: set csv, or source and targets"), nil
		}

		overrides := domain.ProjectConfig{
			Glossary: resolve(projectPath, str("glossary")),
			Lengths:  resolve(projectPath, str("lengths")),
			Feedback: resolve(projectPath, str("feedback")),
		}
		for _, c := range splitAndTrim(str("skip")) {
			overrides.Skip.Categories = append(overrides.Skip.Categories, domain.Category(c))
		}
		if w, ok := args["workers"].(float64); ok && w > 0 {
			overrides.Workers = int(w)
		}
		recordHistory, _ := args["record_history"].(bool)

		result, err := svc.Run(ctx, application.QARequest{
			ProjectPath: projectPath,
			Records:     src,
			Overrides:   overrides,
			NoHistory:   !recordHistory,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("qa run failed: %v", err)), nil
		}

		return jsonResult(checkResult{
			RunID:   result.RunID,
			Records: result.Records,
			Failed:  result.Failed(),
			FailOn:  string(result.Config.FailOn),
			Report:  result.Report,
		})
	}
}

func handleListChecks(projectPath string, svc *application.QAService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		active, err := svc.ActiveCategories(projectPath, domain.ProjectConfig{})
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		return jsonResult(checkerListing{Checkers: active, SeverityPolicy: domain.SeverityPolicy()})
	}
}

// resolve anchors a relative path at the project root. Empty stays empty.
func resolve(projectPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectPath, p)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

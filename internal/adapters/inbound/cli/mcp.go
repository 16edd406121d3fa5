package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	mcpadapter "github.com/locqa/locqa/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

const mcpLong = `Expose locqa to MCP (Model Context Protocol) clients.

Tools:
  locqa_check        run QA over a CSV or message catalogs and return the report
  locqa_list_checks  list active checkers and the severity policy

Resources:
  locqa://config     resolved .locqa.yaml for the project
  locqa://history    recorded runs, oldest first

Relative paths in tool arguments resolve against --path.`

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run QA from MCP clients",
		Long:  mcpLong,
	}
	cmd.AddCommand(newMCPServeCmd(), newMCPToolsCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve locqa tools over stdio",
		Long:  mcpLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newMCPServer(projectPath)
			if err != nil {
				return err
			}
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root holding .locqa.yaml and run history")
	return cmd
}

func newMCPToolsCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the MCP server registers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newMCPServer(projectPath)
			if err != nil {
				return err
			}
			tools := s.ListTools()
			names := make([]string, 0, len(tools))
			for name := range tools {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", name, tools[name].Tool.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root holding .locqa.yaml and run history")
	return cmd
}

func newMCPServer(projectPath string) (*server.MCPServer, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	return mcpadapter.NewLocQAMCPServer(absPath, newQAService()), nil
}

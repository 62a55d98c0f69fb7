package cmd

import (
	"scriptforge/internal/logging"
	"scriptforge/internal/mcpserver"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve script generation as an MCP server on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the
generate_script and list_lengths tools. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
	gen, err := newGenerator(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	server := mcpserver.NewServer(mcpserver.Config{
		ServerName:    cfg.MCP.ServerName,
		ServerVersion: cfg.MCP.ServerVersion,
	}, gen, logger)
	defer server.Close()

	return server.Start(cmd.Context())
}

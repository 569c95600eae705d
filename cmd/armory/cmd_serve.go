package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"armory/internal/logging"
	mcpserver "armory/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveFlags struct {
	policy string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the classifier and
corpus inspection tools.

The server monitors for parent process death and self-terminates when
the client disconnects, so no zombie processes accumulate.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.policy, "policy", "full", "Classification policy: built-in name or YAML path")
}

func runServe(cmd *cobra.Command, _ []string) error {
	policy, err := resolvePolicy(serveFlags.policy)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	srv := mcpserver.NewServer(policy)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting armory MCP server over stdio", "policy", policy.Name)
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/deskbar/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the configured bar",
	Long: `Start a Model Context Protocol (MCP) server that exposes the bar as
tools: list items, invoke them, resolve executables, and change settings.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  deskbar serve
  deskbar serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	configPath, _ := cmd.Flags().GetString("config")

	cfg := server.Config{
		Transport:  transport,
		Port:       port,
		ConfigPath: configPath,
	}
	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return srv.Serve(cfg)
}

// Package server exposes the configured bar over the Model Context
// Protocol so agents can list and invoke items without shell overhead.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/deskbar/internal/config"
	"github.com/mj1618/deskbar/internal/platform"
	"github.com/mj1618/deskbar/internal/version"
)

// Server wraps the MCP server with the platform provider and the loaded
// configuration.
type Server struct {
	provider   *platform.Provider
	cfg        *config.Config
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// Config holds server configuration.
type Config struct {
	Transport  string
	Port       int
	ConfigPath string
}

// New loads the bar configuration, binds it against the platform, and
// registers the tool set.
func New(cfg Config) (*Server, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	barCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	barCfg.Bind(provider)

	s := &Server{
		provider: provider,
		cfg:      barCfg,
	}
	s.mcp = mcpserver.NewMCPServer(
		"deskbar",
		version.Version,
	)
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// items
	s.mcp.AddTool(
		mcp.NewTool("items",
			mcp.WithDescription("List the configured bar items with their buttons and current availability"),
		),
		s.handleItems,
	)

	// invoke
	s.mcp.AddTool(
		mcp.NewTool("invoke",
			mcp.WithDescription("Invoke a bar item: launch its application, open its link, or change its setting"),
			mcp.WithString("item", mcp.Description("Bar item id"), mcp.Required()),
			mcp.WithString("button", mcp.Description("Button id for multi-button items, or a dispatch token (inc, dec, on, off)")),
			mcp.WithBoolean("state", mcp.Description("Toggle state to apply, when the item is a toggle")),
		),
		s.handleInvoke,
	)

	// resolve
	s.mcp.AddTool(
		mcp.NewTool("resolve",
			mcp.WithDescription("Resolve an executable specifier to a concrete launchable target without launching it"),
			mcp.WithString("exe", mcp.Description("Executable specifier: name, path, quoted command line, appx identity, or symbolic id"), mcp.Required()),
		),
		s.handleResolve,
	)

	// setting_get
	s.mcp.AddTool(
		mcp.NewTool("setting_get",
			mcp.WithDescription("Read a setting's current boolean state from the solutions catalogue"),
			mcp.WithString("id", mcp.Description("Setting id in solution/name form"), mcp.Required()),
		),
		s.handleSettingGet,
	)

	// setting_set
	s.mcp.AddTool(
		mcp.NewTool("setting_set",
			mcp.WithDescription("Set a setting's boolean state through the solutions catalogue"),
			mcp.WithString("id", mcp.Description("Setting id in solution/name form"), mcp.Required()),
			mcp.WithBoolean("state", mcp.Description("New state"), mcp.Required()),
		),
		s.handleSettingSet,
	)

	// setting_adjust
	s.mcp.AddTool(
		mcp.NewTool("setting_adjust",
			mcp.WithDescription("Increment or decrement an integer setting"),
			mcp.WithString("id", mcp.Description("Setting id in solution/name form"), mcp.Required()),
			mcp.WithNumber("delta", mcp.Description("Amount to add (default: 1, may be negative)")),
		),
		s.handleSettingAdjust,
	)
}

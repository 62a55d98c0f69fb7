package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"scriptforge/internal/generator"
	"scriptforge/internal/logging"
	"scriptforge/internal/script"
	"scriptforge/ui/tui/state"
)

// Server exposes script generation as MCP tools.
type Server struct {
	mcpServer *mcp.Server
	generator generator.Service
	logger    *slog.Logger
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// NewServer creates a new MCP server instance backed by gen.
func NewServer(cfg Config, gen generator.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		generator: gen,
		logger:    logging.WithComponent(logger, "mcp"),
	}
	s.registerTools()
	return s
}

// GenerateScriptArgs defines the input for the generate_script tool.
type GenerateScriptArgs struct {
	Prompt string `json:"prompt" jsonschema:"the story idea to turn into a screenplay"`
	Length string `json:"length,omitempty" jsonschema:"script length: concise, standard or extended (default standard)"`
}

// ListLengthsArgs is the empty input of the list_lengths tool.
type ListLengthsArgs struct{}

// LengthInfo describes one length option.
type LengthInfo struct {
	ID          string `json:"id" jsonschema:"value to pass as length"`
	Label       string `json:"label"`
	Description string `json:"description"`
	MinScenes   int    `json:"min_scenes"`
	MaxScenes   int    `json:"max_scenes"`
}

// ListLengthsResult wraps the available length options.
type ListLengthsResult struct {
	Lengths []LengthInfo `json:"lengths" jsonschema:"available script lengths"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_script",
		Description: "Turn a short story idea into a structured screenplay: title, characters, plot outline in English and Hindi, a detailed synopsis and numbered scenes with dialogue.",
	}, s.handleGenerateScript)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_lengths",
		Description: "List the script lengths accepted by generate_script and the scene range each one targets.",
	}, s.handleListLengths)
}

// handleGenerateScript runs one generation. Failures carry the same
// user-facing message the TUI shows.
func (s *Server) handleGenerateScript(ctx context.Context, _ *mcp.CallToolRequest, args GenerateScriptArgs) (*mcp.CallToolResult, *script.Result, error) {
	if strings.TrimSpace(args.Prompt) == "" {
		return nil, nil, errors.New("prompt must not be empty")
	}

	length := script.DefaultLength
	if args.Length != "" {
		l, err := script.ParseLength(args.Length)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid length: %w", err)
		}
		length = l
	}

	s.logger.Info("generate_script called", "length", length, "prompt_chars", len(args.Prompt))
	result, err := s.generator.Generate(ctx, args.Prompt, length)
	if err == nil && result == nil {
		err = generator.ErrEmptyResponse
	}
	if err != nil {
		s.logger.Error("generate_script failed", "error", err)
		return nil, nil, errors.New(state.FailureMessage(err))
	}

	// Copy so the generator's value is left untouched.
	out := *result
	out.Scenes = append([]script.Scene(nil), result.Scenes...)
	out.Normalize()
	return nil, &out, nil
}

// handleListLengths reports the length options.
func (s *Server) handleListLengths(_ context.Context, _ *mcp.CallToolRequest, _ ListLengthsArgs) (*mcp.CallToolResult, ListLengthsResult, error) {
	out := ListLengthsResult{Lengths: make([]LengthInfo, 0, len(script.LengthOptions))}
	for _, opt := range script.LengthOptions {
		out.Lengths = append(out.Lengths, LengthInfo{
			ID:          string(opt.ID),
			Label:       opt.Label,
			Description: opt.Description,
			MinScenes:   opt.MinScenes,
			MaxScenes:   opt.MaxScenes,
		})
	}
	return nil, out, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Close releases the generator when it holds a client.
func (s *Server) Close() error {
	if c, ok := s.generator.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/ctvaccess/captvty-bridge/internal/dialog"
	"github.com/ctvaccess/captvty-bridge/internal/model"
	"github.com/ctvaccess/captvty-bridge/internal/output"
	"github.com/ctvaccess/captvty-bridge/internal/version"
)

// mcpServer wraps the MCP server with a shared bridge. Every tool call
// synthesizes real input on the one running Captvty instance, so calls
// are serialized behind bridgeMu.
type mcpServer struct {
	bridge   *bridge
	bridgeMu sync.Mutex
	mcp      *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all bridge tools.
func newMCPServer() (*mcpServer, error) {
	b, err := newBridge()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{bridge: b}
	s.mcp = mcpserver.NewMCPServer(
		"captvty-bridge",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

func (s *mcpServer) close() {
	s.bridge.Close()
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
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

func (s *mcpServer) registerTools() {
	// app-mode
	s.mcp.AddTool(
		mcp.NewTool("app-mode",
			mcp.WithDescription("Report which operating mode Captvty is currently in (direct, rattrapage, telechargement or other). The mode is read from on-screen state."),
		),
		s.handleAppMode,
	)

	// select-mode
	s.mcp.AddTool(
		mcp.NewTool("select-mode",
			mcp.WithDescription("Switch Captvty to the named operating mode by clicking its mode button."),
			mcp.WithString("mode", mcp.Required(), mcp.Description("Target mode: direct, rattrapage, telechargement")),
		),
		s.handleSelectMode,
	)

	// list-channels
	s.mcp.AddTool(
		mcp.NewTool("list-channels",
			mcp.WithDescription("List the channels shown in the current mode's channel column, with their names and screen bounds."),
		),
		s.handleListChannels,
	)

	// schedule-recording
	s.mcp.AddTool(
		mcp.NewTool("schedule-recording",
			mcp.WithDescription("Schedule a recording on a direct-mode channel by filling Captvty's recording dialog. Times use dd/mm/yyyy hh:mm."),
			mcp.WithString("channel", mcp.Required(), mcp.Description("Channel name, matched exactly")),
			mcp.WithString("from", mcp.Required(), mcp.Description("Recording start (dd/mm/yyyy hh:mm)")),
			mcp.WithString("to", mcp.Required(), mcp.Description("Recording end (dd/mm/yyyy hh:mm)")),
		),
		s.handleScheduleRecording,
	)

	// tree
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Dump the foreground window's accessibility tree. For diagnosing layout drift after a Captvty update."),
			mcp.WithNumber("depth", mcp.Description("Max depth to capture (0 = unlimited)")),
			mcp.WithBoolean("flat", mcp.Description("Flat list with path breadcrumbs instead of a tree")),
		),
		s.handleTree,
	)
}

// resultToText serializes a result struct to YAML for an MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

func (s *mcpServer) handleAppMode(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.bridgeMu.Lock()
	defer s.bridgeMu.Unlock()

	mode, err := s.bridge.session.AppMode()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.ModeResult{Mode: mode.String()})), nil
}

func (s *mcpServer) handleSelectMode(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target, err := parseAppMode(StringParam(params, "mode", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.bridgeMu.Lock()
	defer s.bridgeMu.Unlock()

	if err := s.bridge.session.SelectMode(target); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.ModeResult{Mode: target.String()})), nil
}

func (s *mcpServer) handleListChannels(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.bridgeMu.Lock()
	defer s.bridgeMu.Unlock()

	mode, err := s.bridge.session.AppMode()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	channels, err := s.bridge.resolver.ChannelList()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := output.ChannelsResult{
		Mode:     mode.String(),
		TS:       time.Now().Unix(),
		Channels: make([]output.Channel, 0, len(channels)),
	}
	for _, ch := range channels {
		entry := output.Channel{Name: ch.Name()}
		if rect, err := ch.Location(); err == nil {
			entry.Bounds = [4]int{rect.Left, rect.Top, rect.Width, rect.Height}
		}
		result.Channels = append(result.Channels, entry)
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleScheduleRecording(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	channel := StringParam(params, "channel", "")
	if channel == "" {
		return mcp.NewToolResultError("channel must not be empty"), nil
	}
	win, err := parseWindow(StringParam(params, "from", ""), StringParam(params, "to", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.bridgeMu.Lock()
	defer s.bridgeMu.Unlock()

	if err := s.bridge.session.ScheduleRecording(ctx, channel, win); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.RecordResult{
		Channel: channel,
		Start:   win.Start.Format(dialog.TimeLayout),
		End:     win.End.Format(dialog.TimeLayout),
	})), nil
}

func (s *mcpServer) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	depth := IntParam(params, "depth", 0)
	flat := BoolParam(params, "flat", false)

	s.bridgeMu.Lock()
	defer s.bridgeMu.Unlock()

	win, err := s.bridge.provider.Reader.Foreground()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap := model.Snapshot(win, depth)
	ts := time.Now().Unix()
	nodes := snap.Count()
	if flat {
		return mcp.NewToolResultText(resultToText(output.TreeFlatResult{
			Window:   win.Name(),
			TS:       ts,
			Nodes:    nodes,
			Elements: model.Flatten(snap),
		})), nil
	}
	return mcp.NewToolResultText(resultToText(output.TreeResult{Window: win.Name(), TS: ts, Nodes: nodes, Tree: snap})), nil
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voxtools/deepgram-mcp-server/internal/protocol"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "deepgram-mcp"
	serverVersion   = "0.1.0"

	// codeInternalError is the single sentinel code every handler failure
	// maps to at the dispatch boundary.
	codeInternalError = -32603
)

// Server handles MCP JSON-RPC requests against a toolbox.
type Server struct {
	toolbox *Toolbox
}

// NewServer wires a toolbox into an MCP server.
func NewServer(tb *Toolbox) *Server {
	return &Server{toolbox: tb}
}

// Handle routes a single request and normalizes the outcome into a response.
// Every handler failure is converted here to a -32603 error; nothing escapes.
// The request id is echoed verbatim, including when absent: a request with no
// id still gets an id-less response rather than being suppressed.
func (s *Server) Handle(ctx context.Context, req protocol.Request) protocol.Response {
	result, err := s.route(ctx, req)
	if err != nil {
		return protocol.Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &protocol.ResponseError{Code: codeInternalError, Message: err.Error()},
		}
	}
	return protocol.Response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

func (s *Server) route(ctx context.Context, req protocol.Request) (any, error) {
	switch req.Method {
	case "initialize":
		return map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]string{
				"name":    serverName,
				"version": serverVersion,
			},
		}, nil
	case "tools/list":
		return protocol.ListResult{Tools: s.toolbox.Describe()}, nil
	case "tools/call":
		return s.handleToolCall(ctx, req.Params)
	default:
		return nil, fmt.Errorf("Unknown method: %s", req.Method)
	}
}

func (s *Server) handleToolCall(ctx context.Context, raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("Missing params")
	}
	var params protocol.CallParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if params.Name == "" {
		return nil, fmt.Errorf("Missing tool name")
	}
	arguments := params.Args
	if arguments == nil {
		arguments = map[string]any{}
	}
	return s.toolbox.Call(ctx, params.Name, arguments)
}

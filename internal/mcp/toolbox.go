package mcp

import (
	"context"
	"fmt"

	"github.com/voxtools/deepgram-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, args map[string]any) (protocol.CallResult, error)
}

// Toolbox stores and dispatches tools by name. Registration order is
// preserved so tools/list output is stable.
type Toolbox struct {
	order []string
	tools map[string]Tool
}

// NewToolbox constructs a toolbox with the provided tools.
func NewToolbox(tools ...Tool) *Toolbox {
	tb := &Toolbox{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		desc := t.Descriptor()
		if _, ok := tb.tools[desc.Name]; !ok {
			tb.order = append(tb.order, desc.Name)
		}
		tb.tools[desc.Name] = t
	}
	return tb
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call invokes a named tool.
func (tb *Toolbox) Call(ctx context.Context, name string, args map[string]any) (protocol.CallResult, error) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.CallResult{}, fmt.Errorf("Unknown tool: %s", name)
	}
	return tool.Invoke(ctx, args)
}

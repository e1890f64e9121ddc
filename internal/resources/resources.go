// Package resources implements MCP resource handlers.
//
// Resources provide read-only data the host can consume for context,
// addressed by URI (noema://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/noema-dev/noema/internal/session"
)

// Handler serves the session resource endpoints.
type Handler struct {
	state *session.State
}

// NewHandler creates a resource Handler bound to the session.
func NewHandler(state *session.State) *Handler {
	return &Handler{state: state}
}

// StatusResource returns the MCP resource definition for session status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"noema://session/status",
		"Session Status",
		mcp.WithResourceDescription("Current session counters: thoughts, branches, graph size, average quality"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current session counters as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(h.state.Stats(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

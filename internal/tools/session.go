package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/noema-dev/noema/internal/archive"
	"github.com/noema-dev/noema/internal/session"
)

// SessionExportTool handles the session_export MCP tool: it dumps the
// current session to a SQLite archive file. Archives are write-only — the
// server never loads them, so exporting does not make state survive a
// restart.
type SessionExportTool struct {
	state  *session.State
	writer *archive.Writer
}

// NewSessionExportTool creates a SessionExportTool.
func NewSessionExportTool(state *session.State, writer *archive.Writer) *SessionExportTool {
	return &SessionExportTool{state: state, writer: writer}
}

// Definition returns the MCP tool definition for registration.
func (t *SessionExportTool) Definition() mcp.Tool {
	return mcp.NewTool("session_export",
		mcp.WithDescription(
			"Dump the current session (thoughts, knowledge graph, quality scores) to a "+
				"timestamped SQLite file for offline inspection. The server never reads "+
				"archives back; session state still resets on restart.",
		),
	)
}

// exportReport is the success payload of session_export.
type exportReport struct {
	SessionID string         `json:"session_id"`
	Path      string         `json:"path"`
	Counts    archive.Counts `json:"counts"`
}

// Handle processes the session_export tool call.
func (t *SessionExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := t.state.Export()

	path, counts, err := t.writer.Export(snap)
	if err != nil {
		return failedResult(fmt.Sprintf("exporting session: %v", err)), nil
	}

	return jsonResult(exportReport{
		SessionID: snap.SessionID,
		Path:      path,
		Counts:    counts,
	}), nil
}

// ─── SessionResetTool ────────────────────────────────────────────────────────

// SessionResetTool handles the session_reset MCP tool: it discards all
// accumulated session state and starts a fresh session.
type SessionResetTool struct {
	state *session.State
}

// NewSessionResetTool creates a SessionResetTool.
func NewSessionResetTool(state *session.State) *SessionResetTool {
	return &SessionResetTool{state: state}
}

// Definition returns the MCP tool definition for registration.
func (t *SessionResetTool) Definition() mcp.Tool {
	return mcp.NewTool("session_reset",
		mcp.WithDescription(
			"Discard the current session: thought history, branches, knowledge graph and "+
				"quality scores. Returns the counters of the discarded state. Irreversible "+
				"unless the session was exported first.",
		),
	)
}

// resetReport is the success payload of session_reset.
type resetReport struct {
	Discarded session.Stats `json:"discarded"`
	Status    string        `json:"status"`
}

// Handle processes the session_reset tool call.
func (t *SessionResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	discarded := t.state.Reset()
	return jsonResult(resetReport{Discarded: discarded, Status: "reset"}), nil
}

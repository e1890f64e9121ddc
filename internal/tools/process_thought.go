package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/noema-dev/noema/internal/session"
)

// ProcessThoughtTool handles the process_thought MCP tool: one free-text
// thought in, a full annotation report out.
type ProcessThoughtTool struct {
	state *session.State
}

// NewProcessThoughtTool creates a ProcessThoughtTool bound to the session.
func NewProcessThoughtTool(state *session.State) *ProcessThoughtTool {
	return &ProcessThoughtTool{state: state}
}

// Definition returns the MCP tool definition for registration.
func (t *ProcessThoughtTool) Definition() mcp.Tool {
	return mcp.NewTool("process_thought",
		mcp.WithDescription(
			"Analyze one thought in a numbered thinking session. Returns a JSON report with "+
				"domain classification, keywords, six abstraction-level restatements, quality "+
				"scores, advisory suggestions, and knowledge-graph insights accumulated across "+
				"the session. Programming-related thoughts additionally get code analysis and "+
				"software-engineering notes.",
		),
		mcp.WithString("thought",
			mcp.Required(),
			mcp.Description("The thought text to analyze"),
		),
		mcp.WithNumber("thoughtNumber",
			mcp.Required(),
			mcp.Description("Position of this thought in the session, starting at 1"),
		),
		mcp.WithNumber("totalThoughts",
			mcp.Required(),
			mcp.Description("Expected total number of thoughts in the session (raised automatically if exceeded)"),
		),
		mcp.WithBoolean("nextThoughtNeeded",
			mcp.Required(),
			mcp.Description("Whether another thought is expected after this one"),
		),
		mcp.WithBoolean("isRevision",
			mcp.Description("Marks this thought as revising an earlier one"),
		),
		mcp.WithNumber("revisesThought",
			mcp.Description("Number of the thought being revised"),
		),
		mcp.WithNumber("branchFromThought",
			mcp.Description("Thought number this branch originates from"),
		),
		mcp.WithString("branchId",
			mcp.Description("Identifier of the branch this thought belongs to"),
		),
		mcp.WithBoolean("needsMoreThoughts",
			mcp.Description("Signals that totalThoughts underestimates the remaining work"),
		),
	)
}

// Handle processes the process_thought tool call. Validation failures are
// returned as {error, status:"failed"} with isError set; they never produce
// partial output.
func (t *ProcessThoughtTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	thought, err := req.RequireString("thought")
	if err != nil {
		return failedResult(err.Error()), nil
	}
	thoughtNumber, err := req.RequireInt("thoughtNumber")
	if err != nil {
		return failedResult(err.Error()), nil
	}
	totalThoughts, err := req.RequireInt("totalThoughts")
	if err != nil {
		return failedResult(err.Error()), nil
	}
	nextNeeded, err := req.RequireBool("nextThoughtNeeded")
	if err != nil {
		return failedResult(err.Error()), nil
	}

	if thoughtNumber < 1 {
		return failedResult(fmt.Sprintf("thoughtNumber must be >= 1, got %d", thoughtNumber)), nil
	}
	if totalThoughts < 1 {
		return failedResult(fmt.Sprintf("totalThoughts must be >= 1, got %d", totalThoughts)), nil
	}

	report := t.state.Process(session.Thought{
		Thought:           thought,
		ThoughtNumber:     thoughtNumber,
		TotalThoughts:     totalThoughts,
		NextThoughtNeeded: nextNeeded,
		IsRevision:        req.GetBool("isRevision", false),
		RevisesThought:    req.GetInt("revisesThought", 0),
		BranchFromThought: req.GetInt("branchFromThought", 0),
		BranchID:          req.GetString("branchId", ""),
		NeedsMoreThoughts: req.GetBool("needsMoreThoughts", false),
	})

	return jsonResult(report), nil
}

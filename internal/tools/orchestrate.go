package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/noema-dev/noema/internal/orchestrator"
)

// OrchestrateTool handles the orchestrate MCP tool: a problem statement in,
// a simulated multi-step planning run out. All "tool calls" in the trace
// are internal stubs — nothing leaves the process.
type OrchestrateTool struct{}

// NewOrchestrateTool creates an OrchestrateTool.
func NewOrchestrateTool() *OrchestrateTool {
	return &OrchestrateTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *OrchestrateTool) Definition() mcp.Tool {
	return mcp.NewTool("orchestrate",
		mcp.WithDescription(
			"Run a bounded multi-step planning loop over a problem statement. The problem is "+
				"classified once, a canned phase sequence is selected (architecture, algorithmic, "+
				"business, or a generic plan), and each step runs an internal analysis pass. "+
				"Returns the synthesized solution narrative, the cognitive trace, the tools "+
				"invoked, an accumulated confidence score, and the elapsed time.",
		),
		mcp.WithString("problem_statement",
			mcp.Required(),
			mcp.Description("The problem to analyze"),
		),
		mcp.WithBoolean("autonomous_mode",
			mcp.Description("When false, skip the phase loop and return a lightweight summary/sentiment/tone extraction (default: true)"),
		),
		mcp.WithNumber("max_cognitive_steps",
			mcp.Description("Number of loop iterations, clamped to 1-10 (default: 5)"),
		),
		mcp.WithArray("focus_areas",
			mcp.Description("Optional focus labels echoed into the trace arguments"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the orchestrate tool call.
func (t *OrchestrateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	problem, err := req.RequireString("problem_statement")
	if err != nil {
		return failedResult(err.Error()), nil
	}

	if !req.GetBool("autonomous_mode", true) {
		return jsonResult(orchestrator.Summarize(problem)), nil
	}

	maxSteps := req.GetInt("max_cognitive_steps", 5)
	focusAreas := req.GetStringSlice("focus_areas", nil)

	return jsonResult(orchestrator.Run(problem, maxSteps, focusAreas)), nil
}

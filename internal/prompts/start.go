// Package prompts implements MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which the
// AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the noema-start MCP prompt. It guides the AI through
// running a numbered thinking session against process_thought.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("noema-start",
		mcp.WithPromptDescription(
			"Start a structured thinking session. Guides you through numbering your "+
				"thoughts, reviewing the quality scores and suggestions after each one, "+
				"and watching the knowledge graph accumulate.",
		),
		mcp.WithArgument("topic",
			mcp.ArgumentDescription("What the thinking session is about"),
		),
	)
}

// Handle processes the noema-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := "my problem"
	if args := req.Params.Arguments; args != nil {
		if t, ok := args["topic"]; ok && t != "" {
			topic = t
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Structured thinking session: %s", topic),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to think through '%s' in a structured session.\n\n"+
						"Please:\n"+
						"1. Call `process_thought` with my first thought, thoughtNumber=1 and an honest totalThoughts estimate\n"+
						"2. After each thought, review the quality scores and act on the top suggestion\n"+
						"3. Use branchId/branchFromThought when exploring an alternative line of reasoning\n"+
						"4. Watch the graph_insights for central concepts emerging across thoughts\n"+
						"5. When done, call `session_export` if the session is worth keeping for offline review",
					topic,
				)),
			},
		},
	}, nil
}

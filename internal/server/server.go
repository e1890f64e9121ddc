// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it constructs the session state and the
// archive writer and injects them into the tools, prompt and resource
// handlers. No business logic lives here — only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/noema-dev/noema/internal/archive"
	"github.com/noema-dev/noema/internal/config"
	"github.com/noema-dev/noema/internal/prompts"
	"github.com/noema-dev/noema/internal/resources"
	"github.com/noema-dev/noema/internal/session"
	"github.com/noema-dev/noema/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts and
// resources registered. All session state lives in one State constructed
// here; nothing is persisted, so there is no cleanup to run on shutdown.
func New() *server.MCPServer {
	cfg := config.Default()

	state := session.New(cfg.MaxSuggestions, cfg.MaxInsights)
	writer := archive.NewWriter(cfg.DataDir)

	s := server.NewMCPServer(
		"noema",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register analysis tools ---

	processThought := tools.NewProcessThoughtTool(state)
	s.AddTool(processThought.Definition(), processThought.Handle)

	orchestrate := tools.NewOrchestrateTool()
	s.AddTool(orchestrate.Definition(), orchestrate.Handle)

	// --- Register session tools ---

	exportTool := tools.NewSessionExportTool(state, writer)
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	resetTool := tools.NewSessionResetTool(state)
	s.AddTool(resetTool.Definition(), resetTool.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(state)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)

	return s
}

// serverInstructions returns the system instructions that tell the AI how
// to use the server effectively.
func serverInstructions() string {
	return `You have access to Noema, a cognitive-annotation MCP server.

## Tools

### process_thought
Call this once per thought in a numbered thinking session. Each call returns
a JSON report:
- context: domain classification, keywords, complexity, confidence
- abstraction: six independent restatements, from concrete elements (level 0)
  to theoretical framing (level 5)
- quality: coherence, relevance, novelty, depth, clarity and their mean,
  all in [0,1]
- suggestions: up to 3 prioritized next steps (explore, clarify, challenge,
  synthesize, validate)
- graph_insights: central concepts and strong relationships accumulated
  across every thought in the session
- code_analysis / engineering_insights: present only when the thought is
  classified into a programming domain

Numbering rules:
- thoughtNumber starts at 1; totalThoughts is your estimate and is raised
  automatically if thoughtNumber exceeds it
- Use isRevision/revisesThought when reconsidering an earlier thought
- Use branchFromThought + branchId to explore an alternative line of
  reasoning without losing the main one

The knowledge graph is cumulative: concepts repeat-mentioned across thoughts
gain frequency, and relationships observed twice or more surface as strong.
Phrase relationships explicitly ("X depends on Y", "X leads to Y") to get
labeled edges instead of generic co-occurrence.

### orchestrate
Call this with a problem_statement to run a bounded planning simulation.
The problem is classified once (architecture, algorithmic, business, or
general), a canned phase sequence is selected, and up to max_cognitive_steps
internal analysis passes run. The result contains the synthesized solution,
the full cognitive trace, and an accumulated confidence score. All analysis
is internal — no external tools, files or network are touched.

Set autonomous_mode=false for a quick summary/sentiment/tone extraction
instead of the full loop.

### session_export / session_reset
session_export dumps the current session to a SQLite file for offline
inspection (write-only: the server never reads archives back, and state
still resets on restart). session_reset discards everything and starts a
fresh session — export first if the session is worth keeping.

## Important
- All state is per-process: a server restart always starts empty
- Scores and labels come from deterministic text heuristics, not from a
  language model — treat them as structural signals, not judgements`
}

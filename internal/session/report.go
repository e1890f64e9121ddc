package session

import (
	"github.com/noema-dev/noema/internal/analysis"
	"github.com/noema-dev/noema/internal/suggest"
)

// ThoughtReport is the structured result of processing one thought. It is
// the success variant of the thought-processing operation; the failure
// variant is the {error, status} payload built at the tool boundary.
type ThoughtReport struct {
	Thought           Thought                       `json:"thought"`
	BranchCount       int                           `json:"branch_count"`
	HistoryLength     int                           `json:"history_length"`
	Context           analysis.ContextSnapshot      `json:"context"`
	Abstraction       analysis.AbstractionChain     `json:"abstraction"`
	Quality           analysis.Scores               `json:"quality"`
	Suggestions       []suggest.Suggestion          `json:"suggestions"`
	GraphInsights     []string                      `json:"graph_insights"`
	GraphNodeCount    int                           `json:"graph_node_count"`
	GraphEdgeCount    int                           `json:"graph_edge_count"`
	CodeAnalysis      *analysis.CodeAnalysis        `json:"code_analysis,omitempty"`
	EngineeringNotes  *analysis.EngineeringInsights `json:"engineering_insights,omitempty"`
	NextThoughtNeeded bool                          `json:"next_thought_needed"`
}

// Process runs the full annotation pipeline for one thought: bookkeeping,
// lexical context, abstraction levels, quality scores, graph update,
// suggestions, and — for programming domains — code analysis.
//
// The totalThoughts invariant is enforced here: if thoughtNumber exceeds
// totalThoughts, totalThoughts is raised to match, so the echoed numbering
// is always consistent.
func (s *State) Process(t Thought) *ThoughtReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ThoughtNumber > t.TotalThoughts {
		t.TotalThoughts = t.ThoughtNumber
	}

	previous := ""
	if len(s.history) > 0 {
		previous = s.history[len(s.history)-1].Thought
	}
	priorTexts := make([]string, len(s.history))
	for i, h := range s.history {
		priorTexts[i] = h.Thought
	}

	s.record(t)

	snapshot := analysis.ExtractContext(t.Thought)
	s.snapshot = snapshot

	quality := analysis.ScoreQuality(t.Thought, previous, priorTexts, snapshot.Keywords)
	s.scores[t.ThoughtNumber] = quality

	s.graph.Observe(t.Thought, t.ThoughtNumber)

	allTexts := append(priorTexts, t.Thought)
	suggestions := suggest.Generate(allTexts, snapshot.Complexity)
	if len(suggestions) > s.maxSuggestions {
		suggestions = suggestions[:s.maxSuggestions]
	}

	insights := s.graph.Insights()
	if len(insights) > s.maxInsights {
		insights = insights[:s.maxInsights]
	}

	nodes, edges := s.graph.Counts()

	report := &ThoughtReport{
		Thought:           t,
		BranchCount:       len(s.branches),
		HistoryLength:     len(s.history),
		Context:           snapshot,
		Abstraction:       analysis.RenderAbstraction(t.Thought),
		Quality:           quality,
		Suggestions:       suggestions,
		GraphInsights:     insights,
		GraphNodeCount:    nodes,
		GraphEdgeCount:    edges,
		NextThoughtNeeded: t.NextThoughtNeeded,
	}

	if analysis.IsProgrammingDomain(snapshot.Domain) {
		code := analysis.AnalyzeCode(t.Thought, snapshot.Complexity)
		notes := analysis.DeriveInsights(code)
		report.CodeAnalysis = &code
		report.EngineeringNotes = &notes
	}

	return report
}

// Package session owns all state that lives for the lifetime of one server
// process: the ordered thought history, the branch map, the latest context
// snapshot, the per-thought quality scores, and the knowledge graph.
//
// The logical model is request-at-a-time, but mcp-go may dispatch handlers
// concurrently, so a single mutex serializes all mutation. Nothing here is
// persisted — a restart always starts from an empty state.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noema-dev/noema/internal/analysis"
	"github.com/noema-dev/noema/internal/graph"
)

// timeNow is a var to allow test injection.
var timeNow = time.Now

// Thought is one unit of input to thought processing, numbered within the
// session. Optional fields describe revisions and branches.
type Thought struct {
	Thought           string `json:"thought"`
	ThoughtNumber     int    `json:"thoughtNumber"`
	TotalThoughts     int    `json:"totalThoughts"`
	NextThoughtNeeded bool   `json:"nextThoughtNeeded"`
	IsRevision        bool   `json:"isRevision,omitempty"`
	RevisesThought    int    `json:"revisesThought,omitempty"`
	BranchFromThought int    `json:"branchFromThought,omitempty"`
	BranchID          string `json:"branchId,omitempty"`
	NeedsMoreThoughts bool   `json:"needsMoreThoughts,omitempty"`
}

// State is the session-lifetime store. Construct with New; reset explicitly
// with Reset.
type State struct {
	mu sync.Mutex

	sessionID string
	startedAt time.Time

	history     []Thought
	branches    map[string][]Thought
	branchOrder []string
	snapshot    analysis.ContextSnapshot
	scores      map[int]analysis.Scores
	graph       *graph.Graph

	maxSuggestions int
	maxInsights    int
}

// New creates an empty session state. maxSuggestions and maxInsights bound
// the advisory lists in thought reports.
func New(maxSuggestions, maxInsights int) *State {
	return &State{
		sessionID:      uuid.NewString(),
		startedAt:      timeNow(),
		branches:       make(map[string][]Thought),
		scores:         make(map[int]analysis.Scores),
		graph:          graph.New(),
		maxSuggestions: maxSuggestions,
		maxInsights:    maxInsights,
	}
}

// SessionID returns the identifier assigned at construction.
func (s *State) SessionID() string {
	return s.sessionID
}

// record appends the thought to the history and, when it declares both a
// branch origin and a branch id, to that branch's sequence. The caller
// holds the mutex.
func (s *State) record(t Thought) {
	s.history = append(s.history, t)
	if t.BranchFromThought > 0 && t.BranchID != "" {
		if _, ok := s.branches[t.BranchID]; !ok {
			s.branchOrder = append(s.branchOrder, t.BranchID)
		}
		s.branches[t.BranchID] = append(s.branches[t.BranchID], t)
	}
}

// Stats is a read-only snapshot of session counters, served by the status
// resource.
type Stats struct {
	SessionID      string  `json:"session_id"`
	StartedAt      string  `json:"started_at"`
	ThoughtCount   int     `json:"thought_count"`
	BranchCount    int     `json:"branch_count"`
	ConceptCount   int     `json:"concept_count"`
	RelationCount  int     `json:"relation_count"`
	AverageQuality float64 `json:"average_quality"`
}

// Stats returns the current session counters.
func (s *State) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes, edges := s.graph.Counts()
	avg := 0.0
	if len(s.scores) > 0 {
		sum := 0.0
		for _, sc := range s.scores {
			sum += sc.Overall
		}
		avg = sum / float64(len(s.scores))
	}

	return Stats{
		SessionID:      s.sessionID,
		StartedAt:      s.startedAt.UTC().Format(time.RFC3339),
		ThoughtCount:   len(s.history),
		BranchCount:    len(s.branches),
		ConceptCount:   nodes,
		RelationCount:  edges,
		AverageQuality: avg,
	}
}

// Export is a full copy of the session state for archiving. The archive
// writer consumes it without holding the session lock.
type Export struct {
	SessionID string
	StartedAt time.Time
	Thoughts  []Thought
	Nodes     []graph.Node
	Edges     []graph.Edge
	Scores    map[int]analysis.Scores
}

// Export copies the session state for the archive writer.
func (s *State) Export() Export {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes, edges := s.graph.Export()
	thoughts := make([]Thought, len(s.history))
	copy(thoughts, s.history)
	scores := make(map[int]analysis.Scores, len(s.scores))
	for k, v := range s.scores {
		scores[k] = v
	}

	return Export{
		SessionID: s.sessionID,
		StartedAt: s.startedAt,
		Thoughts:  thoughts,
		Nodes:     nodes,
		Edges:     edges,
		Scores:    scores,
	}
}

// Reset discards all accumulated state and assigns a fresh session ID.
// It returns the counters of the discarded state.
func (s *State) Reset() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes, edges := s.graph.Counts()
	discarded := Stats{
		SessionID:     s.sessionID,
		StartedAt:     s.startedAt.UTC().Format(time.RFC3339),
		ThoughtCount:  len(s.history),
		BranchCount:   len(s.branches),
		ConceptCount:  nodes,
		RelationCount: edges,
	}

	s.sessionID = uuid.NewString()
	s.startedAt = timeNow()
	s.history = nil
	s.branches = make(map[string][]Thought)
	s.branchOrder = nil
	s.snapshot = analysis.ContextSnapshot{}
	s.scores = make(map[int]analysis.Scores)
	s.graph = graph.New()

	return discarded
}

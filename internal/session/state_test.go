package session

import (
	"strings"
	"testing"
	"time"
)

func init() {
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return frozen }
}

func newTestState() *State {
	return New(3, 6)
}

func TestProcess_RaisesTotalThoughts(t *testing.T) {
	s := newTestState()
	report := s.Process(Thought{Thought: "overflow check", ThoughtNumber: 7, TotalThoughts: 5})
	if report.Thought.TotalThoughts != 7 {
		t.Errorf("totalThoughts = %d, want raised to 7", report.Thought.TotalThoughts)
	}
}

func TestProcess_PreservesTotalThoughtsWhenConsistent(t *testing.T) {
	s := newTestState()
	report := s.Process(Thought{Thought: "within bounds", ThoughtNumber: 2, TotalThoughts: 5})
	if report.Thought.TotalThoughts != 5 {
		t.Errorf("totalThoughts = %d, want 5 unchanged", report.Thought.TotalThoughts)
	}
}

func TestProcess_HistoryGrowsAndEchoes(t *testing.T) {
	s := newTestState()
	for i := 1; i <= 3; i++ {
		report := s.Process(Thought{Thought: "step", ThoughtNumber: i, TotalThoughts: 3, NextThoughtNeeded: i < 3})
		if report.HistoryLength != i {
			t.Errorf("history length after thought %d = %d", i, report.HistoryLength)
		}
		if report.NextThoughtNeeded != (i < 3) {
			t.Errorf("nextThoughtNeeded echoed wrong at %d", i)
		}
	}
}

func TestProcess_FirstThoughtCoherence(t *testing.T) {
	s := newTestState()
	report := s.Process(Thought{Thought: "an opening analysis of caching", ThoughtNumber: 1, TotalThoughts: 2})
	if report.Quality.Coherence != 1.0 {
		t.Errorf("first thought coherence = %f, want 1.0", report.Quality.Coherence)
	}
}

func TestProcess_BranchesRequireOriginAndID(t *testing.T) {
	s := newTestState()
	s.Process(Thought{Thought: "main line", ThoughtNumber: 1, TotalThoughts: 4})
	s.Process(Thought{Thought: "branched", ThoughtNumber: 2, TotalThoughts: 4, BranchFromThought: 1, BranchID: "alt"})
	report := s.Process(Thought{Thought: "origin without id", ThoughtNumber: 3, TotalThoughts: 4, BranchFromThought: 1})

	if report.BranchCount != 1 {
		t.Errorf("branch count = %d, want 1 (id-less branch ignored)", report.BranchCount)
	}
	if report.HistoryLength != 3 {
		t.Errorf("history length = %d, want 3 (branch thoughts stay in history)", report.HistoryLength)
	}
}

func TestProcess_ProgrammingDomainAddsCodeBlocks(t *testing.T) {
	s := newTestState()
	report := s.Process(Thought{Thought: "the React component re-renders on every keystroke", ThoughtNumber: 1, TotalThoughts: 1})
	if report.CodeAnalysis == nil || report.EngineeringNotes == nil {
		t.Fatal("programming domain must attach code analysis and engineering insights")
	}
	if report.CodeAnalysis.Language != "javascript" {
		t.Errorf("language = %q, want javascript", report.CodeAnalysis.Language)
	}

	plain := s.Process(Thought{Thought: "my lunch was quite good today", ThoughtNumber: 2, TotalThoughts: 2})
	if plain.CodeAnalysis != nil || plain.EngineeringNotes != nil {
		t.Error("non-programming domain must omit the code blocks")
	}
}

func TestProcess_SuggestionsTruncated(t *testing.T) {
	s := New(1, 6)
	s.Process(Thought{Thought: "first idea entirely", ThoughtNumber: 1, TotalThoughts: 4})
	s.Process(Thought{Thought: "unrelated penguins everywhere", ThoughtNumber: 2, TotalThoughts: 4})
	report := s.Process(Thought{Thought: "we assume that my hypothesis is obviously flawless", ThoughtNumber: 3, TotalThoughts: 4})
	if len(report.Suggestions) > 1 {
		t.Errorf("suggestion count = %d, want at most 1", len(report.Suggestions))
	}
}

func TestProcess_GraphCountsMonotone(t *testing.T) {
	s := newTestState()
	prevNodes, prevEdges := 0, 0
	thoughts := []string{
		"caching reduces database pressure",
		"database pressure causes latency spikes",
		"latency spikes frustrate customers",
	}
	for i, text := range thoughts {
		report := s.Process(Thought{Thought: text, ThoughtNumber: i + 1, TotalThoughts: 3})
		if report.GraphNodeCount < prevNodes || report.GraphEdgeCount < prevEdges {
			t.Fatalf("graph counts decreased at thought %d", i+1)
		}
		prevNodes, prevEdges = report.GraphNodeCount, report.GraphEdgeCount
	}
}

func TestStats_Counters(t *testing.T) {
	s := newTestState()
	s.Process(Thought{Thought: "caching reduces database pressure", ThoughtNumber: 1, TotalThoughts: 2})
	s.Process(Thought{Thought: "therefore caching pays off", ThoughtNumber: 2, TotalThoughts: 2, BranchFromThought: 1, BranchID: "b1"})

	stats := s.Stats()
	if stats.ThoughtCount != 2 {
		t.Errorf("thought count = %d, want 2", stats.ThoughtCount)
	}
	if stats.BranchCount != 1 {
		t.Errorf("branch count = %d, want 1", stats.BranchCount)
	}
	if stats.ConceptCount == 0 || stats.RelationCount == 0 {
		t.Errorf("graph counters empty: %+v", stats)
	}
	if stats.AverageQuality <= 0 || stats.AverageQuality > 1 {
		t.Errorf("average quality = %f, want in (0,1]", stats.AverageQuality)
	}
	if stats.StartedAt != "2025-06-01T12:00:00Z" {
		t.Errorf("startedAt = %q", stats.StartedAt)
	}
}

func TestExport_CopiesState(t *testing.T) {
	s := newTestState()
	s.Process(Thought{Thought: "caching reduces database pressure", ThoughtNumber: 1, TotalThoughts: 1})

	snap := s.Export()
	if snap.SessionID != s.SessionID() {
		t.Error("export session id mismatch")
	}
	if len(snap.Thoughts) != 1 || len(snap.Nodes) == 0 || len(snap.Scores) != 1 {
		t.Errorf("export incomplete: %d thoughts, %d nodes, %d scores",
			len(snap.Thoughts), len(snap.Nodes), len(snap.Scores))
	}

	snap.Thoughts[0].Thought = "mutated"
	if s.Export().Thoughts[0].Thought != "caching reduces database pressure" {
		t.Error("export must copy, not alias, the history")
	}
}

func TestReset_DiscardsStateAndRotatesID(t *testing.T) {
	s := newTestState()
	s.Process(Thought{Thought: "caching reduces database pressure", ThoughtNumber: 1, TotalThoughts: 1})
	oldID := s.SessionID()

	discarded := s.Reset()
	if discarded.ThoughtCount != 1 {
		t.Errorf("discarded thought count = %d, want 1", discarded.ThoughtCount)
	}
	if discarded.SessionID != oldID {
		t.Error("discarded stats must carry the old session id")
	}
	if s.SessionID() == oldID || s.SessionID() == "" {
		t.Error("reset must assign a fresh session id")
	}
	if !strings.Contains(s.SessionID(), "-") {
		t.Errorf("session id %q does not look like a uuid", s.SessionID())
	}

	fresh := s.Stats()
	if fresh.ThoughtCount != 0 || fresh.BranchCount != 0 || fresh.ConceptCount != 0 {
		t.Errorf("state not cleared: %+v", fresh)
	}
}

package graph

import (
	"strings"
	"testing"
)

// --- Normalize ---

func TestNormalize_LowercasesAndUnderscores(t *testing.T) {
	got := Normalize("Rate  Limiter")
	if got != "rate_limiter" {
		t.Errorf("Normalize = %q, want rate_limiter", got)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize("   "); got != "" {
		t.Errorf("Normalize of whitespace = %q, want empty", got)
	}
}

// --- AddConcept ---

func TestAddConcept_CreatesNodeWithDefaults(t *testing.T) {
	g := New()
	g.AddConcept("Cache", "entity", 3)

	nodes, _ := g.Export()
	if len(nodes) != 1 {
		t.Fatalf("node count = %d, want 1", len(nodes))
	}
	n := nodes[0]
	if n.ID != "cache" || n.Frequency != 1 || n.Confidence != 0.5 || n.FirstMentioned != 3 {
		t.Errorf("unexpected node: %+v", n)
	}
}

func TestAddConcept_RepeatIncrementsFrequency(t *testing.T) {
	g := New()
	g.AddConcept("cache", "concept", 1)
	g.AddConcept("cache", "concept", 2)
	g.AddConcept("cache", "concept", 3)

	nodes, _ := g.Export()
	if len(nodes) != 1 {
		t.Fatalf("node count = %d, want 1 (no duplicates)", len(nodes))
	}
	if nodes[0].Frequency != 3 {
		t.Errorf("frequency = %d, want 3", nodes[0].Frequency)
	}
	if nodes[0].FirstMentioned != 1 {
		t.Errorf("firstMentioned = %d, want 1 (not overwritten)", nodes[0].FirstMentioned)
	}
}

func TestAddConcept_NormalizationAliases(t *testing.T) {
	g := New()
	g.AddConcept("Rate Limiter", "entity", 1)
	g.AddConcept("rate  limiter", "concept", 2)

	nodes, _ := g.Export()
	if len(nodes) != 1 {
		t.Fatalf("node count = %d, want 1 (aliased under normalization)", len(nodes))
	}
	if nodes[0].Frequency != 2 {
		t.Errorf("frequency = %d, want 2", nodes[0].Frequency)
	}
}

// --- AddRelationship ---

func TestAddRelationship_IdenticalTripleAccumulates(t *testing.T) {
	g := New()
	g.AddRelationship("cache", "latency", "causes", 1)
	g.AddRelationship("cache", "latency", "causes", 2)

	_, edges := g.Export()
	if len(edges) != 1 {
		t.Fatalf("edge count = %d, want 1", len(edges))
	}
	e := edges[0]
	if e.Strength != 2 {
		t.Errorf("strength = %d, want 2", e.Strength)
	}
	if len(e.ThoughtNumbers) != 2 || e.ThoughtNumbers[0] != 1 || e.ThoughtNumbers[1] != 2 {
		t.Errorf("occurrences = %v, want [1 2]", e.ThoughtNumbers)
	}
}

func TestAddRelationship_DifferentLabelIsDistinctEdge(t *testing.T) {
	g := New()
	g.AddRelationship("cache", "latency", "causes", 1)
	g.AddRelationship("cache", "latency", "related_to", 1)

	_, edges := g.Export()
	if len(edges) != 2 {
		t.Errorf("edge count = %d, want 2 (distinct relationship labels)", len(edges))
	}
}

func TestAddRelationship_DirectionMatters(t *testing.T) {
	g := New()
	g.AddRelationship("a", "b", "related_to", 1)
	g.AddRelationship("b", "a", "related_to", 1)

	_, edges := g.Export()
	if len(edges) != 2 {
		t.Errorf("edge count = %d, want 2 ((a,b) and (b,a) are distinct)", len(edges))
	}
}

// --- Insights ---

func TestInsights_CentralConceptsByFrequency(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.AddConcept("alpha", "concept", 1)
	}
	for i := 0; i < 2; i++ {
		g.AddConcept("beta", "concept", 1)
	}
	g.AddConcept("gamma", "concept", 1)
	g.AddConcept("delta", "concept", 1)

	insights := g.Insights()
	if len(insights) == 0 {
		t.Fatal("expected at least one insight")
	}
	want := "Central concepts: alpha, beta, gamma"
	if insights[0] != want {
		t.Errorf("insights[0] = %q, want %q", insights[0], want)
	}
}

func TestInsights_TiesBreakByInsertionOrder(t *testing.T) {
	g := New()
	g.AddConcept("first", "concept", 1)
	g.AddConcept("second", "concept", 1)

	insights := g.Insights()
	if insights[0] != "Central concepts: first, second" {
		t.Errorf("tie-break order wrong: %q", insights[0])
	}
}

func TestInsights_StrongRelationshipsNeedStrengthTwo(t *testing.T) {
	g := New()
	g.AddConcept("cache", "concept", 1)
	g.AddConcept("latency", "concept", 1)
	g.AddRelationship("cache", "latency", "causes", 1)

	for _, s := range g.Insights() {
		if strings.Contains(s, "causes") {
			t.Errorf("strength-1 edge should not appear in insights: %q", s)
		}
	}

	g.AddRelationship("cache", "latency", "causes", 2)
	found := false
	for _, s := range g.Insights() {
		if s == "cache causes latency" {
			found = true
		}
	}
	if !found {
		t.Errorf("strength-2 edge missing from insights: %v", g.Insights())
	}
}

func TestInsights_EmptyGraph(t *testing.T) {
	if got := New().Insights(); len(got) != 0 {
		t.Errorf("empty graph insights = %v, want none", got)
	}
}

// --- Export ---

func TestExport_CountsNeverDecrease(t *testing.T) {
	g := New()
	prev := 0
	texts := []string{
		"The cache improves latency because lookups avoid the database",
		"The database index depends on the storage engine",
		"Lookups avoid the database when the cache is warm",
	}
	for i, text := range texts {
		g.Observe(text, i+1)
		nodes, _ := g.Export()
		if len(nodes) < prev {
			t.Fatalf("node count decreased from %d to %d after thought %d", prev, len(nodes), i+1)
		}
		prev = len(nodes)
	}
}

func TestExport_ReturnsCopies(t *testing.T) {
	g := New()
	g.AddConcept("cache", "concept", 1)

	nodes, _ := g.Export()
	nodes[0].Frequency = 99

	fresh, _ := g.Export()
	if fresh[0].Frequency != 1 {
		t.Error("Export must return copies, not internal pointers")
	}
}

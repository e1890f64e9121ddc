// Package graph implements the session knowledge graph: concept nodes with
// frequency counters and directional, labeled edges with strength counters.
//
// The graph grows monotonically across a session — nodes and edges are
// upserted, never deleted. Iteration order is insertion order, which keeps
// insights deterministic for a given sequence of calls.
package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Node is a concept keyed by its normalized label. Normalization collisions
// are intentional aliasing ("Rate Limiter" and "rate limiter" are one node).
type Node struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Type           string  `json:"type"`
	Confidence     float64 `json:"confidence"`
	FirstMentioned int     `json:"first_mentioned"`
	Frequency      int     `json:"frequency"`
}

// Edge is a directional relationship between two nodes. (A,B) and (B,A) are
// distinct edges, as are two edges with different relationship labels.
type Edge struct {
	Source         string `json:"source"`
	Target         string `json:"target"`
	Relationship   string `json:"relationship"`
	Strength       int    `json:"strength"`
	ThoughtNumbers []int  `json:"thought_numbers"`
}

// Graph accumulates concepts and relationships across a session.
// It is not safe for concurrent use; callers serialize access.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[string]*Edge
	edgeOrder []string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// Normalize converts a concept label into its node ID: lower-cased with
// whitespace runs collapsed to single underscores.
func Normalize(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "_")
}

// AddConcept upserts a concept node. New nodes start with frequency 1 and
// confidence 0.5; existing nodes get their frequency incremented.
func (g *Graph) AddConcept(label, typ string, thoughtIndex int) {
	id := Normalize(label)
	if id == "" {
		return
	}
	if node, ok := g.nodes[id]; ok {
		node.Frequency++
		return
	}
	g.nodes[id] = &Node{
		ID:             id,
		Label:          label,
		Type:           typ,
		Confidence:     0.5,
		FirstMentioned: thoughtIndex,
		Frequency:      1,
	}
	g.nodeOrder = append(g.nodeOrder, id)
}

// AddRelationship upserts a directional edge. An existing
// (source, target, relationship) triple gets its strength incremented and
// the thought index appended; otherwise a new edge with strength 1 is made.
func (g *Graph) AddRelationship(sourceLabel, targetLabel, relationship string, thoughtIndex int) {
	src := Normalize(sourceLabel)
	tgt := Normalize(targetLabel)
	if src == "" || tgt == "" {
		return
	}
	key := src + "|" + tgt + "|" + relationship
	if edge, ok := g.edges[key]; ok {
		edge.Strength++
		edge.ThoughtNumbers = append(edge.ThoughtNumbers, thoughtIndex)
		return
	}
	g.edges[key] = &Edge{
		Source:         src,
		Target:         tgt,
		Relationship:   relationship,
		Strength:       1,
		ThoughtNumbers: []int{thoughtIndex},
	}
	g.edgeOrder = append(g.edgeOrder, key)
}

// Insights renders up to 3 central concepts (top frequency, insertion order
// breaking ties) and up to 3 strong relationships (strength >= 2) as
// human-readable strings.
func (g *Graph) Insights() []string {
	var insights []string

	ids := make([]string, len(g.nodeOrder))
	copy(ids, g.nodeOrder)
	sort.SliceStable(ids, func(i, j int) bool {
		return g.nodes[ids[i]].Frequency > g.nodes[ids[j]].Frequency
	})
	if len(ids) > 0 {
		top := ids
		if len(top) > 3 {
			top = top[:3]
		}
		labels := make([]string, len(top))
		for i, id := range top {
			labels[i] = g.nodes[id].Label
		}
		insights = append(insights, "Central concepts: "+strings.Join(labels, ", "))
	}

	strong := 0
	for _, key := range g.edgeOrder {
		edge := g.edges[key]
		if edge.Strength < 2 {
			continue
		}
		insights = append(insights, fmt.Sprintf("%s %s %s",
			g.displayLabel(edge.Source),
			strings.ReplaceAll(edge.Relationship, "_", " "),
			g.displayLabel(edge.Target),
		))
		strong++
		if strong == 3 {
			break
		}
	}

	return insights
}

// displayLabel prefers the stored node label; edges can reference IDs whose
// node was added under a different surface form.
func (g *Graph) displayLabel(id string) string {
	if node, ok := g.nodes[id]; ok {
		return node.Label
	}
	return id
}

// Export returns copies of all nodes and edges in insertion order.
func (g *Graph) Export() ([]Node, []Edge) {
	nodes := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		nodes = append(nodes, *g.nodes[id])
	}
	edges := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		e := *g.edges[key]
		e.ThoughtNumbers = append([]int(nil), e.ThoughtNumbers...)
		edges = append(edges, e)
	}
	return nodes, edges
}

// Counts returns the current node and edge totals.
func (g *Graph) Counts() (nodes, edges int) {
	return len(g.nodes), len(g.edges)
}

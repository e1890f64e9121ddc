package graph

import (
	"regexp"
	"strings"
)

// stopwords excluded from concept extraction. Short function words are
// already excluded by the length threshold; these are the long ones.
var stopwords = map[string]bool{
	"about": true, "after": true, "again": true, "along": true,
	"because": true, "before": true, "being": true, "between": true,
	"could": true, "every": true, "other": true, "should": true,
	"since": true, "their": true, "there": true, "these": true,
	"thing": true, "things": true, "think": true, "those": true,
	"through": true, "under": true, "where": true, "which": true,
	"while": true, "would": true,
}

var capitalizedToken = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)

// sentenceStarters are capitalized tokens that are grammar, not concepts.
var sentenceStarters = map[string]bool{
	"the": true, "this": true, "that": true, "then": true, "and": true,
	"but": true, "for": true, "with": true, "when": true, "what": true,
	"how": true, "why": true, "not": true, "are": true, "was": true,
	"you": true, "our": true, "its": true, "can": true, "may": true,
}

// relationshipRule maps a fixed phrase in the raw text to an edge label.
// Checked in declaration order; the first match wins for the whole thought.
type relationshipRule struct {
	Phrase string
	Label  string
}

var relationshipRules = []relationshipRule{
	{Phrase: " causes ", Label: "causes"},
	{Phrase: " leads to ", Label: "leads_to"},
	{Phrase: " depends on ", Label: "depends_on"},
	{Phrase: " includes ", Label: "includes"},
	{Phrase: " is similar to ", Label: "similar_to"},
}

// DefaultRelationship is the low-information edge label used when no fixed
// phrase matches — co-occurrence within one thought is sufficient.
const DefaultRelationship = "related_to"

// ExtractConcepts returns the ordered, deduplicated candidate concepts of a
// thought: lowercase words longer than 4 characters minus stopwords, plus
// capitalized tokens from the raw text.
func ExtractConcepts(text string) []string {
	var concepts []string
	seen := make(map[string]bool)

	add := func(label string) {
		id := Normalize(label)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		concepts = append(concepts, label)
	}

	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(field, ".,;:!?()[]{}\"'`")
		if len(word) <= 4 || stopwords[word] {
			continue
		}
		add(word)
	}

	for _, token := range capitalizedToken.FindAllString(text, -1) {
		lower := strings.ToLower(token)
		if sentenceStarters[lower] || stopwords[lower] {
			continue
		}
		add(token)
	}

	return concepts
}

// DetectRelationship picks the edge label for a thought's co-occurring
// concepts from the fixed phrase table, defaulting to related_to.
func DetectRelationship(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range relationshipRules {
		if strings.Contains(lower, rule.Phrase) {
			return rule.Label
		}
	}
	return DefaultRelationship
}

// Observe runs the per-thought update: every extracted concept becomes a
// node, and every ordered pair (i < j) becomes a directed edge labeled by
// the detected relationship. O(k²) in extracted concepts, k is small.
func (g *Graph) Observe(text string, thoughtIndex int) {
	concepts := ExtractConcepts(text)
	for _, c := range concepts {
		typ := "concept"
		if c != strings.ToLower(c) {
			typ = "entity"
		}
		g.AddConcept(c, typ, thoughtIndex)
	}

	relationship := DetectRelationship(text)
	for i := 0; i < len(concepts); i++ {
		for j := i + 1; j < len(concepts); j++ {
			g.AddRelationship(concepts[i], concepts[j], relationship, thoughtIndex)
		}
	}
}

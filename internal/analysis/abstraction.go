package analysis

import (
	"regexp"
	"strings"
)

// AbstractionChain holds six independently rendered restatements of one
// thought, from concrete elements (level 0) up to theoretical framing
// (level 5). Despite the naming there is no derivation between levels —
// each is a pure function of the raw text.
type AbstractionChain struct {
	Concrete       string `json:"level_0_concrete"`
	Causal         string `json:"level_1_causal"`
	Structural     string `json:"level_2_structural"`
	Principles     string `json:"level_3_principles"`
	Methodological string `json:"level_4_methodological"`
	Theoretical    string `json:"level_5_theoretical"`
}

var (
	numberPattern      = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	capitalizedPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)
)

// cueRule maps a set of cue phrases to a rendered label. The first phrase
// found in the text activates the label.
type cueRule struct {
	Cues  []string
	Label string
}

var causalRules = []cueRule{
	{Cues: []string{"because", "therefore", "thus"}, Label: "Causal reasoning present"},
	{Cues: []string{"leads to", "results in"}, Label: "Consequence relationship identified"},
}

var structuralRules = []cueRule{
	{Cues: []string{"compared to", "versus", "similar to", "different from"}, Label: "Comparative structure"},
	{Cues: []string{"first", "then", "next", "finally"}, Label: "Sequential structure"},
	{Cues: []string{"if ", "when ", "unless"}, Label: "Conditional structure"},
	{Cues: []string{"contains", "consists of", "part of", "includes"}, Label: "Hierarchical structure"},
}

var principleRules = []cueRule{
	{Cues: []string{"always", "never", "every", "all "}, Label: "Universal claim"},
	{Cues: []string{"generally", "typically", "usually", "often"}, Label: "General tendency"},
	{Cues: []string{"best practice", "should", "recommended"}, Label: "Normative guidance"},
}

var methodRules = []cueRule{
	{Cues: []string{"thinking", "reasoning", "approach", "strategy"}, Label: "Meta-cognitive framing"},
	{Cues: []string{"method", "process", "technique", "procedure"}, Label: "Methodological framing"},
	{Cues: []string{"concept", "abstraction", "model", "framework"}, Label: "Abstract framing"},
}

var theoryRules = []cueRule{
	{Cues: []string{"theory", "principle", "law of"}, Label: "Theoretical grounding"},
	{Cues: []string{"system", "architecture", "structure"}, Label: "Systemic perspective"},
	{Cues: []string{"flow", "lifecycle", "dynamics", "cycle"}, Label: "Process perspective"},
}

// RenderAbstraction computes all six abstraction strings for a thought.
func RenderAbstraction(text string) AbstractionChain {
	return AbstractionChain{
		Concrete:       renderConcrete(text),
		Causal:         renderCues(text, causalRules, "No causal relationships found"),
		Structural:     renderCues(text, structuralRules, "No structural patterns detected"),
		Principles:     renderCues(text, principleRules, "No general principles stated"),
		Methodological: renderCues(text, methodRules, "No methodological framing present"),
		Theoretical:    renderCues(text, theoryRules, "No theoretical framing present"),
	}
}

// renderConcrete lists numbers and capitalized words found in the text.
func renderConcrete(text string) string {
	var elements []string
	elements = append(elements, numberPattern.FindAllString(text, -1)...)
	elements = append(elements, capitalizedPattern.FindAllString(text, -1)...)
	if len(elements) == 0 {
		return "Concrete elements: none identified"
	}
	return "Concrete elements: " + strings.Join(elements, ", ")
}

// renderCues joins the labels of all activated rules, or returns the
// fallback when nothing matched.
func renderCues(text string, rules []cueRule, fallback string) string {
	lower := strings.ToLower(text)
	var labels []string
	for _, rule := range rules {
		for _, cue := range rule.Cues {
			if strings.Contains(lower, cue) {
				labels = append(labels, rule.Label)
				break
			}
		}
	}
	if len(labels) == 0 {
		return fallback
	}
	return strings.Join(labels, "; ")
}

// Package orchestrator implements the simulated multi-step planning loop:
// a problem statement is classified into a problem type, a canned phase
// sequence is selected, and each step dispatches to an internal stub
// executor that returns templated analysis text. No external tool, network
// call, or file access happens despite the tool-like naming.
package orchestrator

import "strings"

// PhaseKind enumerates the five stub executors. Dispatch is over this enum,
// not over tool-name strings.
type PhaseKind int

const (
	PhaseDecompose PhaseKind = iota
	PhaseResearch
	PhaseDesign
	PhaseValidate
	PhaseSynthesize
)

// String returns the phase kind's display name.
func (k PhaseKind) String() string {
	switch k {
	case PhaseDecompose:
		return "decompose"
	case PhaseResearch:
		return "research"
	case PhaseDesign:
		return "design"
	case PhaseValidate:
		return "validate"
	case PhaseSynthesize:
		return "synthesize"
	default:
		return "unknown"
	}
}

// ToolName returns the internal tool name reported in the cognitive trace
// for this phase kind.
func (k PhaseKind) ToolName() string {
	switch k {
	case PhaseDecompose:
		return "problem_decomposition"
	case PhaseResearch:
		return "domain_research"
	case PhaseDesign:
		return "solution_design"
	case PhaseValidate:
		return "solution_validation"
	case PhaseSynthesize:
		return "solution_synthesis"
	default:
		return "deep_analysis"
	}
}

// Phase is one step in a canned plan: the executor kind plus a
// human-readable focus for the trace.
type Phase struct {
	Kind  PhaseKind
	Focus string
}

// ProblemType is the coarse classification of a problem statement.
type ProblemType string

// Problem types, in the order they are checked. The first matching
// category wins; order is significant and fixed.
const (
	ProblemArchitecture ProblemType = "system_architecture"
	ProblemAlgorithmic  ProblemType = "algorithm_design"
	ProblemBusiness     ProblemType = "business_strategy"
	ProblemDebugging    ProblemType = "debugging"
	ProblemData         ProblemType = "data_analysis"
	ProblemCreative     ProblemType = "creative"
	ProblemGeneral      ProblemType = "general"
)

// problemRule pairs a problem type with its indicator substrings.
type problemRule struct {
	Type       ProblemType
	Indicators []string
}

var problemRules = []problemRule{
	{Type: ProblemArchitecture, Indicators: []string{
		"architecture", "microservice", "system design", "scalab", "distributed", "infrastructure",
	}},
	{Type: ProblemAlgorithmic, Indicators: []string{
		"algorithm", "complexity", "optimize", "sorting", "data structure", "performance",
	}},
	{Type: ProblemBusiness, Indicators: []string{
		"business", "market", "revenue", "customer", "pricing", "strategy",
	}},
	{Type: ProblemDebugging, Indicators: []string{
		"bug", "error", "crash", "broken", "regression", "fails",
	}},
	{Type: ProblemData, Indicators: []string{
		"dataset", "analytics", "statistics", "metrics", "data pipeline",
	}},
	{Type: ProblemCreative, Indicators: []string{
		"brainstorm", "creative", "naming", "story", "campaign",
	}},
}

// Classify maps a problem statement to its type via a single pass over the
// ordered rule table.
func Classify(problem string) ProblemType {
	lower := strings.ToLower(problem)
	for _, rule := range problemRules {
		for _, ind := range rule.Indicators {
			if strings.Contains(lower, ind) {
				return rule.Type
			}
		}
	}
	return ProblemGeneral
}

// defaultSequence is the generic 5-phase plan used for every problem type
// without a specialized sequence.
var defaultSequence = []Phase{
	{Kind: PhaseDecompose, Focus: "problem breakdown"},
	{Kind: PhaseResearch, Focus: "domain research"},
	{Kind: PhaseDesign, Focus: "solution design"},
	{Kind: PhaseValidate, Focus: "solution validation"},
	{Kind: PhaseSynthesize, Focus: "final synthesis"},
}

// sequenceRegistry holds the specialized canned plans. Modeled as a
// registry so sequences can be extended without touching the loop.
var sequenceRegistry = map[ProblemType][]Phase{
	ProblemArchitecture: {
		{Kind: PhaseDecompose, Focus: "requirements analysis"},
		{Kind: PhaseResearch, Focus: "architectural styles"},
		{Kind: PhaseDesign, Focus: "service decomposition"},
		{Kind: PhaseDesign, Focus: "data architecture"},
		{Kind: PhaseDesign, Focus: "api contracts"},
		{Kind: PhaseValidate, Focus: "scalability review"},
		{Kind: PhaseDesign, Focus: "deployment topology"},
		{Kind: PhaseSynthesize, Focus: "architecture synthesis"},
	},
	ProblemAlgorithmic: {
		{Kind: PhaseDecompose, Focus: "input/output characterization"},
		{Kind: PhaseResearch, Focus: "known approaches"},
		{Kind: PhaseDesign, Focus: "algorithm selection"},
		{Kind: PhaseDesign, Focus: "complexity tuning"},
		{Kind: PhaseValidate, Focus: "edge case analysis"},
		{Kind: PhaseSynthesize, Focus: "algorithm synthesis"},
	},
	ProblemBusiness: {
		{Kind: PhaseDecompose, Focus: "market framing"},
		{Kind: PhaseResearch, Focus: "competitive landscape"},
		{Kind: PhaseDesign, Focus: "strategy options"},
		{Kind: PhaseValidate, Focus: "risk assessment"},
		{Kind: PhaseSynthesize, Focus: "strategy synthesis"},
	},
}

// PhaseSequence returns a copy of the canned plan for the problem type.
func PhaseSequence(pt ProblemType) []Phase {
	seq, ok := sequenceRegistry[pt]
	if !ok {
		seq = defaultSequence
	}
	out := make([]Phase, len(seq))
	copy(out, seq)
	return out
}

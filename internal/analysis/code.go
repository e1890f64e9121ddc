package analysis

import "strings"

// CodeAnalysis is the programming-specific annotation block attached to a
// thought report when the detected domain is programming-related.
type CodeAnalysis struct {
	Language              string   `json:"language"`
	Complexity            string   `json:"complexity"`
	Patterns              []string `json:"patterns"`
	CodeSmells            []string `json:"code_smells"`
	Suggestions           []string `json:"suggestions"`
	ArchitecturalConcepts []string `json:"architectural_concepts"`
}

// EngineeringInsights is the software-engineering companion block derived
// from the same substring tables.
type EngineeringInsights struct {
	DesignPatterns           []string `json:"design_patterns"`
	Principles               []string `json:"principles"`
	BestPractices            []string `json:"best_practices"`
	AntiPatterns             []string `json:"anti_patterns"`
	RefactoringOpportunities []string `json:"refactoring_opportunities"`
	TestingStrategies        []string `json:"testing_strategies"`
}

// substringRule maps indicator substrings to a label; the first rule whose
// any indicator appears wins for single-label lookups, and every matching
// rule contributes for multi-label lookups.
type substringRule struct {
	Indicators []string
	Label      string
}

var languageRules = []substringRule{
	{Indicators: []string{"typescript", ".ts", "tsx"}, Label: "typescript"},
	{Indicators: []string{"javascript", "node", "npm", "react", ".js"}, Label: "javascript"},
	{Indicators: []string{"python", "django", "flask", "pandas", ".py"}, Label: "python"},
	{Indicators: []string{"golang", " go ", "goroutine", ".go"}, Label: "go"},
	{Indicators: []string{"java ", "spring", "jvm", "maven"}, Label: "java"},
	{Indicators: []string{"rust", "cargo", "borrow"}, Label: "rust"},
	{Indicators: []string{"sql", "select ", "join "}, Label: "sql"},
}

var patternRules = []substringRule{
	{Indicators: []string{"singleton"}, Label: "Singleton"},
	{Indicators: []string{"factory"}, Label: "Factory"},
	{Indicators: []string{"observer", "event listener", "pubsub", "pub/sub"}, Label: "Observer"},
	{Indicators: []string{"strategy pattern", "interchangeable"}, Label: "Strategy"},
	{Indicators: []string{"decorator", "wrapper"}, Label: "Decorator"},
	{Indicators: []string{"adapter"}, Label: "Adapter"},
	{Indicators: []string{"repository"}, Label: "Repository"},
	{Indicators: []string{"dependency injection", "inject"}, Label: "Dependency Injection"},
}

var smellRules = []substringRule{
	{Indicators: []string{"duplicate", "copy-paste", "copy paste"}, Label: "Duplicated code"},
	{Indicators: []string{"long function", "too long", "huge function"}, Label: "Long function"},
	{Indicators: []string{"global variable", "global state"}, Label: "Global state"},
	{Indicators: []string{"magic number", "hardcoded", "hard-coded"}, Label: "Magic values"},
	{Indicators: []string{"deeply nested", "nested if", "nesting"}, Label: "Deep nesting"},
	{Indicators: []string{"tight coupling", "tightly coupled"}, Label: "Tight coupling"},
	{Indicators: []string{"god class", "god object", "does everything"}, Label: "God object"},
}

var architectureRules = []substringRule{
	{Indicators: []string{"microservice"}, Label: "Microservices"},
	{Indicators: []string{"monolith"}, Label: "Monolith"},
	{Indicators: []string{"event-driven", "event driven", "message queue"}, Label: "Event-driven architecture"},
	{Indicators: []string{"layered", "n-tier", "three-tier"}, Label: "Layered architecture"},
	{Indicators: []string{"api gateway"}, Label: "API gateway"},
	{Indicators: []string{"cache", "caching"}, Label: "Caching layer"},
	{Indicators: []string{"load balanc"}, Label: "Load balancing"},
	{Indicators: []string{"serverless", "lambda"}, Label: "Serverless"},
}

// AnalyzeCode runs the substring tables against the thought text. The
// complexity tier is carried over from the lexical extractor.
func AnalyzeCode(text, complexity string) CodeAnalysis {
	lower := strings.ToLower(text)

	language := "unknown"
	for _, rule := range languageRules {
		if containsAny(lower, rule.Indicators) {
			language = rule.Label
			break
		}
	}

	analysis := CodeAnalysis{
		Language:              language,
		Complexity:            complexity,
		Patterns:              matchAll(lower, patternRules),
		CodeSmells:            matchAll(lower, smellRules),
		ArchitecturalConcepts: matchAll(lower, architectureRules),
	}
	analysis.Suggestions = codeSuggestions(analysis)
	return analysis
}

// codeSuggestions derives advisory strings from what was matched.
func codeSuggestions(a CodeAnalysis) []string {
	var out []string
	for _, smell := range a.CodeSmells {
		out = append(out, "Address the detected smell: "+smell)
	}
	if len(a.Patterns) == 0 && len(a.ArchitecturalConcepts) > 0 {
		out = append(out, "Consider which design patterns support the mentioned architecture")
	}
	if a.Language == "unknown" {
		out = append(out, "Name the implementation language to get language-specific guidance")
	}
	if len(out) == 0 {
		out = append(out, "No immediate code concerns detected")
	}
	return out
}

// DeriveInsights maps the code analysis onto software-engineering advice.
// All of it is table-driven; no judgement beyond substring presence.
func DeriveInsights(a CodeAnalysis) EngineeringInsights {
	ins := EngineeringInsights{
		DesignPatterns: a.Patterns,
		AntiPatterns:   a.CodeSmells,
	}

	if len(a.Patterns) > 0 {
		ins.Principles = append(ins.Principles, "Favor composition over inheritance when applying patterns")
	}
	if len(a.CodeSmells) > 0 {
		ins.Principles = append(ins.Principles, "Single Responsibility Principle")
		for _, smell := range a.CodeSmells {
			ins.RefactoringOpportunities = append(ins.RefactoringOpportunities, "Refactor toward removing: "+smell)
		}
	}
	if len(ins.Principles) == 0 {
		ins.Principles = append(ins.Principles, "Keep interfaces small and explicit")
	}

	ins.BestPractices = append(ins.BestPractices, "Write tests before refactoring")
	if a.Complexity == ComplexityHigh {
		ins.BestPractices = append(ins.BestPractices, "Break the problem into independently testable units")
	}

	ins.TestingStrategies = append(ins.TestingStrategies, "Unit tests for pure logic")
	for _, concept := range a.ArchitecturalConcepts {
		if concept == "Microservices" || concept == "Event-driven architecture" {
			ins.TestingStrategies = append(ins.TestingStrategies, "Contract tests across service boundaries")
			break
		}
	}

	return ins
}

func containsAny(text string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(text, ind) {
			return true
		}
	}
	return false
}

func matchAll(text string, rules []substringRule) []string {
	var labels []string
	for _, rule := range rules {
		if containsAny(text, rule.Indicators) {
			labels = append(labels, rule.Label)
		}
	}
	return labels
}

// Package analysis implements the pure text heuristics behind thought
// processing: lexical feature extraction, abstraction rendering, quality
// scoring, and code pattern matching.
//
// Everything here is a pure function from text to labels. Classification is
// driven by ordered rule tables so tie-breaking is deterministic (declaration
// order wins) and new rules can be added without touching the matching code.
package analysis

import (
	"strings"
)

// ContextSnapshot is the lexical profile of a single thought. It is
// recomputed wholesale on every call and never accumulates.
type ContextSnapshot struct {
	Domain          string   `json:"domain"`
	Complexity      string   `json:"complexity"`
	Keywords        []string `json:"keywords"`
	RelatedConcepts []string `json:"related_concepts"`
	Confidence      float64  `json:"confidence"`
}

// Complexity tiers.
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

// domainRule associates a domain label with its indicator keywords.
// Programming marks the domains that trigger code analysis.
type domainRule struct {
	Label       string
	Programming bool
	Keywords    []string
}

// domainRules is the ordered classification table. Order matters: when two
// domains tie on match count, the one declared first wins.
var domainRules = []domainRule{
	{Label: "frontend", Programming: true, Keywords: []string{
		"react", "component", "frontend", "browser", "css", "html", "dom",
		"render", "responsive", "interface", "angular", "vue",
	}},
	{Label: "backend", Programming: true, Keywords: []string{
		"server", "backend", "endpoint", "middleware", "authentication",
		"request", "response", "route", "controller", "service",
	}},
	{Label: "database", Programming: true, Keywords: []string{
		"database", "query", "index", "table", "schema", "transaction",
		"migration", "postgres", "mysql", "mongodb",
	}},
	{Label: "devops", Programming: true, Keywords: []string{
		"deploy", "deployment", "docker", "kubernetes", "pipeline",
		"container", "terraform", "monitoring", "infrastructure",
	}},
	{Label: "mobile", Programming: true, Keywords: []string{
		"mobile", "android", "ios", "swift", "kotlin", "flutter",
		"notification", "gesture", "offline",
	}},
	{Label: "machine_learning", Programming: true, Keywords: []string{
		"model", "training", "neural", "dataset", "prediction",
		"classifier", "embedding", "inference", "accuracy",
	}},
	{Label: "security", Programming: true, Keywords: []string{
		"security", "encryption", "vulnerability", "exploit", "token",
		"password", "injection", "firewall", "audit",
	}},
	{Label: "algorithms", Programming: true, Keywords: []string{
		"algorithm", "complexity", "optimize", "sorting", "recursion",
		"search", "efficiency", "performance", "bigo",
	}},
	{Label: "business", Keywords: []string{
		"business", "market", "revenue", "customer", "strategy",
		"pricing", "stakeholder", "growth", "competitor",
	}},
	{Label: "science", Keywords: []string{
		"experiment", "hypothesis", "measurement", "observation",
		"sample", "variable", "physics", "biology", "chemistry",
	}},
	{Label: "education", Keywords: []string{
		"learning", "teaching", "student", "curriculum", "lesson",
		"course", "exercise", "knowledge", "practice",
	}},
}

// DomainGeneral is the fallback label when no domain table matches.
const DomainGeneral = "general"

// discourseConnectives signal argumentative complexity.
var discourseConnectives = []string{
	"however", "although", "furthermore", "consequently", "nevertheless",
}

const maxKeywords = 10

// ExtractContext computes the lexical profile of a thought: keywords,
// domain label with confidence, complexity tier, and the related concepts
// (the winning domain's keywords that actually appear in the text).
func ExtractContext(text string) ContextSnapshot {
	tokens := Tokenize(text)
	tokenSet := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = true
	}

	// Keywords: tokens longer than 3 chars, first-occurrence order, capped.
	var keywords []string
	seen := make(map[string]bool)
	for _, tok := range tokens {
		if len(tok) <= 3 || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
		if len(keywords) == maxKeywords {
			break
		}
	}

	// Domain: strict maximum over the ordered rule table.
	domain := DomainGeneral
	best := 0
	var related []string
	for _, rule := range domainRules {
		matches := 0
		var hits []string
		for _, kw := range rule.Keywords {
			if tokenSet[kw] {
				matches++
				hits = append(hits, kw)
			}
		}
		if matches > best {
			best = matches
			domain = rule.Label
			related = hits
		}
	}

	confidence := float64(best) / 3.0
	if confidence > 1.0 {
		confidence = 1.0
	}

	return ContextSnapshot{
		Domain:          domain,
		Complexity:      classifyComplexity(text),
		Keywords:        keywords,
		RelatedConcepts: related,
		Confidence:      confidence,
	}
}

// classifyComplexity counts discourse connectives in the text.
func classifyComplexity(text string) string {
	lower := strings.ToLower(text)
	count := 0
	for _, c := range discourseConnectives {
		count += strings.Count(lower, c)
	}
	switch {
	case count >= 2:
		return ComplexityHigh
	case count >= 1:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// IsProgrammingDomain reports whether the label is one of the domains that
// trigger code analysis in thought reports.
func IsProgrammingDomain(domain string) bool {
	for _, rule := range domainRules {
		if rule.Label == domain {
			return rule.Programming
		}
	}
	return false
}

// Tokenize lower-cases the text, splits on whitespace, and strips
// surrounding punctuation from each token. Empty tokens are dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.Trim(f, ".,;:!?()[]{}\"'`")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// TermSet returns the set of distinct tokens longer than 3 characters.
// Shared between the quality scorer and the suggestion generator.
func TermSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		if len(tok) > 3 {
			set[tok] = true
		}
	}
	return set
}

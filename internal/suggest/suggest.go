// Package suggest implements the rule-based suggestion generator. It turns
// reasoning gaps, unchallenged assumptions and session shape into a
// prioritized list of advisory next steps.
package suggest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/noema-dev/noema/internal/analysis"
)

// Suggestion kinds.
const (
	TypeExplore    = "explore"
	TypeClarify    = "clarify"
	TypeChallenge  = "challenge"
	TypeSynthesize = "synthesize"
	TypeValidate   = "validate"
)

// Suggestion is one advisory item with its fixed priority and the rule that
// produced it.
type Suggestion struct {
	Type       string  `json:"type"`
	Suggestion string  `json:"suggestion"`
	Priority   float64 `json:"priority"`
	Reasoning  string  `json:"reasoning"`
}

// transitionConnectives mark a thought as explicitly continuing the
// previous one; their absence contributes to gap detection.
var transitionConnectives = []string{
	"therefore", "however", "thus", "building on", "following from", "so ",
}

var assumptionPattern = regexp.MustCompile(`(?i)assum(?:e|es|ed|ing)(?: that)? ([a-zA-Z][a-zA-Z ]{2,60})`)

// definitiveMarkers flag claims stated as certainties.
var definitiveMarkers = []string{
	"always", "never", "definitely", "certainly", "obviously", "must be",
}

// evidenceMarkers excuse a definitive claim from being challenged.
var evidenceMarkers = []string{
	"because", "evidence", "data", "research", "study", "measured",
}

// validationTriggers on the latest thought produce a validate suggestion.
var validationTriggers = []string{"hypothesis", "theory", "propose"}

// Generate produces the full, priority-sorted suggestion list for the
// session. history is every thought so far including the latest; complexity
// is the latest context snapshot's tier. Callers truncate to their limit.
func Generate(history []string, complexity string) []Suggestion {
	if len(history) == 0 {
		return nil
	}
	latest := history[len(history)-1]

	var out []Suggestion
	out = append(out, gapSuggestions(history)...)
	out = append(out, assumptionSuggestions(latest)...)

	if len(history) >= 3 {
		out = append(out, Suggestion{
			Type:       TypeSynthesize,
			Suggestion: "Synthesize the key points from the thoughts so far into a unified position",
			Priority:   0.9,
			Reasoning:  fmt.Sprintf("%d thoughts accumulated without a synthesis step", len(history)),
		})
	}

	if complexity == analysis.ComplexityHigh {
		out = append(out, Suggestion{
			Type:       TypeExplore,
			Suggestion: "Explore one branch of the argument in isolation before recombining",
			Priority:   0.6,
			Reasoning:  "current thought has high discourse complexity",
		})
	}

	lower := strings.ToLower(latest)
	for _, trigger := range validationTriggers {
		if strings.Contains(lower, trigger) {
			out = append(out, Suggestion{
				Type:       TypeValidate,
				Suggestion: "Define a concrete test that could falsify this " + trigger,
				Priority:   0.85,
				Reasoning:  "latest thought states a " + trigger + " without a validation plan",
			})
			break
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// gapSuggestions detects weak transitions between consecutive thoughts and
// terms used without ever being defined.
func gapSuggestions(history []string) []Suggestion {
	var out []Suggestion

	for i := 1; i < len(history); i++ {
		curr := history[i]
		lower := strings.ToLower(curr)
		connected := false
		for _, c := range transitionConnectives {
			if strings.Contains(lower, c) {
				connected = true
				break
			}
		}
		if connected {
			continue
		}
		shared := sharedTerms(history[i-1], curr)
		if shared < 2 {
			out = append(out, Suggestion{
				Type:       TypeClarify,
				Suggestion: fmt.Sprintf("Clarify how thought %d follows from thought %d", i+1, i),
				Priority:   0.8,
				Reasoning:  "consecutive thoughts share few terms and no connective",
			})
		}
	}

	if term := firstUndefinedTerm(history); term != "" {
		out = append(out, Suggestion{
			Type:       TypeClarify,
			Suggestion: fmt.Sprintf("Define the term %q explicitly", term),
			Priority:   0.8,
			Reasoning:  "the term is used repeatedly but never defined",
		})
	}

	return out
}

// firstUndefinedTerm finds a token longer than 6 characters in the latest
// thought that is never followed by a defining phrase anywhere in history.
func firstUndefinedTerm(history []string) string {
	latest := history[len(history)-1]
	joined := strings.ToLower(strings.Join(history, " "))
	for _, tok := range analysis.Tokenize(latest) {
		if len(tok) <= 6 {
			continue
		}
		if strings.Contains(joined, tok+" is ") ||
			strings.Contains(joined, tok+" means ") ||
			strings.Contains(joined, tok+" refers to ") {
			continue
		}
		return tok
	}
	return ""
}

// assumptionSuggestions challenges explicit assumptions and unsupported
// definitive claims in the latest thought.
func assumptionSuggestions(latest string) []Suggestion {
	var out []Suggestion

	for _, match := range assumptionPattern.FindAllStringSubmatch(latest, -1) {
		out = append(out, Suggestion{
			Type:       TypeChallenge,
			Suggestion: fmt.Sprintf("Challenge the assumption that %s", strings.TrimSpace(match[1])),
			Priority:   0.7,
			Reasoning:  "explicit assumption stated without justification",
		})
	}

	lower := strings.ToLower(latest)
	definitive := false
	for _, marker := range definitiveMarkers {
		if strings.Contains(lower, marker) {
			definitive = true
			break
		}
	}
	if definitive {
		supported := false
		for _, marker := range evidenceMarkers {
			if strings.Contains(lower, marker) {
				supported = true
				break
			}
		}
		if !supported {
			out = append(out, Suggestion{
				Type:       TypeChallenge,
				Suggestion: "Provide evidence for the definitive claim, or soften it",
				Priority:   0.7,
				Reasoning:  "definitive statement lacks any evidentiary phrase",
			})
		}
	}

	return out
}

func sharedTerms(a, b string) int {
	setA := analysis.TermSet(a)
	count := 0
	for term := range analysis.TermSet(b) {
		if setA[term] {
			count++
		}
	}
	return count
}

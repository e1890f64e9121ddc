package orchestrator

import (
	"strings"

	"github.com/noema-dev/noema/internal/graph"
)

// LightweightResult is the non-autonomous fallback: instead of the phase
// loop, the problem statement gets a quick summary, sentiment, key-concept
// and tone extraction.
type LightweightResult struct {
	Summary     string   `json:"summary"`
	Sentiment   string   `json:"sentiment"`
	KeyConcepts []string `json:"key_concepts"`
	Tone        string   `json:"tone"`
}

var positiveMarkers = []string{"improve", "great", "opportunity", "benefit", "success", "growth"}
var negativeMarkers = []string{"problem", "fail", "broken", "risk", "slow", "loss", "bug"}

// Summarize produces the lightweight analysis of a problem statement.
func Summarize(problem string) LightweightResult {
	concepts := graph.ExtractConcepts(problem)
	if len(concepts) > 5 {
		concepts = concepts[:5]
	}

	return LightweightResult{
		Summary:     firstSentence(problem),
		Sentiment:   classifySentiment(problem),
		KeyConcepts: concepts,
		Tone:        classifyTone(problem),
	}
}

func firstSentence(text string) string {
	trimmed := strings.TrimSpace(text)
	for i, r := range trimmed {
		if r == '.' || r == '!' || r == '?' {
			return trimmed[:i+1]
		}
	}
	return trimmed
}

func classifySentiment(text string) string {
	lower := strings.ToLower(text)
	score := 0
	for _, m := range positiveMarkers {
		if strings.Contains(lower, m) {
			score++
		}
	}
	for _, m := range negativeMarkers {
		if strings.Contains(lower, m) {
			score--
		}
	}
	switch {
	case score > 0:
		return "positive"
	case score < 0:
		return "negative"
	default:
		return "neutral"
	}
}

func classifyTone(text string) string {
	switch {
	case strings.Contains(text, "?"):
		return "inquisitive"
	case strings.Contains(text, "!"):
		return "emphatic"
	case strings.Contains(strings.ToLower(text), "must"), strings.Contains(strings.ToLower(text), "need"):
		return "urgent"
	default:
		return "descriptive"
	}
}

package analysis

import "strings"

// Scores holds the five bounded quality measures for one thought plus their
// arithmetic mean. All values lie in [0,1]; clarity never drops below 0.1.
type Scores struct {
	Coherence float64 `json:"coherence"`
	Relevance float64 `json:"relevance"`
	Novelty   float64 `json:"novelty"`
	Depth     float64 `json:"depth"`
	Clarity   float64 `json:"clarity"`
	Overall   float64 `json:"overall"`
}

// logicalConnectors contribute to coherence when a thought explicitly
// builds on the previous one.
var logicalConnectors = []string{
	"therefore", "however", "building on", "following from",
}

// depthIndicators signal that a thought explains rather than asserts.
var depthIndicators = []string{
	"because", "which means", "this implies", "the reason",
	"as a result", "underlying", "root cause", "fundamentally", "due to",
}

// ScoreQuality computes the quality measures for the current thought.
// previous is the immediately preceding thought ("" for the first thought),
// history is every prior thought in order, and keywords is the current
// context snapshot's keyword list.
func ScoreQuality(current, previous string, history []string, keywords []string) Scores {
	s := Scores{
		Coherence: scoreCoherence(current, previous),
		Relevance: scoreRelevance(current, keywords),
		Novelty:   scoreNovelty(current, history),
		Depth:     scoreDepth(current),
		Clarity:   scoreClarity(current),
	}
	s.Overall = (s.Coherence + s.Relevance + s.Novelty + s.Depth + s.Clarity) / 5.0
	return s
}

func scoreCoherence(current, previous string) float64 {
	if previous == "" {
		return 1.0
	}
	currTerms := TermSet(current)
	prevTerms := TermSet(previous)
	shared := 0
	for term := range currTerms {
		if prevTerms[term] {
			shared++
		}
	}
	lower := strings.ToLower(current)
	connectors := 0
	for _, c := range logicalConnectors {
		if strings.Contains(lower, c) {
			connectors++
		}
	}
	return capped(float64(shared)*0.2 + float64(connectors)*0.3)
}

func scoreRelevance(current string, keywords []string) float64 {
	keywordSet := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		keywordSet[kw] = true
	}
	matches := 0
	for term := range TermSet(current) {
		if keywordSet[term] {
			matches++
		}
	}
	return capped(float64(matches) * 0.2)
}

func scoreNovelty(current string, history []string) float64 {
	known := make(map[string]bool)
	for _, past := range history {
		for term := range TermSet(past) {
			known[term] = true
		}
	}
	novel := 0
	for term := range TermSet(current) {
		if !known[term] {
			novel++
		}
	}
	return capped(float64(novel) * 0.1)
}

func scoreDepth(current string) float64 {
	lower := strings.ToLower(current)
	count := 0
	for _, phrase := range depthIndicators {
		if strings.Contains(lower, phrase) {
			count++
		}
	}
	return capped(float64(count) * 0.25)
}

// scoreClarity rewards sentences near a 17.5-word average. Texts with no
// sentences score as if the average length were zero.
func scoreClarity(current string) float64 {
	sentences := splitSentences(current)
	avg := 0.0
	if len(sentences) > 0 {
		words := 0
		for _, s := range sentences {
			words += len(strings.Fields(s))
		}
		avg = float64(words) / float64(len(sentences))
	}
	score := 1.0 - abs(avg-17.5)*0.02
	if score < 0.1 {
		return 0.1
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}

func splitSentences(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var sentences []string
	for _, s := range raw {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func capped(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

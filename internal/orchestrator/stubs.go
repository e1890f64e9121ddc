package orchestrator

import (
	"fmt"
	"strings"
)

// stubResult is the output of one internal executor: the text block
// appended to the solution components, and the step confidence it
// contributes (fixed per executor, 0.75–0.9; 1/maxSteps for the generic
// fallback — the mixed weighting is intentional and preserved).
type stubResult struct {
	Text       string
	Confidence float64
}

var errEmptyProblem = fmt.Errorf("empty problem statement")

// runDecompose produces the requirements breakdown. The REQUIREMENTS:
// marker is load-bearing — synthesis locates it by substring.
func runDecompose(problem string, pt ProblemType, focus string) (stubResult, error) {
	if strings.TrimSpace(problem) == "" {
		return stubResult{}, errEmptyProblem
	}

	var b strings.Builder
	b.WriteString("REQUIREMENTS:\n")
	b.WriteString(fmt.Sprintf("- Core problem (%s): %s\n", pt, problem))
	b.WriteString("- Functional: identify the primary capability the solution must provide\n")
	b.WriteString("- Constraints: time, resources, and compatibility with the existing environment\n")
	switch pt {
	case ProblemArchitecture:
		b.WriteString("- Non-functional: availability, horizontal scalability, operational cost\n")
	case ProblemAlgorithmic:
		b.WriteString("- Non-functional: asymptotic complexity target and memory ceiling\n")
	case ProblemBusiness:
		b.WriteString("- Non-functional: measurable business outcome and adoption risk\n")
	default:
		b.WriteString("- Non-functional: clarity, maintainability, verifiability\n")
	}
	b.WriteString(fmt.Sprintf("- Focus of this pass: %s\n", focus))

	return stubResult{Text: b.String(), Confidence: 0.85}, nil
}

func runResearch(problem string, pt ProblemType, focus string) (stubResult, error) {
	if strings.TrimSpace(problem) == "" {
		return stubResult{}, errEmptyProblem
	}

	var b strings.Builder
	b.WriteString("DOMAIN FINDINGS:\n")
	switch pt {
	case ProblemArchitecture:
		b.WriteString("- Established styles: layered monolith, microservices, event-driven\n")
		b.WriteString("- Trade-off axis: operational complexity vs independent deployability\n")
	case ProblemAlgorithmic:
		b.WriteString("- Candidate families: divide and conquer, dynamic programming, greedy\n")
		b.WriteString("- Trade-off axis: preprocessing cost vs per-query cost\n")
	case ProblemBusiness:
		b.WriteString("- Reference frames: cost leadership, differentiation, niche focus\n")
	default:
		b.WriteString("- Comparable prior solutions exist; prefer the simplest that fits\n")
	}
	b.WriteString(fmt.Sprintf("- Research focus: %s\n", focus))

	return stubResult{Text: b.String(), Confidence: 0.75}, nil
}

// runDesign produces the solution outline. For architecture problems the
// CORE MICROSERVICES marker is load-bearing for synthesis.
func runDesign(problem string, pt ProblemType, focus string) (stubResult, error) {
	if strings.TrimSpace(problem) == "" {
		return stubResult{}, errEmptyProblem
	}

	var b strings.Builder
	b.WriteString("SOLUTION OUTLINE:\n")
	switch pt {
	case ProblemArchitecture:
		b.WriteString("CORE MICROSERVICES\n")
		b.WriteString("- gateway: request routing, authentication boundary\n")
		b.WriteString("- domain service: the business capability extracted from the problem\n")
		b.WriteString("- data service: ownership of the primary datastore\n")
		b.WriteString("- async worker: background processing behind a queue\n")
	case ProblemAlgorithmic:
		b.WriteString("- Chosen approach: the simplest family meeting the complexity target\n")
		b.WriteString("- Data layout: pick the structure that makes the hot path O(1) or O(log n)\n")
	case ProblemBusiness:
		b.WriteString("- Strategy: sequence quick wins before structural bets\n")
	default:
		b.WriteString("- Minimal viable solution first, then iterate against the requirements\n")
	}
	b.WriteString(fmt.Sprintf("- Design focus: %s\n", focus))

	return stubResult{Text: b.String(), Confidence: 0.9}, nil
}

func runValidate(problem string, pt ProblemType, focus string) (stubResult, error) {
	if strings.TrimSpace(problem) == "" {
		return stubResult{}, errEmptyProblem
	}

	var b strings.Builder
	b.WriteString("VALIDATION:\n")
	b.WriteString("- Requirements coverage: every REQUIREMENTS item maps to a design element\n")
	b.WriteString("- Failure modes: enumerate what breaks first under load or bad input\n")
	b.WriteString(fmt.Sprintf("- Validation focus: %s\n", focus))

	return stubResult{Text: b.String(), Confidence: 0.8}, nil
}

func runSynthesize(problem string, pt ProblemType, focus string) (stubResult, error) {
	if strings.TrimSpace(problem) == "" {
		return stubResult{}, errEmptyProblem
	}

	var b strings.Builder
	b.WriteString("SYNTHESIS:\n")
	b.WriteString("- Consolidate decomposition, findings and outline into one recommendation\n")
	b.WriteString(fmt.Sprintf("- Synthesis focus: %s\n", focus))

	return stubResult{Text: b.String(), Confidence: 0.88}, nil
}

// dispatch selects the executor for a phase kind. Unknown kinds fall back
// to a generic deep analysis whose confidence is 1/maxSteps.
func dispatch(kind PhaseKind, problem string, pt ProblemType, focus string, maxSteps int) (stubResult, error) {
	switch kind {
	case PhaseDecompose:
		return runDecompose(problem, pt, focus)
	case PhaseResearch:
		return runResearch(problem, pt, focus)
	case PhaseDesign:
		return runDesign(problem, pt, focus)
	case PhaseValidate:
		return runValidate(problem, pt, focus)
	case PhaseSynthesize:
		return runSynthesize(problem, pt, focus)
	default:
		if strings.TrimSpace(problem) == "" {
			return stubResult{}, errEmptyProblem
		}
		text := fmt.Sprintf("DEEP ANALYSIS:\n- General examination of: %s\n", problem)
		return stubResult{Text: text, Confidence: 1.0 / float64(maxSteps)}, nil
	}
}

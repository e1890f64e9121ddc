package orchestrator

import (
	"fmt"
	"strings"
	"time"
)

// timeNow is a var to allow test injection.
var timeNow = time.Now

// Trace entry kinds.
const (
	TraceKindPlan  = "plan"
	TraceKindAct   = "act"
	TraceKindError = "error"
)

// TraceEntry is one line of the cognitive trace: a plan entry announcing
// the phase, an act entry recording the internal tool invocation, or an
// error entry when a stub failed.
type TraceEntry struct {
	Step    int    `json:"step"`
	Kind    string `json:"kind"`
	Phase   string `json:"phase"`
	Tool    string `json:"tool,omitempty"`
	Args    string `json:"args,omitempty"`
	Summary string `json:"summary"`
}

// Result is the success output of an orchestration run.
type Result struct {
	ProblemType   ProblemType  `json:"problem_type"`
	Solution      string       `json:"solution"`
	Trace         []TraceEntry `json:"cognitive_trace"`
	ToolsInvoked  []string     `json:"tools_invoked"`
	Confidence    float64      `json:"confidence"`
	ElapsedMillis int64        `json:"elapsed_ms"`
}

// Run executes the bounded planning loop: classify the problem once, select
// the canned phase sequence, then iterate maxSteps times dispatching to the
// phase's stub executor. A stub error is recorded as a trace entry and the
// loop continues; it never aborts the run. Confidence accumulates as
// stepConfidence/maxSteps per step, capped at 1.0.
func Run(problem string, maxSteps int, focusAreas []string) Result {
	start := timeNow()

	if maxSteps < 1 {
		maxSteps = 1
	}
	if maxSteps > 10 {
		maxSteps = 10
	}

	pt := Classify(problem)
	sequence := PhaseSequence(pt)

	var (
		trace      []TraceEntry
		components []string
		tools      []string
		toolsSeen  = make(map[string]bool)
		confidence float64
	)

	args := fmt.Sprintf("problem_type=%s", pt)
	if len(focusAreas) > 0 {
		args += " focus_areas=" + strings.Join(focusAreas, ",")
	}

	for step := 1; step <= maxSteps; step++ {
		idx := step - 1
		if idx >= len(sequence) {
			idx = len(sequence) - 1 // sequence exhausted: repeat the last phase
		}
		phase := sequence[idx]

		trace = append(trace, TraceEntry{
			Step:    step,
			Kind:    TraceKindPlan,
			Phase:   phase.Kind.String(),
			Summary: fmt.Sprintf("plan: %s pass focused on %s", phase.Kind, phase.Focus),
		})

		result, err := dispatch(phase.Kind, problem, pt, phase.Focus, maxSteps)
		if err != nil {
			trace = append(trace, TraceEntry{
				Step:    step,
				Kind:    TraceKindError,
				Phase:   phase.Kind.String(),
				Tool:    phase.Kind.ToolName(),
				Summary: fmt.Sprintf("step %d failed: %v — continuing", step, err),
			})
			continue
		}

		tool := phase.Kind.ToolName()
		if !toolsSeen[tool] {
			toolsSeen[tool] = true
			tools = append(tools, tool)
		}

		confidence += result.Confidence / float64(maxSteps)
		if confidence > 1.0 {
			confidence = 1.0
		}

		components = append(components, result.Text)
		trace = append(trace, TraceEntry{
			Step:    step,
			Kind:    TraceKindAct,
			Phase:   phase.Kind.String(),
			Tool:    tool,
			Args:    args,
			Summary: summarize(result.Text),
		})
	}

	return Result{
		ProblemType:   pt,
		Solution:      synthesizeSolution(problem, pt, components),
		Trace:         trace,
		ToolsInvoked:  tools,
		Confidence:    confidence,
		ElapsedMillis: timeNow().Sub(start).Milliseconds(),
	}
}

// summarize takes the first line of a component as the trace summary.
func summarize(text string) string {
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	return "produced " + strings.TrimSuffix(strings.ToLower(line), ":") + " block"
}

// synthesizeSolution splices marked sections out of the accumulated
// components into the final narrative. Markers are located by substring;
// missing sections are simply omitted.
func synthesizeSolution(problem string, pt ProblemType, components []string) string {
	joined := strings.Join(components, "\n")

	var b strings.Builder
	b.WriteString(fmt.Sprintf("## Solution for: %s\n\n", problem))
	b.WriteString(fmt.Sprintf("Problem classified as %s.\n\n", pt))

	if section := extractSection(joined, "REQUIREMENTS:"); section != "" {
		b.WriteString("### Requirements\n")
		b.WriteString(section)
		b.WriteString("\n")
	}
	if section := extractSection(joined, "CORE MICROSERVICES"); section != "" {
		b.WriteString("### Proposed services\n")
		b.WriteString(section)
		b.WriteString("\n")
	}
	if section := extractSection(joined, "VALIDATION:"); section != "" {
		b.WriteString("### Validation\n")
		b.WriteString(section)
		b.WriteString("\n")
	}

	if len(components) == 0 {
		b.WriteString("No analysis steps completed successfully.\n")
	} else {
		b.WriteString(fmt.Sprintf("Synthesis drew on %d completed analysis passes.\n", len(components)))
	}

	return b.String()
}

// extractSection returns the lines following a marker up to the next blank
// line or end of the text, excluding the marker line itself.
func extractSection(text, marker string) string {
	idx := strings.Index(text, marker)
	if idx < 0 {
		return ""
	}
	rest := text[idx:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	} else {
		return ""
	}
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		rest = rest[:end]
	}
	// Stop at the next marker-style heading if one follows immediately.
	var lines []string
	for _, line := range strings.Split(rest, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}
		if !strings.HasPrefix(trimmed, "-") && strings.HasSuffix(trimmed, ":") {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

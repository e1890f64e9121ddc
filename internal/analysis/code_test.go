package analysis

import (
	"reflect"
	"testing"
)

// --- AnalyzeCode ---

func TestAnalyzeCode_LanguageDetection(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"refactor the React component tree", "javascript"},
		{"the typescript compiler flags this", "typescript"},
		{"a goroutine leaks under load", "go"},
		{"the SQL join is slow", "sql"},
		{"no hints at all", "unknown"},
	}
	for _, tt := range tests {
		if got := AnalyzeCode(tt.text, ComplexityLow).Language; got != tt.want {
			t.Errorf("language for %q = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestAnalyzeCode_TypescriptWinsOverJavascript(t *testing.T) {
	// Both tables match; the earlier rule takes precedence.
	got := AnalyzeCode("migrating javascript to typescript", ComplexityLow).Language
	if got != "typescript" {
		t.Errorf("language = %q, want typescript", got)
	}
}

func TestAnalyzeCode_PatternsAndSmells(t *testing.T) {
	a := AnalyzeCode("the singleton holds global state and the factory wraps it", ComplexityMedium)
	wantPatterns := []string{"Singleton", "Factory"}
	if !reflect.DeepEqual(a.Patterns, wantPatterns) {
		t.Errorf("patterns = %v, want %v", a.Patterns, wantPatterns)
	}
	wantSmells := []string{"Global state"}
	if !reflect.DeepEqual(a.CodeSmells, wantSmells) {
		t.Errorf("smells = %v, want %v", a.CodeSmells, wantSmells)
	}
}

func TestAnalyzeCode_ArchitecturalConcepts(t *testing.T) {
	a := AnalyzeCode("each microservice publishes to a message queue behind the api gateway", ComplexityHigh)
	want := []string{"Microservices", "Event-driven architecture", "API gateway"}
	if !reflect.DeepEqual(a.ArchitecturalConcepts, want) {
		t.Errorf("concepts = %v, want %v", a.ArchitecturalConcepts, want)
	}
}

func TestAnalyzeCode_SuggestionsFromSmells(t *testing.T) {
	a := AnalyzeCode("there is duplicate logic with hardcoded limits in python", ComplexityLow)
	want := []string{
		"Address the detected smell: Duplicated code",
		"Address the detected smell: Magic values",
	}
	if !reflect.DeepEqual(a.Suggestions, want) {
		t.Errorf("suggestions = %v, want %v", a.Suggestions, want)
	}
}

func TestAnalyzeCode_SuggestionsFallback(t *testing.T) {
	a := AnalyzeCode("clean python code with a repository layer", ComplexityLow)
	for _, s := range a.Suggestions {
		if s == "No immediate code concerns detected" {
			return
		}
	}
	t.Errorf("expected the no-concerns fallback, got %v", a.Suggestions)
}

func TestAnalyzeCode_CarriesComplexity(t *testing.T) {
	a := AnalyzeCode("anything", ComplexityHigh)
	if a.Complexity != ComplexityHigh {
		t.Errorf("complexity = %q, want %q", a.Complexity, ComplexityHigh)
	}
}

// --- DeriveInsights ---

func TestDeriveInsights_SmellsDriveRefactoring(t *testing.T) {
	a := AnalyzeCode("the god class does everything and is tightly coupled", ComplexityMedium)
	ins := DeriveInsights(a)

	if len(ins.AntiPatterns) != len(a.CodeSmells) {
		t.Errorf("anti-patterns = %v, want the detected smells %v", ins.AntiPatterns, a.CodeSmells)
	}
	if len(ins.RefactoringOpportunities) != len(a.CodeSmells) {
		t.Errorf("refactoring opportunities = %v, want one per smell", ins.RefactoringOpportunities)
	}
	found := false
	for _, p := range ins.Principles {
		if p == "Single Responsibility Principle" {
			found = true
		}
	}
	if !found {
		t.Errorf("principles = %v, want SRP when smells exist", ins.Principles)
	}
}

func TestDeriveInsights_HighComplexityAddsDecomposition(t *testing.T) {
	a := AnalyzeCode("plain text", ComplexityHigh)
	ins := DeriveInsights(a)
	found := false
	for _, bp := range ins.BestPractices {
		if bp == "Break the problem into independently testable units" {
			found = true
		}
	}
	if !found {
		t.Errorf("best practices = %v, missing decomposition advice", ins.BestPractices)
	}
}

func TestDeriveInsights_MicroservicesAddContractTests(t *testing.T) {
	a := AnalyzeCode("split the monolith into microservices", ComplexityHigh)
	ins := DeriveInsights(a)
	found := false
	for _, s := range ins.TestingStrategies {
		if s == "Contract tests across service boundaries" {
			found = true
		}
	}
	if !found {
		t.Errorf("testing strategies = %v, missing contract tests", ins.TestingStrategies)
	}
}

func TestDeriveInsights_DefaultPrinciple(t *testing.T) {
	ins := DeriveInsights(AnalyzeCode("nothing notable", ComplexityLow))
	want := []string{"Keep interfaces small and explicit"}
	if !reflect.DeepEqual(ins.Principles, want) {
		t.Errorf("principles = %v, want %v", ins.Principles, want)
	}
}

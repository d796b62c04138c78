package agent

import (
	"context"
	"fmt"
	"testing"

	"studybuddy/models"
	"studybuddy/services/llm"
)

type fakeModel struct {
	invoke         func(ctx context.Context, prompt string) (string, error)
	invokeWithTool func(ctx context.Context, system, prompt string, tool llm.ToolSpec) (string, error)
}

func (m *fakeModel) Invoke(ctx context.Context, prompt string) (string, error) {
	if m.invoke == nil {
		return "", fmt.Errorf("unexpected Invoke call")
	}
	return m.invoke(ctx, prompt)
}

func (m *fakeModel) InvokeWithTool(ctx context.Context, system, prompt string, tool llm.ToolSpec) (string, error) {
	if m.invokeWithTool == nil {
		return "", fmt.Errorf("unexpected InvokeWithTool call")
	}
	return m.invokeWithTool(ctx, system, prompt, tool)
}

func TestRouteQuestionOverrides(t *testing.T) {
	// The model errors on every call, so a successful route proves the
	// decision was made without consulting it.
	router := NewRouter(&fakeModel{})

	tests := []struct {
		question string
		expected models.RouteDecision
	}{
		{"Write a 16-mark answer on process scheduling", models.RouteExamAnswer},
		{"Give me a 16 mark answer about TCP", models.RouteExamAnswer},
		{"I need an exam answer for normalization", models.RouteExamAnswer},
		{"Make a study plan for my finals", models.RouteStudyPlan},
		{"What schedule should I follow this month?", models.RouteStudyPlan},
		{"How to prepare for the algorithms exam?", models.RouteStudyPlan},
		{"Quiz me on sorting algorithms", models.RouteQuiz},
		{"Test my knowledge of graphs", models.RouteQuiz},
		{"Give me practice questions on SQL", models.RouteQuiz},
		{"Create flashcards on Data Structures", models.RouteFlashcards},
		{"Which important questions come up for operating systems?", models.RouteImportantQuestions},
		{"Explain binary search", models.RouteExplainConcept},
		{"What is a B-tree?", models.RouteExplainConcept},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			decision, err := router.Route(context.Background(), tt.question)
			if err != nil {
				t.Fatalf("Route() returned error: %v", err)
			}
			if decision != tt.expected {
				t.Errorf("Route(%q) = %s, want %s", tt.question, decision, tt.expected)
			}
		})
	}
}

func TestRouteOverridesMatchWholeWordsOnly(t *testing.T) {
	// Phrases embedded inside longer words must not force a branch; these
	// questions fall through to the model, which picks web-search.
	router := NewRouter(&fakeModel{
		invoke: func(ctx context.Context, prompt string) (string, error) {
			return "web-search", nil
		},
	})

	questions := []string{
		"What's the latest WHO guidance on malaria?",
		"Who won the spelling contest last year?",
		"Name the greatest physicists of the 20th century",
	}

	for _, question := range questions {
		decision, err := router.Route(context.Background(), question)
		if err != nil {
			t.Fatalf("Route(%q) returned error: %v", question, err)
		}
		if decision != models.RouteWebSearch {
			t.Errorf("Route(%q) = %s, want %s (phrase overrides must match whole words)",
				question, decision, models.RouteWebSearch)
		}
	}
}

func TestRouteModelDecision(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected models.RouteDecision
	}{
		{"plain branch name", "web-search", models.RouteWebSearch},
		{"branch name with whitespace", "  document-search\n", models.RouteDocumentSearch},
		{"verbose response", "I would use the flashcards tool for this.", models.RouteFlashcards},
		{"uppercase response", "WEB-SEARCH", models.RouteWebSearch},
		{"unknown response falls back", "let me think about that", models.RouteDocumentSearch},
		{"empty response falls back", "", models.RouteDocumentSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(&fakeModel{
				invoke: func(ctx context.Context, prompt string) (string, error) {
					return tt.response, nil
				},
			})

			decision, err := router.Route(context.Background(), "tell me about photosynthesis")
			if err != nil {
				t.Fatalf("Route() returned error: %v", err)
			}
			if decision != tt.expected {
				t.Errorf("Route() = %s, want %s", decision, tt.expected)
			}
		})
	}
}

func TestRouteModelFailurePropagates(t *testing.T) {
	router := NewRouter(&fakeModel{
		invoke: func(ctx context.Context, prompt string) (string, error) {
			return "", fmt.Errorf("connection refused")
		},
	})

	if _, err := router.Route(context.Background(), "tell me about photosynthesis"); err == nil {
		t.Fatal("Route() should propagate model transport failures")
	}
}

func TestParseDecisionClosedSet(t *testing.T) {
	for _, route := range models.AllRoutes {
		if got := parseDecision(string(route)); got != route {
			t.Errorf("parseDecision(%q) = %s, want %s", route, got, route)
		}
	}

	// Whatever the model says, the result is always a member of the set.
	garbage := []string{"", "searching", "both quiz and flashcards please", "🤖"}
	for _, response := range garbage {
		if got := parseDecision(response); !got.Valid() {
			t.Errorf("parseDecision(%q) = %q, not in the closed set", response, got)
		}
	}

	// A response naming several branches resolves to the most specific one.
	if got := parseDecision("quiz or maybe document-search"); got != models.RouteQuiz {
		t.Errorf("parseDecision ambiguous = %s, want %s", got, models.RouteQuiz)
	}
}

package agent

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"studybuddy/models"
	"studybuddy/services/llm"
)

// questionOverride maps question phrases to a branch. Overrides are
// checked in order before the model is consulted, so questions that name
// their task explicitly never depend on model output. Phrases match whole
// words only; "test" must not fire on "latest" or "greatest".
type questionOverride struct {
	phrases  []string
	patterns []*regexp.Regexp
	route    models.RouteDecision
}

var questionOverrides = []questionOverride{
	newOverride(models.RouteExamAnswer, "16 mark", "16-mark", "exam answer"),
	newOverride(models.RouteStudyPlan, "study plan", "schedule", "how to prepare"),
	newOverride(models.RouteQuiz, "quiz", "test", "practice questions"),
	newOverride(models.RouteFlashcards, "flashcards", "flashcard"),
	newOverride(models.RouteImportantQuestions, "important questions"),
	newOverride(models.RouteExplainConcept, "explain", "what is"),
}

func newOverride(route models.RouteDecision, phrases ...string) questionOverride {
	patterns := make([]*regexp.Regexp, len(phrases))
	for i, phrase := range phrases {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return questionOverride{phrases: phrases, patterns: patterns, route: route}
}

// Router classifies a question into exactly one branch.
type Router struct {
	model llm.Model
}

func NewRouter(model llm.Model) *Router {
	return &Router{model: model}
}

// Route returns the branch for a question. Unrecognized model responses
// fall back to document search; only model transport failures error.
func (r *Router) Route(ctx context.Context, question string) (models.RouteDecision, error) {
	for _, override := range questionOverrides {
		for i, pattern := range override.patterns {
			if pattern.MatchString(question) {
				log.Printf("[INFO] Routing question to %s (matched %q)", override.route, override.phrases[i])
				return override.route, nil
			}
		}
	}

	response, err := r.model.Invoke(ctx, fmt.Sprintf(routingPrompt, question))
	if err != nil {
		return "", fmt.Errorf("failed to route question: %w", err)
	}

	decision := parseDecision(response)
	log.Printf("[INFO] Routing question to %s (model said %q)", decision, strings.TrimSpace(response))
	return decision, nil
}

// parseDecision scans a model response for the first known branch name.
// Specific branches are checked before the generic search branches so a
// verbose response mentioning several names resolves predictably.
func parseDecision(response string) models.RouteDecision {
	lowered := strings.ToLower(response)

	for _, route := range models.AllRoutes {
		if strings.Contains(lowered, string(route)) {
			return route
		}
	}

	return models.RouteDocumentSearch
}

package examtools

import (
	"context"
	"fmt"
	"log"

	"studybuddy/models"
)

// ExplainConcept produces a layered explanation of a single concept, from
// an intuitive definition up to exam tips.
func (s *Service) ExplainConcept(ctx context.Context, concept, contextText string, difficulty string) (*models.TaskResult, error) {
	log.Printf("[INFO] Explaining concept %q", concept)

	difficulty = normalizeDifficulty(difficulty)

	explainContext := contextText
	if explainContext == "" {
		explainContext = "No specific context. Provide a comprehensive explanation."
	}

	prompt := fmt.Sprintf(explainConceptPrompt, concept, difficulty, explainContext)

	explanation, err := s.model.Invoke(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Failed to explain concept: %v", err)
		return nil, fmt.Errorf("failed to explain concept: %w", err)
	}

	return &models.TaskResult{
		Answer: explanation,
		Metadata: models.TaskMetadata{
			Topic:       concept,
			Difficulty:  difficulty,
			GeneratedAt: s.timestamp(),
		},
	}, nil
}

package examtools

import (
	"context"
	"fmt"
	"log"

	"studybuddy/models"
)

// GenerateExamAnswer produces a structured 16-mark answer for the question,
// optionally grounded in retrieved study material.
func (s *Service) GenerateExamAnswer(ctx context.Context, question, contextText string) (*models.TaskResult, error) {
	log.Printf("[INFO] Generating 16-mark exam answer")

	prompt := fmt.Sprintf(examAnswerPrompt, question, orGeneralKnowledge(contextText))

	answer, err := s.model.Invoke(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Failed to generate exam answer: %v", err)
		return nil, fmt.Errorf("failed to generate exam answer: %w", err)
	}

	return &models.TaskResult{
		Answer: answer,
		Metadata: models.TaskMetadata{
			Marks:       16,
			GeneratedAt: s.timestamp(),
		},
	}, nil
}

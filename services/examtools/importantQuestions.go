package examtools

import (
	"context"
	"fmt"
	"log"

	"studybuddy/models"
)

// GenerateImportantQuestions produces a ranked list of likely exam
// questions with marks and key answer points.
func (s *Service) GenerateImportantQuestions(ctx context.Context, topic, contextText string, numQuestions int) (*models.TaskResult, error) {
	log.Printf("[INFO] Generating %d important questions on %q", numQuestions, topic)

	if numQuestions <= 0 {
		numQuestions = 10
	}

	prompt := fmt.Sprintf(importantQuestionsPrompt, topic, contextText, numQuestions)

	questions, err := s.model.Invoke(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Failed to generate important questions: %v", err)
		return nil, fmt.Errorf("failed to generate important questions: %w", err)
	}

	return &models.TaskResult{
		Answer: questions,
		Metadata: models.TaskMetadata{
			Topic:        topic,
			NumQuestions: numQuestions,
			GeneratedAt:  s.timestamp(),
		},
	}, nil
}

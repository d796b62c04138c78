package examtools

import (
	"context"
	"fmt"
	"log"

	"studybuddy/models"
)

// GenerateQuiz produces MCQ questions with an embedded answer key.
func (s *Service) GenerateQuiz(ctx context.Context, topic, contextText string, numQuestions int, difficulty string) (*models.TaskResult, error) {
	log.Printf("[INFO] Generating %d-question %s quiz on %q", numQuestions, difficulty, topic)

	if numQuestions <= 0 {
		numQuestions = 5
	}
	difficulty = normalizeDifficulty(difficulty)

	quizContext := contextText
	if quizContext == "" {
		quizContext = "Use general knowledge on this topic."
	}

	prompt := fmt.Sprintf(quizPrompt, topic, numQuestions, difficulty, quizContext, difficulty, numQuestions)

	quiz, err := s.model.Invoke(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Failed to generate quiz: %v", err)
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}

	return &models.TaskResult{
		Answer: quiz,
		Metadata: models.TaskMetadata{
			Topic:        topic,
			NumQuestions: numQuestions,
			Difficulty:   difficulty,
			GeneratedAt:  s.timestamp(),
		},
	}, nil
}

func normalizeDifficulty(difficulty string) string {
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return difficulty
	default:
		return DifficultyMedium
	}
}

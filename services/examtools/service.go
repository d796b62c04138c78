package examtools

import (
	"time"

	"studybuddy/services/llm"
)

// Difficulty levels accepted by the quiz and explanation generators.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Service holds the six exam-preparation generators. Each generator fills
// one fixed prompt template, makes exactly one model call, and returns the
// generated text verbatim with a generation timestamp.
type Service struct {
	model llm.Model
	now   func() time.Time
}

func NewService(model llm.Model) *Service {
	return &Service{
		model: model,
		now:   time.Now,
	}
}

func (s *Service) timestamp() string {
	return s.now().Format(time.RFC3339)
}

func orGeneralKnowledge(context string) string {
	if context == "" {
		return "No specific context provided. Use general knowledge."
	}
	return context
}

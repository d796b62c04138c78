package examtools

import (
	"context"
	"fmt"
	"log"

	"studybuddy/models"
)

// GenerateFlashcards produces a front/back/hint flashcard deck for a topic.
func (s *Service) GenerateFlashcards(ctx context.Context, topic, contextText string, numCards int) (*models.TaskResult, error) {
	log.Printf("[INFO] Generating %d flashcards on %q", numCards, topic)

	if numCards <= 0 {
		numCards = 10
	}

	cardContext := contextText
	if cardContext == "" {
		cardContext = "Use general knowledge on this topic."
	}

	prompt := fmt.Sprintf(flashcardsPrompt, numCards, topic, cardContext, numCards)

	cards, err := s.model.Invoke(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Failed to generate flashcards: %v", err)
		return nil, fmt.Errorf("failed to generate flashcards: %w", err)
	}

	return &models.TaskResult{
		Answer: cards,
		Metadata: models.TaskMetadata{
			Topic:       topic,
			NumCards:    numCards,
			GeneratedAt: s.timestamp(),
		},
	}, nil
}

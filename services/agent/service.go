package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"studybuddy/models"
	"studybuddy/services/examtools"
	"studybuddy/services/llm"
)

const (
	defaultTopK   = 5
	quizTopK      = 3
	maxWebResults = 3

	// Web pages can be arbitrarily long, cap each one when assembling
	// prompt context.
	webChunkCap = 1000
)

// ContextRetriever returns the top-k most similar stored chunks for a
// query. An empty knowledge base yields an empty slice, not an error.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]models.ContextChunk, error)
}

// WebSearcher returns page text chunks for a query, one per fetched URL.
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int, domains []string) ([]models.ContextChunk, error)
}

// Service runs one question through the routing graph: classify, gather
// context for the chosen branch, generate, return. Each query is a single
// synchronous pass; no branch loops back.
type Service struct {
	model     llm.Model
	router    *Router
	retriever ContextRetriever
	web       WebSearcher
	tools     *examtools.Service
}

func NewService(model llm.Model, retriever ContextRetriever, web WebSearcher, tools *examtools.Service) *Service {
	return &Service{
		model:     model,
		router:    NewRouter(model),
		retriever: retriever,
		web:       web,
		tools:     tools,
	}
}

// Query is the single entry point for answering a question.
func (s *Service) Query(ctx context.Context, question string) (*models.ToolResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}

	decision, err := s.router.Route(ctx, question)
	if err != nil {
		return nil, err
	}

	switch decision {
	case models.RouteDocumentSearch:
		return s.runDocumentSearch(ctx, question)
	case models.RouteWebSearch:
		return s.runWebSearch(ctx, question)
	case models.RouteExamAnswer:
		return s.runExamAnswer(ctx, question)
	case models.RouteStudyPlan:
		return s.runStudyPlan(ctx, question)
	case models.RouteQuiz:
		return s.runQuiz(ctx, question)
	case models.RouteFlashcards:
		return s.runFlashcards(ctx, question)
	case models.RouteExplainConcept:
		return s.runExplainConcept(ctx, question)
	case models.RouteImportantQuestions:
		return s.runImportantQuestions(ctx, question)
	default:
		return s.runDocumentSearch(ctx, question)
	}
}

func (s *Service) runDocumentSearch(ctx context.Context, question string) (*models.ToolResult, error) {
	chunks, err := s.retriever.Retrieve(ctx, question, defaultTopK)
	if err != nil {
		return nil, err
	}

	contextText := assembleContext(chunks, 0)
	if contextText == "" {
		contextText = emptyStoreContext
	}

	answer, err := s.synthesize(ctx, question, contextText)
	if err != nil {
		return nil, err
	}

	return &models.ToolResult{
		Answer:      answer,
		ToolUsed:    models.RouteDocumentSearch,
		ContextUsed: chunks,
	}, nil
}

func (s *Service) runWebSearch(ctx context.Context, question string) (*models.ToolResult, error) {
	chunks, err := s.web.Search(ctx, question, maxWebResults, nil)
	if err != nil {
		return nil, err
	}

	contextText := assembleContext(chunks, webChunkCap)
	if contextText == "" {
		contextText = noWebResultsContext
	}

	answer, err := s.synthesize(ctx, question, contextText)
	if err != nil {
		return nil, err
	}

	return &models.ToolResult{
		Answer:      answer,
		ToolUsed:    models.RouteWebSearch,
		ContextUsed: chunks,
	}, nil
}

func (s *Service) runExamAnswer(ctx context.Context, question string) (*models.ToolResult, error) {
	chunks, contextText, err := s.retrieveContext(ctx, question, defaultTopK)
	if err != nil {
		return nil, err
	}

	result, err := s.tools.GenerateExamAnswer(ctx, question, contextText)
	if err != nil {
		return nil, err
	}

	return toolResult(result, models.RouteExamAnswer, chunks), nil
}

func (s *Service) runStudyPlan(ctx context.Context, question string) (*models.ToolResult, error) {
	params := s.extractStudyPlanParams(ctx, question)

	result, err := s.tools.GenerateStudyPlan(ctx, params)
	if err != nil {
		return nil, err
	}

	return toolResult(result, models.RouteStudyPlan, nil), nil
}

func (s *Service) runQuiz(ctx context.Context, question string) (*models.ToolResult, error) {
	chunks, contextText, err := s.retrieveContext(ctx, question, quizTopK)
	if err != nil {
		return nil, err
	}

	topic := extractTopic(question, "quiz", "practice questions", "test")
	result, err := s.tools.GenerateQuiz(ctx, topic, contextText, parseCount(question, 5), parseDifficulty(question))
	if err != nil {
		return nil, err
	}

	return toolResult(result, models.RouteQuiz, chunks), nil
}

func (s *Service) runFlashcards(ctx context.Context, question string) (*models.ToolResult, error) {
	chunks, contextText, err := s.retrieveContext(ctx, question, defaultTopK)
	if err != nil {
		return nil, err
	}

	topic := extractTopic(question, "flashcards", "flashcard", "deck")
	result, err := s.tools.GenerateFlashcards(ctx, topic, contextText, parseCount(question, 10))
	if err != nil {
		return nil, err
	}

	return toolResult(result, models.RouteFlashcards, chunks), nil
}

func (s *Service) runExplainConcept(ctx context.Context, question string) (*models.ToolResult, error) {
	chunks, contextText, err := s.retrieveContext(ctx, question, defaultTopK)
	if err != nil {
		return nil, err
	}

	concept := extractTopic(question, "explain", "what is", "what are")
	if concept == "" {
		concept = question
	}

	result, err := s.tools.ExplainConcept(ctx, concept, contextText, parseDifficulty(question))
	if err != nil {
		return nil, err
	}

	return toolResult(result, models.RouteExplainConcept, chunks), nil
}

func (s *Service) runImportantQuestions(ctx context.Context, question string) (*models.ToolResult, error) {
	chunks, contextText, err := s.retrieveContext(ctx, question, defaultTopK)
	if err != nil {
		return nil, err
	}

	topic := extractTopic(question, "important questions", "from my study materials")
	if len(topic) < 3 {
		topic = "the topics covered in the study materials"
	}

	result, err := s.tools.GenerateImportantQuestions(ctx, topic, contextText, parseCount(question, 10))
	if err != nil {
		return nil, err
	}

	return toolResult(result, models.RouteImportantQuestions, chunks), nil
}

// retrieveContext gathers document context for the generator branches.
// An empty knowledge base yields an empty context string; the generators
// substitute their own general-knowledge fallback.
func (s *Service) retrieveContext(ctx context.Context, question string, k int) ([]models.ContextChunk, string, error) {
	chunks, err := s.retriever.Retrieve(ctx, question, k)
	if err != nil {
		return nil, "", err
	}
	return chunks, assembleContext(chunks, 0), nil
}

func (s *Service) synthesize(ctx context.Context, question, contextText string) (string, error) {
	answer, err := s.model.Invoke(ctx, fmt.Sprintf(synthesisPrompt, contextText, question))
	if err != nil {
		log.Printf("[ERROR] Failed to synthesize answer: %v", err)
		return "", fmt.Errorf("failed to synthesize answer: %w", err)
	}
	return answer, nil
}

// assembleContext joins chunk texts with blank lines. A positive
// perChunkCap truncates each chunk to that many characters first. The cap
// counts runes, never splitting a multi-byte sequence.
func assembleContext(chunks []models.ContextChunk, perChunkCap int) string {
	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		text := chunk.Text
		if perChunkCap > 0 && len(text) > perChunkCap {
			if runes := []rune(text); len(runes) > perChunkCap {
				text = string(runes[:perChunkCap])
			}
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func toolResult(result *models.TaskResult, route models.RouteDecision, chunks []models.ContextChunk) *models.ToolResult {
	metadata := result.Metadata
	return &models.ToolResult{
		Answer:      result.Answer,
		ToolUsed:    route,
		ContextUsed: chunks,
		Metadata:    &metadata,
	}
}

package models

// RouteDecision identifies which tool branch handles a question. The set is
// closed: Route always returns one of the eight constants below, never an
// arbitrary string.
type RouteDecision string

const (
	RouteDocumentSearch     RouteDecision = "document-search"
	RouteWebSearch          RouteDecision = "web-search"
	RouteExamAnswer         RouteDecision = "long-form-answer"
	RouteStudyPlan          RouteDecision = "study-plan"
	RouteQuiz               RouteDecision = "quiz"
	RouteFlashcards         RouteDecision = "flashcards"
	RouteExplainConcept     RouteDecision = "explain-concept"
	RouteImportantQuestions RouteDecision = "important-questions"
)

// AllRoutes lists every branch in the priority order used when scanning a
// classification response.
var AllRoutes = []RouteDecision{
	RouteExamAnswer,
	RouteStudyPlan,
	RouteQuiz,
	RouteFlashcards,
	RouteExplainConcept,
	RouteImportantQuestions,
	RouteWebSearch,
	RouteDocumentSearch,
}

func (d RouteDecision) Valid() bool {
	for _, r := range AllRoutes {
		if d == r {
			return true
		}
	}
	return false
}

// ContextChunk is one piece of supporting text. SourceID is always either
// the basename of an uploaded file or the URL the text was fetched from.
type ContextChunk struct {
	Text     string `json:"text"`
	SourceID string `json:"source_id"`
	Rank     int    `json:"rank,omitempty"`
}

// ToolResult is the terminal output of one query cycle.
type ToolResult struct {
	Answer      string         `json:"answer"`
	ToolUsed    RouteDecision  `json:"tool_used"`
	ContextUsed []ContextChunk `json:"context_used"`
	Metadata    *TaskMetadata  `json:"metadata,omitempty"`
}

type QueryRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id,omitempty"`
}

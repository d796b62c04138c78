package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studybuddy/models"
	"studybuddy/services/agent"
	"studybuddy/services/examtools"
	"studybuddy/services/llm"
	"studybuddy/services/session"

	"github.com/gorilla/mux"
)

type stubModel struct {
	response string
}

func (m *stubModel) Invoke(ctx context.Context, prompt string) (string, error) {
	return m.response, nil
}

func (m *stubModel) InvokeWithTool(ctx context.Context, system, prompt string, tool llm.ToolSpec) (string, error) {
	return "{}", nil
}

type stubRetriever struct{}

func (stubRetriever) Retrieve(ctx context.Context, query string, k int) ([]models.ContextChunk, error) {
	return nil, nil
}

type stubWebSearcher struct{}

func (stubWebSearcher) Search(ctx context.Context, query string, maxResults int, domains []string) ([]models.ContextChunk, error) {
	return nil, nil
}

func newTestRouter(model llm.Model, sessions *session.Store) *mux.Router {
	agentService := agent.NewService(model, stubRetriever{}, stubWebSearcher{}, examtools.NewService(model))
	handler := NewQueryHandler(agentService, sessions)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestQueryRejectsInvalidJSON(t *testing.T) {
	router := newTestRouter(&stubModel{}, session.NewStore())

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestQueryRejectsEmptyQuestion(t *testing.T) {
	router := newTestRouter(&stubModel{}, session.NewStore())

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"question": "  "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestQueryRecordsSessionHistory(t *testing.T) {
	sessions := session.NewStore()
	router := newTestRouter(&stubModel{response: "Flashcards ready."}, sessions)

	body := `{"question": "Create flashcards on Data Structures", "session_id": "s1"}`
	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp QueryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response was not valid JSON: %v", err)
	}
	if resp.ToolUsed != models.RouteFlashcards {
		t.Errorf("tool_used = %s, want %s", resp.ToolUsed, models.RouteFlashcards)
	}
	if resp.Answer == "" {
		t.Error("answer should not be empty")
	}

	s, ok := sessions.Lookup("s1")
	if !ok {
		t.Fatal("session should have been created")
	}
	messages := s.Messages()
	if len(messages) != 2 {
		t.Fatalf("got %d session messages, want 2", len(messages))
	}
	if messages[0].Role != "user" || messages[1].Role != "assistant" {
		t.Error("session should hold the user question followed by the answer")
	}
	if messages[1].ToolUsed != models.RouteFlashcards {
		t.Errorf("assistant message ToolUsed = %s, want %s", messages[1].ToolUsed, models.RouteFlashcards)
	}
}

func TestQueryWithoutSessionIDKeepsNoHistory(t *testing.T) {
	sessions := session.NewStore()
	router := newTestRouter(&stubModel{response: "ok"}, sessions)

	body := `{"question": "Create flashcards on Data Structures"}`
	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if _, ok := sessions.Lookup(""); ok {
		t.Error("no session should be created without a session_id")
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"studybuddy/models"
	"studybuddy/services/agent"
	"studybuddy/services/session"

	"github.com/gorilla/mux"
)

const queryFailureMessage = "Sorry, something went wrong while answering your question. " +
	"Please check the service configuration (API keys, vector index) and try again."

type QueryResponse struct {
	Answer      string                `json:"answer"`
	ToolUsed    models.RouteDecision  `json:"tool_used"`
	ContextUsed []models.ContextChunk `json:"context_used,omitempty"`
	Metadata    *models.TaskMetadata  `json:"metadata,omitempty"`
	SessionID   string                `json:"session_id,omitempty"`
}

type QueryHandler struct {
	agent    *agent.Service
	sessions *session.Store
}

func NewQueryHandler(agentService *agent.Service, sessions *session.Store) *QueryHandler {
	return &QueryHandler{agent: agentService, sessions: sessions}
}

func (h *QueryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/query", h.Query).Methods("POST")
}

func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received query request")

	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode query request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	result, err := h.agent.Query(r.Context(), req.Question)
	if err != nil {
		log.Printf("[ERROR] Query failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, queryFailureMessage)
		return
	}

	// History is only recorded for completed cycles, so a failed query
	// never corrupts the session.
	if req.SessionID != "" {
		s := h.sessions.Get(req.SessionID)
		s.Append(models.ChatMessage{Role: "user", Content: req.Question})
		s.Append(models.ChatMessage{Role: "assistant", Content: result.Answer, ToolUsed: result.ToolUsed})
	}

	response := QueryResponse{
		Answer:      result.Answer,
		ToolUsed:    result.ToolUsed,
		ContextUsed: result.ContextUsed,
		Metadata:    result.Metadata,
		SessionID:   req.SessionID,
	}

	log.Printf("[INFO] Query completed successfully via %s", result.ToolUsed)
	h.writeJSONResponse(w, http.StatusOK, response)
}

func (h *QueryHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *QueryHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

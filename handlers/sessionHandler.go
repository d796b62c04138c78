package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"studybuddy/models"
	"studybuddy/services/session"

	"github.com/gorilla/mux"
)

type SessionResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []models.ChatMessage `json:"messages"`
}

type SessionHandler struct {
	sessions *session.Store
}

func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}", h.DeleteSession).Methods("DELETE")
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s, ok := h.sessions.Lookup(id)
	if !ok {
		h.writeErrorResponse(w, http.StatusNotFound, "session not found")
		return
	}

	response := SessionResponse{
		SessionID: s.ID(),
		Messages:  s.Messages(),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	h.sessions.Delete(id)
	log.Printf("[INFO] Session %q deleted", id)

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *SessionHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *SessionHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

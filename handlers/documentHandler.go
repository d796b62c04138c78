package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"studybuddy/models"
	"studybuddy/services"

	"github.com/gorilla/mux"
)

// maxUploadBytes caps a single document upload at 32 MiB.
const maxUploadBytes = 32 << 20

type DocumentHandler struct {
	service *services.DocumentService
}

func NewDocumentHandler(service *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/documents", h.UploadDocument).Methods("POST")
	router.HandleFunc("/documents", h.ListDocuments).Methods("GET")
	router.HandleFunc("/documents/{id}", h.DeleteDocument).Methods("DELETE")
}

func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received document upload request")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Printf("[ERROR] Failed to parse multipart form: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[ERROR] Failed to read uploaded file: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	req := &models.CreateDocumentRequest{
		Filename: header.Filename,
		Subject:  r.FormValue("subject"),
		Content:  content,
	}

	doc, err := h.service.CreateDocument(r.Context(), req)
	if err != nil {
		log.Printf("[ERROR] Document upload failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("[INFO] Document upload completed successfully with ID %d", doc.ID)
	h.writeJSONResponse(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		documents []*models.Document
		err       error
	)
	if query != "" {
		documents, err = h.service.SearchDocuments(query)
	} else {
		documents, err = h.service.GetAllDocuments()
	}
	if err != nil {
		log.Printf("[ERROR] Failed to list documents: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, documents)
}

func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := h.service.DeleteDocument(r.Context(), id); err != nil {
		log.Printf("[ERROR] Document deletion failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("[INFO] Document %d deleted successfully", id)
	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *DocumentHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *DocumentHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

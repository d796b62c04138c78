package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"studybuddy/db"
	"studybuddy/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

var allowedExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
	".md":  true,
}

// DocumentIndexer pushes document chunks into the vector index and
// removes them again on delete.
type DocumentIndexer interface {
	IndexDocument(ctx context.Context, doc *models.Document, path string) error
	RemoveDocument(ctx context.Context, docID int) error
}

type DocumentService struct {
	repo             db.DocumentRepository
	indexer          DocumentIndexer
	knowledgeBaseDir string
}

func NewDocumentService(repo db.DocumentRepository, indexer DocumentIndexer, knowledgeBaseDir string) *DocumentService {
	return &DocumentService{
		repo:             repo,
		indexer:          indexer,
		knowledgeBaseDir: knowledgeBaseDir,
	}
}

func (s *DocumentService) CreateDocument(ctx context.Context, req *models.CreateDocumentRequest) (*models.Document, error) {
	log.Printf("[INFO] Starting document creation for %q", req.Filename)

	if err := s.validateCreateRequest(req); err != nil {
		log.Printf("[ERROR] Document creation validation failed: %v", err)
		return nil, err
	}

	if err := os.MkdirAll(s.knowledgeBaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create knowledge base directory: %w", err)
	}

	doc := &models.Document{
		Filename:  filepath.Base(req.Filename),
		Subject:   strings.TrimSpace(req.Subject),
		SizeBytes: int64(len(req.Content)),
	}

	path := filepath.Join(s.knowledgeBaseDir, doc.Filename)
	if err := os.WriteFile(path, req.Content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to save document file: %w", err)
	}

	if err := s.repo.CreateDocument(doc); err != nil {
		log.Printf("[ERROR] Failed to create document in repository: %v", err)
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	if err := s.indexer.IndexDocument(ctx, doc, path); err != nil {
		log.Printf("[ERROR] Failed to index document ID %d: %v", doc.ID, err)
		return nil, fmt.Errorf("failed to index document: %w", err)
	}

	log.Printf("[INFO] Successfully created document with ID %d", doc.ID)
	return doc, nil
}

func (s *DocumentService) GetDocumentByID(id int) (*models.Document, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid document ID: %d", id)
	}

	return s.repo.GetDocumentByID(id)
}

func (s *DocumentService) GetAllDocuments() ([]*models.Document, error) {
	log.Printf("[INFO] Starting get all documents")

	documents, err := s.repo.GetAllDocuments()
	if err != nil {
		log.Printf("[ERROR] Failed to get all documents: %v", err)
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}

	log.Printf("[INFO] Successfully retrieved %d documents", len(documents))
	return documents, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id int) error {
	log.Printf("[INFO] Starting delete document with ID %d", id)

	if id <= 0 {
		log.Printf("[ERROR] Invalid document ID provided for deletion: %d", id)
		return fmt.Errorf("invalid document ID: %d", id)
	}

	doc, err := s.repo.GetDocumentByID(id)
	if err != nil {
		return err
	}

	if err := s.indexer.RemoveDocument(ctx, id); err != nil {
		log.Printf("[ERROR] Failed to remove document ID %d from index: %v", id, err)
		return fmt.Errorf("failed to remove document from index: %w", err)
	}

	path := filepath.Join(s.knowledgeBaseDir, doc.Filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] Failed to remove document file %s: %v", path, err)
	}

	if err := s.repo.DeleteDocument(id); err != nil {
		log.Printf("[ERROR] Failed to delete document ID %d: %v", id, err)
		return err
	}

	log.Printf("[INFO] Successfully deleted document with ID %d", id)
	return nil
}

// SearchDocuments filters the registry by fuzzy-matching the query
// against filename and subject.
func (s *DocumentService) SearchDocuments(query string) ([]*models.Document, error) {
	log.Printf("[INFO] Starting document search for %q", query)

	documents, err := s.GetAllDocuments()
	if err != nil {
		return nil, fmt.Errorf("failed to get documents for search: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return documents, nil
	}

	matching := lo.Filter(documents, func(doc *models.Document, _ int) bool {
		return s.documentMatchesSearch(doc, query)
	})

	log.Printf("[INFO] Found %d documents matching search criteria", len(matching))
	return matching, nil
}

func (s *DocumentService) documentMatchesSearch(doc *models.Document, query string) bool {
	if fuzzy.MatchFold(query, doc.Filename) || fuzzy.MatchFold(query, doc.Subject) {
		return true
	}

	words := strings.Fields(strings.ToLower(doc.Filename + " " + doc.Subject))
	cleanWords := make([]string, 0, len(words))
	for _, word := range words {
		cleanWord := strings.Trim(word, ".,!?;:()[]{}\"'")
		if len(cleanWord) > 0 {
			cleanWords = append(cleanWords, cleanWord)
		}
	}

	return len(fuzzy.Find(strings.ToLower(query), cleanWords)) > 0
}

// FilePath returns the on-disk location of a stored document.
func (s *DocumentService) FilePath(doc *models.Document) string {
	return filepath.Join(s.knowledgeBaseDir, doc.Filename)
}

func (s *DocumentService) validateCreateRequest(req *models.CreateDocumentRequest) error {
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}

	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		return fmt.Errorf("filename is required")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q, allowed types are .pdf, .txt and .md", ext)
	}

	if len(req.Content) == 0 {
		return fmt.Errorf("file content is empty")
	}

	return nil
}

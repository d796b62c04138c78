package main

import (
	"context"
	"log"
	"path/filepath"

	"studybuddy/config"
	"studybuddy/db"
	"studybuddy/services/docindex"
	"studybuddy/services/llm"
)

// Reindexes every registered document from the knowledge base directory.
// Useful after changing the chunking parameters or wiping the index.
func main() {
	log.Printf("[INFO] Starting document indexing process")

	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("[ERROR] DB_URL environment variable is required")
	}

	if cfg.PineconeAPIKey == "" {
		log.Fatal("[ERROR] PINECONE_API_KEY environment variable is required")
	}

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("[ERROR] OPENAI_API_KEY environment variable is required")
	}

	model, err := llm.New(cfg)
	if err != nil {
		log.Fatalf("[ERROR] Failed to initialize language model: %v", err)
	}

	documentRepo, err := db.NewPostgresDocumentRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[ERROR] Failed to initialize document database: %v", err)
	}
	defer documentRepo.Close()

	docindexService, err := docindex.NewService(cfg.PineconeAPIKey, cfg.OpenAIAPIKey, cfg.PineconeIndexName, model, cfg.EnrichChunks)
	if err != nil {
		log.Fatalf("[ERROR] Failed to initialize document index service: %v", err)
	}

	ctx := context.Background()

	if err := docindexService.EnsureIndex(ctx); err != nil {
		log.Fatalf("[ERROR] Failed to ensure vector index: %v", err)
	}

	documents, err := documentRepo.GetAllDocuments()
	if err != nil {
		log.Fatalf("[ERROR] Failed to retrieve documents: %v", err)
	}

	log.Printf("[INFO] Retrieved %d documents from database", len(documents))

	for i, doc := range documents {
		log.Printf("[INFO] Processing document %d/%d (ID: %d)", i+1, len(documents), doc.ID)

		path := filepath.Join(cfg.KnowledgeBaseDir, doc.Filename)
		if err := docindexService.IndexDocument(ctx, doc, path); err != nil {
			log.Printf("[ERROR] Failed to index document ID %d: %v", doc.ID, err)
			continue
		}

		log.Printf("[INFO] Successfully indexed document ID %d", doc.ID)
	}

	log.Printf("[INFO] Document indexing process completed successfully")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"studybuddy/config"
	"studybuddy/db"
	"studybuddy/handlers"
	"studybuddy/services"
	"studybuddy/services/agent"
	"studybuddy/services/docindex"
	"studybuddy/services/examtools"
	"studybuddy/services/llm"
	"studybuddy/services/retriever"
	"studybuddy/services/session"
	"studybuddy/services/websearch"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	if cfg.PineconeAPIKey == "" {
		log.Fatal("PINECONE_API_KEY environment variable is required")
	}

	if cfg.TavilyAPIKey == "" {
		log.Fatal("TAVILY_API_KEY environment variable is required")
	}

	model, err := llm.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize language model: %v", err)
	}

	documentRepo, err := db.NewPostgresDocumentRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize document database: %v", err)
	}
	defer documentRepo.Close()

	docindexService, err := docindex.NewService(cfg.PineconeAPIKey, cfg.OpenAIAPIKey, cfg.PineconeIndexName, model, cfg.EnrichChunks)
	if err != nil {
		log.Fatalf("Failed to initialize document index service: %v", err)
	}

	if err := docindexService.EnsureIndex(context.Background()); err != nil {
		log.Fatalf("Failed to ensure vector index: %v", err)
	}

	retrieverService, err := retriever.NewService(cfg.PineconeAPIKey, cfg.OpenAIAPIKey, cfg.PineconeIndexName)
	if err != nil {
		log.Fatalf("Failed to initialize retriever service: %v", err)
	}

	websearchService := websearch.NewService(cfg.TavilyAPIKey)
	examtoolsService := examtools.NewService(model)

	agentService := agent.NewService(model, retrieverService, websearchService, examtoolsService)
	sessionStore := session.NewStore()

	documentService := services.NewDocumentService(documentRepo, docindexService, cfg.KnowledgeBaseDir)

	queryHandler := handlers.NewQueryHandler(agentService, sessionStore)
	documentHandler := handlers.NewDocumentHandler(documentService)
	sessionHandler := handlers.NewSessionHandler(sessionStore)

	router := mux.NewRouter()

	router.Use(corsMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	queryHandler.RegisterRoutes(router)
	documentHandler.RegisterRoutes(router)
	sessionHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}

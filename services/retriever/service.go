package retriever

import (
	"context"
	"fmt"
	"log"
	"strings"

	"studybuddy/models"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

const namespace = "studybuddy-docs"

// Service is the document-retrieval capability: embed the query, ask the
// vector index for the top-k chunks, return them in descending similarity
// order. An empty or missing index yields an empty slice, never an error.
type Service struct {
	client    *pinecone.Client
	embedder  embeddings.Embedder
	indexName string
}

func NewService(pineconeAPIKey, openaiAPIKey, indexName string) (*Service, error) {
	log.Printf("[INFO] Initializing retriever service")

	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: pineconeAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Pinecone client: %w", err)
	}

	llm, err := openai.New(
		openai.WithModel("gpt-4o-mini"),
		openai.WithToken(openaiAPIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	return &Service{
		client:    pc,
		embedder:  embedder,
		indexName: indexName,
	}, nil
}

func (s *Service) Retrieve(ctx context.Context, query string, k int) ([]models.ContextChunk, error) {
	log.Printf("[INFO] Retrieving top %d chunks for query", k)

	idxDesc, err := s.client.DescribeIndex(ctx, s.indexName)
	if err != nil {
		return nil, fmt.Errorf("failed to describe index: %w", err)
	}

	idxConn, err := s.client.Index(pinecone.NewIndexConnParams{
		Host:      idxDesc.Host,
		Namespace: namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index connection: %w", err)
	}

	vector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	result, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(k),
		IncludeValues:   false,
		IncludeMetadata: true,
	})
	if err != nil {
		// A namespace that has never been written to is an empty store,
		// not a failure.
		if strings.Contains(err.Error(), "Namespace not found") {
			log.Printf("[INFO] Knowledge store is empty, returning no chunks")
			return []models.ContextChunk{}, nil
		}
		return nil, fmt.Errorf("failed to query vectors: %w", err)
	}

	chunks := make([]models.ContextChunk, 0, len(result.Matches))
	for _, match := range result.Matches {
		if match.Vector == nil || match.Vector.Metadata == nil {
			continue
		}
		chunk, ok := chunkFromMetadata(match.Vector.Metadata.AsMap())
		if !ok {
			continue
		}
		chunk.Rank = len(chunks) + 1
		chunks = append(chunks, chunk)
	}

	log.Printf("[INFO] Retrieved %d chunks", len(chunks))
	return chunks, nil
}

// chunkFromMetadata rebuilds a ContextChunk from stored vector metadata.
// Chunks without a source label are dropped: a sourceId is never invented.
func chunkFromMetadata(metadata map[string]any) (models.ContextChunk, bool) {
	source, ok := metadata["source"].(string)
	if !ok || source == "" {
		return models.ContextChunk{}, false
	}

	content, _ := metadata["content"].(string)
	if content == "" {
		return models.ContextChunk{}, false
	}

	text := content
	if enriched, ok := metadata["enriched_context"].(string); ok && enriched != "" {
		text = fmt.Sprintf("%s\n\nContext: %s", content, enriched)
	}

	return models.ContextChunk{
		Text:     text,
		SourceID: source,
	}, true
}

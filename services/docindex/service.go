package docindex

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"studybuddy/models"
	"studybuddy/services/llm"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"google.golang.org/protobuf/types/known/structpb"
)

const namespace = "studybuddy-docs"

// Service turns uploaded files into embedded chunks in the vector index.
// The query path never goes through here; it only reads what this wrote.
type Service struct {
	client    *pinecone.Client
	embedder  embeddings.Embedder
	model     llm.Model
	indexName string
	enrich    bool
}

func NewService(pineconeAPIKey, openaiAPIKey, indexName string, model llm.Model, enrich bool) (*Service, error) {
	log.Printf("[INFO] Initializing document index service")

	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: pineconeAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Pinecone client: %w", err)
	}

	embedderLLM, err := openai.New(
		openai.WithModel("gpt-4o-mini"),
		openai.WithToken(openaiAPIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(embedderLLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	return &Service{
		client:    pc,
		embedder:  embedder,
		model:     model,
		indexName: indexName,
		enrich:    enrich,
	}, nil
}

// EnsureIndex creates the serverless index if it does not exist yet and
// waits until it is ready.
func (s *Service) EnsureIndex(ctx context.Context) error {
	indexes, err := s.client.ListIndexes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}

	for _, idx := range indexes {
		if idx.Name == s.indexName {
			log.Printf("[INFO] Index %s already exists", s.indexName)
			return nil
		}
	}

	log.Printf("[INFO] Creating Pinecone index: %s", s.indexName)
	dimension := int32(1536) // OpenAI ada-002 embedding dimension
	deletionProtection := pinecone.DeletionProtectionDisabled
	metric := pinecone.Cosine

	_, err = s.client.CreateServerlessIndex(ctx, &pinecone.CreateServerlessIndexRequest{
		Name:               s.indexName,
		Dimension:          &dimension,
		Metric:             &metric,
		Cloud:              pinecone.Aws,
		Region:             "us-east-1",
		DeletionProtection: &deletionProtection,
		Tags:               &pinecone.IndexTags{"environment": "development", "project": "studybuddy"},
	})
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	for {
		idx, err := s.client.DescribeIndex(ctx, s.indexName)
		if err != nil {
			return fmt.Errorf("failed to describe index: %w", err)
		}
		if idx.Status.Ready {
			log.Printf("[INFO] Index %s is ready", s.indexName)
			return nil
		}
		log.Printf("[INFO] Waiting for index %s to be ready...", s.indexName)
		time.Sleep(10 * time.Second)
	}
}

// IndexDocument loads the file at path, splits it, and upserts one vector
// per chunk. Existing vectors for the document are removed first so a
// re-upload fully replaces the old content.
func (s *Service) IndexDocument(ctx context.Context, doc *models.Document, path string) error {
	log.Printf("[INFO] Indexing document %d (%s)", doc.ID, doc.Filename)

	text, err := loadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load document %s: %w", doc.Filename, err)
	}

	chunks, err := splitText(text)
	if err != nil {
		return fmt.Errorf("failed to split document %s: %w", doc.Filename, err)
	}
	if len(chunks) == 0 {
		log.Printf("[INFO] No chunks created for document %d", doc.ID)
		return nil
	}
	log.Printf("[INFO] Created %d chunks for document %d", len(chunks), doc.ID)

	if err := s.RemoveDocument(ctx, doc.ID); err != nil {
		return fmt.Errorf("failed to delete existing vectors: %w", err)
	}

	for i, chunk := range chunks {
		enriched := ""
		if s.enrich && s.model != nil {
			enriched, err = s.enrichChunk(ctx, doc, chunk)
			if err != nil {
				log.Printf("[ERROR] Failed to enrich chunk %d of document %d: %v", i+1, doc.ID, err)
				enriched = "" // index the raw chunk instead
			}
		}

		vector, err := s.createVector(ctx, doc, i, chunk, enriched)
		if err != nil {
			return fmt.Errorf("failed to create vector for chunk %d: %w", i+1, err)
		}

		if err := s.upsertVector(ctx, vector); err != nil {
			return fmt.Errorf("failed to upsert chunk %d: %w", i+1, err)
		}
	}

	log.Printf("[INFO] Indexed all %d chunks for document %d", len(chunks), doc.ID)
	return nil
}

// RemoveDocument deletes every vector whose id carries the document prefix.
func (s *Service) RemoveDocument(ctx context.Context, docID int) error {
	idxConn, err := s.indexConnection(ctx)
	if err != nil {
		return err
	}

	prefix := vectorPrefix(docID)
	limit := uint32(100)

	listResp, err := idxConn.ListVectors(ctx, &pinecone.ListVectorsRequest{
		Prefix: &prefix,
		Limit:  &limit,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Namespace not found") {
			log.Printf("[INFO] Namespace does not exist yet - no vectors to delete for document %d", docID)
			return nil
		}
		return fmt.Errorf("failed to list vectors: %w", err)
	}

	for listResp.NextPaginationToken != nil || len(listResp.VectorIds) > 0 {
		vectorIDs := make([]string, 0, len(listResp.VectorIds))
		for _, id := range listResp.VectorIds {
			if id != nil {
				vectorIDs = append(vectorIDs, *id)
			}
		}

		if len(vectorIDs) > 0 {
			if err := idxConn.DeleteVectorsById(ctx, vectorIDs); err != nil {
				return fmt.Errorf("failed to delete vector batch: %w", err)
			}
			log.Printf("[INFO] Deleted %d vectors for document %d", len(vectorIDs), docID)
		}

		if listResp.NextPaginationToken == nil {
			break
		}
		listResp, err = idxConn.ListVectors(ctx, &pinecone.ListVectorsRequest{
			Prefix:          &prefix,
			Limit:           &limit,
			PaginationToken: listResp.NextPaginationToken,
		})
		if err != nil {
			return fmt.Errorf("failed to list next batch of vectors: %w", err)
		}
	}

	return nil
}

type enrichChunkParams struct {
	EnrichedSummary string `json:"enriched_summary" jsonschema:"required,description=A self-contained summary explaining what this chunk covers and why it matters within the document"`
}

const enrichSystemPrompt = `You are an expert at analyzing document chunks and providing enriched contextual summaries.

Your task is to create a comprehensive summary that:
1. Explains what this specific chunk covers
2. Provides context about how it fits within the larger document
3. Makes the chunk self-contained and searchable

The enriched summary should help someone understand the chunk's content without reading the entire original document.`

func (s *Service) enrichChunk(ctx context.Context, doc *models.Document, chunk string) (string, error) {
	prompt := fmt.Sprintf(`Please analyze this chunk from the study document %q and create an enriched contextual summary.

CHUNK:
%s`, doc.Filename, chunk)

	args, err := s.model.InvokeWithTool(ctx, enrichSystemPrompt, prompt, llm.ToolSpec{
		Name:        "enrich_chunk_context",
		Description: "Provide an enriched contextual summary for a document chunk",
		Input:       enrichChunkParams{},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate enrichment: %w", err)
	}

	var params enrichChunkParams
	if err := unmarshalParams(args, &params); err != nil {
		return "", fmt.Errorf("failed to parse enrichment arguments: %w", err)
	}

	return params.EnrichedSummary, nil
}

func (s *Service) createVector(ctx context.Context, doc *models.Document, chunkIndex int, content, enriched string) (*pinecone.Vector, error) {
	combinedText := content
	if enriched != "" {
		combinedText = fmt.Sprintf("Content: %s\n\nContext: %s", content, enriched)
	}

	vectors, err := s.embedder.EmbedDocuments(ctx, []string{combinedText})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	metadata := map[string]any{
		"source":           doc.Filename,
		"subject":          doc.Subject,
		"document_id":      doc.ID,
		"chunk_index":      chunkIndex,
		"content":          content,
		"enriched_context": enriched,
		"created_at":       time.Now().Format(time.RFC3339),
	}

	metadataStruct, err := structpb.NewStruct(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata struct: %w", err)
	}

	return &pinecone.Vector{
		Id:       chunkID(doc.ID, chunkIndex),
		Values:   &vectors[0],
		Metadata: metadataStruct,
	}, nil
}

func (s *Service) upsertVector(ctx context.Context, vector *pinecone.Vector) error {
	idxConn, err := s.indexConnection(ctx)
	if err != nil {
		return err
	}

	if _, err := idxConn.UpsertVectors(ctx, []*pinecone.Vector{vector}); err != nil {
		return fmt.Errorf("failed to upsert vector: %w", err)
	}
	return nil
}

func (s *Service) indexConnection(ctx context.Context) (*pinecone.IndexConnection, error) {
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
	return idxConn, nil
}

func vectorPrefix(docID int) string {
	return fmt.Sprintf("doc_%d_", docID)
}

func chunkID(docID, chunkIndex int) string {
	return fmt.Sprintf("doc_%d_chunk_%d", docID, chunkIndex)
}

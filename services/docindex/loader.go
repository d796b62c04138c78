package docindex

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"
)

// chunkSeparators mirror the recursive splitting order used on ingestion:
// paragraphs first, then lines, sentences, words.
var chunkSeparators = []string{"\n\n", "\n", ". ", " ", ""}

const (
	chunkSize    = 1000
	chunkOverlap = 200
)

// loadFile extracts plain text from a PDF, text, or markdown file.
func loadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var docs []schema.Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		stat, err := f.Stat()
		if err != nil {
			return "", fmt.Errorf("failed to stat file: %w", err)
		}
		docs, err = documentloaders.NewPDF(f, stat.Size()).Load(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load PDF: %w", err)
		}
	case ".txt", ".md":
		docs, err = documentloaders.NewText(f).Load(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load text file: %w", err)
		}
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.PageContent) != "" {
			parts = append(parts, doc.PageContent)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}

func splitText(text string) ([]string, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
		textsplitter.WithSeparators(chunkSeparators),
	)

	chunks, err := splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to split text: %w", err)
	}

	filtered := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) != "" {
			filtered = append(filtered, chunk)
		}
	}
	return filtered, nil
}

func unmarshalParams(args string, v any) error {
	return json.Unmarshal([]byte(args), v)
}

package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"studybuddy/models"

	"github.com/tmc/langchaingo/documentloaders"
)

const defaultSearchURL = "https://api.tavily.com/search"

// Service is the web lookup capability: search for URLs, fetch each page,
// extract its text. Per-URL failures are skipped, and a failed search
// degrades to an empty result set rather than an error. The caller's
// synthesizer decides what to tell the user about missing context.
type Service struct {
	client    *http.Client
	apiKey    string
	searchURL string
}

func NewService(apiKey string) *Service {
	return &Service{
		client:    &http.Client{Timeout: 30 * time.Second},
		apiKey:    apiKey,
		searchURL: defaultSearchURL,
	}
}

func (s *Service) Search(ctx context.Context, query string, maxResults int, domains []string) ([]models.ContextChunk, error) {
	log.Printf("[INFO] Starting web search (max %d results)", maxResults)

	urls, err := s.searchURLs(ctx, query, maxResults, domains)
	if err != nil {
		log.Printf("[WARN] Web search failed, continuing without web context: %v", err)
		return []models.ContextChunk{}, nil
	}

	chunks := make([]models.ContextChunk, 0, len(urls))
	for _, url := range urls {
		text, err := s.fetchPage(ctx, url)
		if err != nil {
			log.Printf("[WARN] Skipping %s: %v", url, err)
			continue
		}
		chunks = append(chunks, models.ContextChunk{
			Text:     text,
			SourceID: url,
			Rank:     len(chunks) + 1,
		})
	}

	log.Printf("[INFO] Web search produced %d of %d pages", len(chunks), len(urls))
	return chunks, nil
}

type searchRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	MaxResults     int      `json:"max_results"`
	SearchDepth    string   `json:"search_depth"`
	IncludeDomains []string `json:"include_domains,omitempty"`
}

type searchResponse struct {
	Results []struct {
		URL string `json:"url"`
	} `json:"results"`
}

func (s *Service) searchURLs(ctx context.Context, query string, maxResults int, domains []string) ([]string, error) {
	body, err := json.Marshal(searchRequest{
		APIKey:         s.apiKey,
		Query:          query,
		MaxResults:     maxResults,
		SearchDepth:    "advanced",
		IncludeDomains: domains,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.searchURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	urls := make([]string, 0, len(result.Results))
	for _, r := range result.Results {
		if r.URL != "" {
			urls = append(urls, r.URL)
		}
		if len(urls) == maxResults {
			break
		}
	}
	return urls, nil
}

func (s *Service) fetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build page request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	docs, err := documentloaders.NewHTML(resp.Body).Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract page text: %w", err)
	}

	var text strings.Builder
	for _, doc := range docs {
		text.WriteString(doc.PageContent)
	}

	extracted := strings.TrimSpace(text.String())
	if extracted == "" {
		return "", fmt.Errorf("page contained no extractable text")
	}
	return extracted, nil
}

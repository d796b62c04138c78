package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestService(searchURL string) *Service {
	return &Service{
		client:    &http.Client{Timeout: 5 * time.Second},
		apiKey:    "test-key",
		searchURL: searchURL,
	}
}

func TestSearchPartialFetchFailures(t *testing.T) {
	pages := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/good":
			fmt.Fprint(w, "<html><body><p>Malaria guidance content from WHO.</p></body></html>")
		case "/empty":
			fmt.Fprint(w, "<html><body></body></html>")
		default:
			http.NotFound(w, r)
		}
	}))
	defer pages.Close()

	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("search request was not valid JSON: %v", err)
		}
		if req.APIKey != "test-key" {
			t.Errorf("api_key = %q, want %q", req.APIKey, "test-key")
		}
		json.NewEncoder(w).Encode(searchResponse{
			Results: []struct {
				URL string `json:"url"`
			}{
				{URL: pages.URL + "/missing"},
				{URL: pages.URL + "/good"},
				{URL: pages.URL + "/empty"},
			},
		})
	}))
	defer search.Close()

	svc := newTestService(search.URL)

	chunks, err := svc.Search(context.Background(), "who malaria guidance", 3, nil)
	if err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want exactly the 1 fetchable page", len(chunks))
	}
	if chunks[0].SourceID != pages.URL+"/good" {
		t.Errorf("SourceID = %q, want the fetched URL", chunks[0].SourceID)
	}
	if chunks[0].Text == "" {
		t.Error("chunk text should contain the extracted page content")
	}
	if chunks[0].Rank != 1 {
		t.Errorf("Rank = %d, want 1", chunks[0].Rank)
	}
}

func TestSearchAPIFailureReturnsEmpty(t *testing.T) {
	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer search.Close()

	svc := newTestService(search.URL)

	chunks, err := svc.Search(context.Background(), "anything", 3, nil)
	if err != nil {
		t.Fatalf("Search() should not error on a failed search API call, got %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("got %d chunks, want 0", len(chunks))
	}
}

func TestSearchCapsResultCount(t *testing.T) {
	pages := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>page content</p></body></html>")
	}))
	defer pages.Close()

	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{
			Results: []struct {
				URL string `json:"url"`
			}{
				{URL: pages.URL + "/1"},
				{URL: pages.URL + "/2"},
				{URL: pages.URL + "/3"},
				{URL: pages.URL + "/4"},
			},
		})
	}))
	defer search.Close()

	svc := newTestService(search.URL)

	chunks, err := svc.Search(context.Background(), "anything", 2, nil)
	if err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}
	if len(chunks) != 2 {
		t.Errorf("got %d chunks, want the maxResults cap of 2", len(chunks))
	}
}

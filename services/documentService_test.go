package services

import (
	"testing"

	"studybuddy/models"
)

func TestDocumentMatchesSearch(t *testing.T) {
	service := &DocumentService{}

	tests := []struct {
		name     string
		filename string
		subject  string
		query    string
		expected bool
	}{
		{
			name:     "filename match",
			filename: "operating-systems-notes.pdf",
			subject:  "OS",
			query:    "operating",
			expected: true,
		},
		{
			name:     "subject match",
			filename: "unit3.pdf",
			subject:  "Database Systems",
			query:    "database",
			expected: true,
		},
		{
			name:     "case insensitive",
			filename: "ALGORITHMS.md",
			subject:  "",
			query:    "algorithms",
			expected: true,
		},
		{
			name:     "typo tolerance",
			filename: "databases.txt",
			subject:  "",
			query:    "databses",
			expected: true,
		},
		{
			name:     "no match",
			filename: "chemistry.pdf",
			subject:  "Organic Chemistry",
			query:    "networking",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &models.Document{Filename: tt.filename, Subject: tt.subject}
			if got := service.documentMatchesSearch(doc, tt.query); got != tt.expected {
				t.Errorf("documentMatchesSearch(%q/%q, %q) = %v, want %v",
					tt.filename, tt.subject, tt.query, got, tt.expected)
			}
		})
	}
}

func TestValidateCreateDocumentRequest(t *testing.T) {
	service := &DocumentService{}

	tests := []struct {
		name    string
		req     *models.CreateDocumentRequest
		wantErr bool
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: true,
		},
		{
			name:    "valid pdf",
			req:     &models.CreateDocumentRequest{Filename: "notes.pdf", Content: []byte("x")},
			wantErr: false,
		},
		{
			name:    "valid markdown",
			req:     &models.CreateDocumentRequest{Filename: "notes.md", Content: []byte("x")},
			wantErr: false,
		},
		{
			name:    "uppercase extension",
			req:     &models.CreateDocumentRequest{Filename: "NOTES.TXT", Content: []byte("x")},
			wantErr: false,
		},
		{
			name:    "unsupported extension",
			req:     &models.CreateDocumentRequest{Filename: "notes.docx", Content: []byte("x")},
			wantErr: true,
		},
		{
			name:    "missing filename",
			req:     &models.CreateDocumentRequest{Filename: "  ", Content: []byte("x")},
			wantErr: true,
		},
		{
			name:    "empty content",
			req:     &models.CreateDocumentRequest{Filename: "notes.txt"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.validateCreateRequest(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateCreateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

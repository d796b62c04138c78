package models

import "time"

// Document is one uploaded source file in the knowledge base. Filename is
// the on-disk basename and doubles as the sourceId of every chunk indexed
// from it.
type Document struct {
	ID         int       `json:"id" db:"id"`
	Filename   string    `json:"filename" db:"filename"`
	Subject    string    `json:"subject" db:"subject"`
	SizeBytes  int64     `json:"size_bytes" db:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}

type CreateDocumentRequest struct {
	Filename string
	Subject  string
	Content  []byte
}

package db

import (
	"database/sql"
	"fmt"

	"studybuddy/models"

	_ "github.com/lib/pq"
)

type DocumentRepository interface {
	CreateDocument(doc *models.Document) error
	GetDocumentByID(id int) (*models.Document, error)
	GetAllDocuments() ([]*models.Document, error)
	DeleteDocument(id int) error
	Close() error
}

type PostgresDocumentRepository struct {
	db *sql.DB
}

func NewPostgresDocumentRepository(databaseURL string) (*PostgresDocumentRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresDocumentRepository{db: db}, nil
}

func (r *PostgresDocumentRepository) CreateDocument(doc *models.Document) error {
	query := `
		INSERT INTO studybuddy.documents (filename, subject, size_bytes)
		VALUES ($1, $2, $3)
		RETURNING id, uploaded_at`

	row := r.db.QueryRow(query, doc.Filename, doc.Subject, doc.SizeBytes)

	if err := row.Scan(&doc.ID, &doc.UploadedAt); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

func (r *PostgresDocumentRepository) GetDocumentByID(id int) (*models.Document, error) {
	query := `
		SELECT id, filename, subject, size_bytes, uploaded_at
		FROM studybuddy.documents
		WHERE id = $1`

	doc := &models.Document{}
	row := r.db.QueryRow(query, id)

	err := row.Scan(&doc.ID, &doc.Filename, &doc.Subject, &doc.SizeBytes, &doc.UploadedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("document with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

func (r *PostgresDocumentRepository) GetAllDocuments() ([]*models.Document, error) {
	query := `
		SELECT id, filename, subject, size_bytes, uploaded_at
		FROM studybuddy.documents
		ORDER BY uploaded_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	documents := make([]*models.Document, 0)
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(&doc.ID, &doc.Filename, &doc.Subject, &doc.SizeBytes, &doc.UploadedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over documents: %w", err)
	}

	return documents, nil
}

func (r *PostgresDocumentRepository) DeleteDocument(id int) error {
	query := "DELETE FROM studybuddy.documents WHERE id = $1"

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("document with id %d not found", id)
	}

	return nil
}

func (r *PostgresDocumentRepository) Close() error {
	return r.db.Close()
}

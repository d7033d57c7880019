package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/valvesss/weseg-replit/internal/models"
)

type documentPostgres struct {
	db *sqlx.DB
}

func (r *documentPostgres) Create(ctx context.Context, doc *models.Document) error {
	doc.ID = uuid.New()
	doc.UploadedAt = time.Now()

	query := `
		INSERT INTO documents (id, file_name, original_name, file_size, mime_type, category, contact_id, policy_id, claim_id, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.FileName, doc.OriginalName, doc.FileSize, doc.MimeType,
		doc.Category, doc.ContactID, doc.PolicyID, doc.ClaimID, doc.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *documentPostgres) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	query := `
		SELECT id, file_name, original_name, file_size, mime_type, category, contact_id, policy_id, claim_id, uploaded_at
		FROM documents
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &doc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document by id: %w", err)
	}
	return &doc, nil
}

func (r *documentPostgres) GetAll(ctx context.Context) ([]models.Document, error) {
	docs := []models.Document{}
	query := `
		SELECT id, file_name, original_name, file_size, mime_type, category, contact_id, policy_id, claim_id, uploaded_at
		FROM documents
		ORDER BY uploaded_at DESC
	`
	if err := r.db.SelectContext(ctx, &docs, query); err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}
	return docs, nil
}

func (r *documentPostgres) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}

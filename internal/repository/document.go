package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/service"
)

type DocumentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) service.DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create сохраняет метаданные загруженного документа
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (user_id, object_key, file_name, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, uploaded_at;
	`
	err := r.db.QueryRow(ctx, query,
		doc.UserID,
		doc.ObjectKey,
		doc.FileName,
		doc.ContentType,
		doc.SizeBytes,
	).Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to create document: %v", models.ErrStorage, err)
	}
	return nil
}

// GetByID возвращает метаданные документа по его UUID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, user_id, object_key, file_name, content_type, size_bytes, uploaded_at
		FROM documents
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.ObjectKey,
		&doc.FileName,
		&doc.ContentType,
		&doc.SizeBytes,
		&doc.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: document with id %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to get document by id: %v", models.ErrStorage, err)
	}
	return doc, nil
}

// ListByUser возвращает метаданные документов пользователя, новые первыми
func (r *DocumentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Document, error) {
	query := `
		SELECT id, user_id, object_key, file_name, content_type, size_bytes, uploaded_at
		FROM documents
		WHERE user_id = $1
		ORDER BY uploaded_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list documents: %v", models.ErrStorage, err)
	}
	defer rows.Close()

	docs := make([]*models.Document, 0)
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.ObjectKey,
			&doc.FileName,
			&doc.ContentType,
			&doc.SizeBytes,
			&doc.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan document row: %v", models.ErrStorage, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error documents iteration: %v", models.ErrStorage, err)
	}
	return docs, nil
}

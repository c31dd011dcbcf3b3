package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/sirupsen/logrus"
)

// DocumentRepository определяет контракт для работы с бд метаданных документов
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Document, error)
}

// ObjectStore определяет контракт сохранения и чтения содержимого документов
type ObjectStore interface {
	Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	Get(ctx context.Context, objectKey string) (io.ReadCloser, error)
}

// DocumentService определяет контракт бизнес-логики документов
type DocumentService interface {
	Upload(ctx context.Context, userID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (*models.Document, error)
	Download(ctx context.Context, userID, docID uuid.UUID) (*models.Document, io.ReadCloser, error)
	ListDocuments(ctx context.Context, userID uuid.UUID) ([]*models.Document, error)
}

type documentService struct {
	repo   DocumentRepository
	store  ObjectStore
	logger *logrus.Logger
}

func NewDocumentService(repo DocumentRepository, store ObjectStore, logger *logrus.Logger) DocumentService {
	return &documentService{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// Upload сохраняет содержимое документа в объектное хранилище и метаданные в бд
func (s *documentService) Upload(ctx context.Context, userID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (*models.Document, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "document",
		"method":    "Upload",
		"user_id":   userID,
		"file_name": fileName,
	})
	log.Info("Uploading document")

	if fileName == "" || size <= 0 {
		return nil, fmt.Errorf("%w: file is required", models.ErrValidation)
	}

	objectKey := fmt.Sprintf("documents/%s/%s%s", userID, uuid.New(), filepath.Ext(fileName))
	if err := s.store.Put(ctx, objectKey, reader, size, contentType); err != nil {
		log.WithError(err).Error("Failed to store document object")
		return nil, fmt.Errorf("%w: could not store document: %v", models.ErrStorage, err)
	}

	doc := &models.Document{
		UserID:      userID,
		ObjectKey:   objectKey,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   size,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		log.WithError(err).Error("Failed to create document in repository")
		return nil, fmt.Errorf("service: could not save document metadata: %w", err)
	}

	log.WithField("document_id", doc.ID).Info("Document uploaded successfully")
	return doc, nil
}

// Download возвращает метаданные и поток содержимого документа.
// Скачивать может только владелец, для остальных документ неотличим
// от несуществующего.
func (s *documentService) Download(ctx context.Context, userID, docID uuid.UUID) (*models.Document, io.ReadCloser, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "document",
		"method":      "Download",
		"user_id":     userID,
		"document_id": docID,
	})

	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		log.WithError(err).Warn("Failed to get document from repository")
		return nil, nil, fmt.Errorf("service: could not get document: %w", err)
	}
	if doc.UserID != userID {
		log.Warn("Attempted to download a foreign document")
		return nil, nil, fmt.Errorf("%w: document with id %s", models.ErrNotFound, docID)
	}

	reader, err := s.store.Get(ctx, doc.ObjectKey)
	if err != nil {
		log.WithError(err).Error("Failed to read document object")
		return nil, nil, fmt.Errorf("%w: could not read document: %v", models.ErrStorage, err)
	}

	log.Info("Document download started")
	return doc, reader, nil
}

// ListDocuments возвращает метаданные документов пользователя
func (s *documentService) ListDocuments(ctx context.Context, userID uuid.UUID) ([]*models.Document, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "document",
		"method":  "ListDocuments",
		"user_id": userID,
	})

	docs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list documents from repository")
		return nil, fmt.Errorf("service: could not list documents: %w", err)
	}
	return docs, nil
}

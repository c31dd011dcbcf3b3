package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDocumentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestDocumentService(t *testing.T) (*documentService, *mocks.MockDocumentRepository, *mocks.MockObjectStore) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDocumentRepository(ctrl)
	storeMock := mocks.NewMockObjectStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewDocumentService(repoMock, storeMock, logger)
	return service.(*documentService), repoMock, storeMock
}

func TestUploadDocument_Success(t *testing.T) {
	// Подготовка
	service, repoMock, storeMock := newTestDocumentService(t)
	ctx := context.Background()
	userID := uuid.New()
	content := strings.NewReader("PDF content")

	// Ожидания
	storeMock.EXPECT().
		Put(ctx, gomock.Any(), content, int64(11), "application/pdf").
		Return(nil).
		Times(1)

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, doc *models.Document) error {
			assert.Equal(t, userID, doc.UserID)
			assert.Equal(t, "analysis.pdf", doc.FileName)
			// Ключ объекта получает расширение исходного файла
			assert.Contains(t, doc.ObjectKey, "documents/"+userID.String()+"/")
			assert.Contains(t, doc.ObjectKey, ".pdf")
			return nil
		}).
		Times(1)

	// Действие
	doc, err := service.Upload(ctx, userID, "analysis.pdf", "application/pdf", 11, content)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(11), doc.SizeBytes)
}

func TestUploadDocument_EmptyFile(t *testing.T) {
	// Подготовка
	service, _, _ := newTestDocumentService(t)
	ctx := context.Background()

	// Действие
	doc, err := service.Upload(ctx, uuid.New(), "analysis.pdf", "application/pdf", 0, strings.NewReader(""))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Nil(t, doc)
}

func TestDownloadDocument_Success(t *testing.T) {
	// Подготовка
	service, repoMock, storeMock := newTestDocumentService(t)
	ctx := context.Background()
	userID := uuid.New()
	docID := uuid.New()
	stored := &models.Document{
		ID:        docID,
		UserID:    userID,
		ObjectKey: "documents/" + userID.String() + "/key.pdf",
		FileName:  "analysis.pdf",
		SizeBytes: 11,
	}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, docID).
		Return(stored, nil).
		Times(1)

	storeMock.EXPECT().
		Get(ctx, stored.ObjectKey).
		Return(io.NopCloser(strings.NewReader("PDF content")), nil).
		Times(1)

	// Действие
	doc, reader, err := service.Download(ctx, userID, docID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored, doc)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "PDF content", string(data))
	require.NoError(t, reader.Close())
}

func TestDownloadDocument_ForeignDocument_NotFound(t *testing.T) {
	// Подготовка: документ принадлежит другому пользователю
	service, repoMock, _ := newTestDocumentService(t)
	ctx := context.Background()
	docID := uuid.New()
	stored := &models.Document{
		ID:     docID,
		UserID: uuid.New(),
	}

	// Ожидания: хранилище не вызывается
	repoMock.EXPECT().
		GetByID(ctx, docID).
		Return(stored, nil).
		Times(1)

	// Действие
	doc, reader, err := service.Download(ctx, uuid.New(), docID)

	// Проверки: чужой документ неотличим от несуществующего
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, doc)
	assert.Nil(t, reader)
}

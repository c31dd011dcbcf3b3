package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/geo"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/notify"
	notify_mocks "github.com/manojbhatti001/Blood-Donation-sub000/internal/notify/mocks"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRequestService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestRequestService(t *testing.T) (*requestService, *mocks.MockRequestRepository, *mocks.MockGeocoder, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRequestRepository(ctrl)
	geocoderMock := mocks.NewMockGeocoder(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewRequestService(repoMock, geocoderMock, publisherMock, logger)
	return service.(*requestService), repoMock, geocoderMock, publisherMock
}

func newValidRequest(requesterID uuid.UUID) *models.BloodRequest {
	return &models.BloodRequest{
		RequesterID: requesterID,
		BloodGroup:  "O+",
		Units:       2,
		Urgency:     "high",
	}
}

func TestCreateRequest_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	req := newValidRequest(requesterID)

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, req).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notify.Event) error {
			assert.Equal(t, notify.EventRequestCreated, event.Type)
			assert.Equal(t, requesterID, event.UserID)
			return nil
		}).
		Times(1)

	// Действие
	err := service.CreateRequest(ctx, req)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusOpen, req.Status)
}

func TestCreateRequest_WithAddress_Geocodes(t *testing.T) {
	// Подготовка
	service, repoMock, geocoderMock, publisherMock := newTestRequestService(t)
	ctx := context.Background()
	req := newValidRequest(uuid.New())
	req.Address = "Городская больница №1, Казань"
	resolved := &geo.GeocodeResult{
		Point:            geo.Point{Longitude: 49.1221, Latitude: 55.7887},
		FormattedAddress: "Городская клиническая больница №1, Казань, Россия",
	}

	// Ожидания
	geocoderMock.EXPECT().
		Resolve(ctx, req.Address).
		Return(resolved, nil).
		Times(1)

	repoMock.EXPECT().
		Create(ctx, req).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err := service.CreateRequest(ctx, req)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, resolved.FormattedAddress, req.Address)
	require.NotNil(t, req.Longitude)
	require.NotNil(t, req.Latitude)
	assert.Equal(t, resolved.Point.Longitude, *req.Longitude)
	assert.Equal(t, resolved.Point.Latitude, *req.Latitude)
}

func TestCreateRequest_PublishFailure_DoesNotFail(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestRequestService(t)
	ctx := context.Background()
	req := newValidRequest(uuid.New())

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, req).
		Return(nil).
		Times(1)

	// Отказ публикации не роняет запрос
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis unavailable")).
		Times(1)

	// Действие
	err := service.CreateRequest(ctx, req)

	// Проверки
	require.NoError(t, err)
}

func TestCreateRequest_InvalidBloodGroup(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestRequestService(t)
	ctx := context.Background()
	req := newValidRequest(uuid.New())
	req.BloodGroup = "C+"

	// Действие
	err := service.CreateRequest(ctx, req)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateRequest_ZeroUnits(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestRequestService(t)
	ctx := context.Background()
	req := newValidRequest(uuid.New())
	req.Units = 0

	// Действие
	err := service.CreateRequest(ctx, req)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestGetRequest_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()
	expected := &models.BloodRequest{ID: requestID, BloodGroup: "A-"}

	// Ожидания
	repoMock.EXPECT().
		GetRequestFromCache(ctx, requestID).
		Return(expected, nil).
		Times(1)

	// Действие
	req, err := service.GetRequest(ctx, requestID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, req)
}

func TestGetRequest_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()
	expected := &models.BloodRequest{ID: requestID, BloodGroup: "A-"}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetRequestFromCache(ctx, requestID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, requestID).
		Return(expected, nil).
		Times(1)

	// 3. Результат сохраняется в кеш
	repoMock.EXPECT().
		SetRequestCache(ctx, expected).
		Return(nil).
		Times(1)

	// Действие
	req, err := service.GetRequest(ctx, requestID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, req)
}

func TestGetRequest_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetRequestFromCache(ctx, requestID).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().
		GetByID(ctx, requestID).
		Return(nil, fmt.Errorf("%w: blood request with id %s", models.ErrNotFound, requestID)).
		Times(1)

	// Действие
	req, err := service.GetRequest(ctx, requestID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, req)
}

func TestUpdateRequest_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	req := newValidRequest(requesterID)
	req.ID = uuid.New()
	req.Status = models.RequestStatusOpen
	existing := newValidRequest(requesterID)
	existing.ID = req.ID
	existing.Units = 1

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, req.ID).
		Return(existing, nil).
		Times(1)

	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.BloodRequest) error {
			assert.Equal(t, req.Units, updated.Units)
			return nil
		}).
		Times(1)

	repoMock.EXPECT().
		InvalidateRequestCache(ctx, req.ID).
		Return(nil).
		Times(1)

	// Действие
	err := service.UpdateRequest(ctx, req)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateRequest_NoAddress_PreservesCoordinates(t *testing.T) {
	// Подготовка: у сохраненной заявки есть геокодированная точка,
	// обновление приходит без адреса
	service, repoMock, _, _ := newTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	req := newValidRequest(requesterID)
	req.ID = uuid.New()
	req.Status = models.RequestStatusOpen

	lon, lat := 49.1221, 55.7887
	existing := newValidRequest(requesterID)
	existing.ID = req.ID
	existing.Address = "Городская клиническая больница №1, Казань, Россия"
	existing.Longitude = &lon
	existing.Latitude = &lat

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, req.ID).
		Return(existing, nil).
		Times(1)

	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.BloodRequest) error {
			// Точка и адрес не затираются обновлением без адреса
			require.NotNil(t, updated.Longitude)
			require.NotNil(t, updated.Latitude)
			assert.Equal(t, lon, *updated.Longitude)
			assert.Equal(t, lat, *updated.Latitude)
			assert.Equal(t, "Городская клиническая больница №1, Казань, Россия", updated.Address)
			return nil
		}).
		Times(1)

	repoMock.EXPECT().
		InvalidateRequestCache(ctx, req.ID).
		Return(nil).
		Times(1)

	// Действие
	err := service.UpdateRequest(ctx, req)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateRequest_WithAddress_Regeocodes(t *testing.T) {
	// Подготовка
	service, repoMock, geocoderMock, _ := newTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	req := newValidRequest(requesterID)
	req.ID = uuid.New()
	req.Status = models.RequestStatusOpen
	req.Address = "Невский проспект, Санкт-Петербург"

	oldLon, oldLat := 49.1221, 55.7887
	existing := newValidRequest(requesterID)
	existing.ID = req.ID
	existing.Longitude = &oldLon
	existing.Latitude = &oldLat

	resolved := &geo.GeocodeResult{
		Point:            geo.Point{Longitude: 30.3141, Latitude: 59.9386},
		FormattedAddress: "Невский проспект, Санкт-Петербург, Россия",
	}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, req.ID).
		Return(existing, nil).
		Times(1)

	geocoderMock.EXPECT().
		Resolve(ctx, req.Address).
		Return(resolved, nil).
		Times(1)

	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.BloodRequest) error {
			assert.Equal(t, resolved.FormattedAddress, updated.Address)
			require.NotNil(t, updated.Longitude)
			require.NotNil(t, updated.Latitude)
			assert.Equal(t, resolved.Point.Longitude, *updated.Longitude)
			assert.Equal(t, resolved.Point.Latitude, *updated.Latitude)
			return nil
		}).
		Times(1)

	repoMock.EXPECT().
		InvalidateRequestCache(ctx, req.ID).
		Return(nil).
		Times(1)

	// Действие
	err := service.UpdateRequest(ctx, req)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateRequest_ForeignRequest_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestRequestService(t)
	ctx := context.Background()
	req := newValidRequest(uuid.New())
	req.ID = uuid.New()
	req.Status = models.RequestStatusOpen
	// Заявка принадлежит другому пользователю
	existing := newValidRequest(uuid.New())
	existing.ID = req.ID

	// Ожидания: Update не вызывается
	repoMock.EXPECT().
		GetByID(ctx, req.ID).
		Return(existing, nil).
		Times(1)

	// Действие
	err := service.UpdateRequest(ctx, req)

	// Проверки: чужая заявка неотличима от несуществующей
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCancelRequest_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	requestID := uuid.New()
	existing := newValidRequest(requesterID)
	existing.ID = requestID

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, requestID).
		Return(existing, nil).
		Times(1)

	repoMock.EXPECT().
		SetStatus(ctx, requestID, models.RequestStatusCancelled).
		Return(nil).
		Times(1)

	repoMock.EXPECT().
		InvalidateRequestCache(ctx, requestID).
		Return(nil).
		Times(1)

	// Действие
	err := service.CancelRequest(ctx, requestID, requesterID)

	// Проверки
	require.NoError(t, err)
}

func TestCancelRequest_ForeignRequest_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()
	existing := newValidRequest(uuid.New())
	existing.ID = requestID

	// Ожидания: SetStatus не вызывается
	repoMock.EXPECT().
		GetByID(ctx, requestID).
		Return(existing, nil).
		Times(1)

	// Действие
	err := service.CancelRequest(ctx, requestID, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListRequests_NormalizesPagination(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestRequestService(t)
	ctx := context.Background()
	expected := []*models.BloodRequest{newValidRequest(uuid.New())}

	// Ожидания: отрицательная страница и слишком большой размер заменяются
	// значениями по умолчанию
	repoMock.EXPECT().
		List(ctx, 1, 20).
		Return(expected, nil).
		Times(1)

	// Действие
	requests, err := service.ListRequests(ctx, -5, 1000)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/notify"
	"github.com/sirupsen/logrus"
)

// RequestRepository определяет контракт для работы с бд заявок на кровь
type RequestRepository interface {
	Create(ctx context.Context, req *models.BloodRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error)
	Update(ctx context.Context, req *models.BloodRequest) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	List(ctx context.Context, page, pageSize int) ([]*models.BloodRequest, error)
	GetRequestFromCache(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error)
	SetRequestCache(ctx context.Context, req *models.BloodRequest) error
	InvalidateRequestCache(ctx context.Context, id uuid.UUID) error
}

// RequestService определяет контракт бизнес-логики заявок на кровь
type RequestService interface {
	CreateRequest(ctx context.Context, req *models.BloodRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error)
	UpdateRequest(ctx context.Context, req *models.BloodRequest) error
	CancelRequest(ctx context.Context, id, requesterID uuid.UUID) error
	ListRequests(ctx context.Context, page, pageSize int) ([]*models.BloodRequest, error)
}

type requestService struct {
	repo      RequestRepository
	geocoder  Geocoder
	publisher notify.Publisher
	logger    *logrus.Logger
}

func NewRequestService(repo RequestRepository, geocoder Geocoder, publisher notify.Publisher, logger *logrus.Logger) RequestService {
	return &requestService{
		repo:      repo,
		geocoder:  geocoder,
		publisher: publisher,
		logger:    logger,
	}
}

func validateRequest(req *models.BloodRequest) error {
	if !models.ValidBloodGroup(req.BloodGroup) {
		return fmt.Errorf("%w: unknown blood group %q", models.ErrValidation, req.BloodGroup)
	}
	if req.Units < 1 {
		return fmt.Errorf("%w: units must be positive", models.ErrValidation)
	}
	switch req.Urgency {
	case "low", "normal", "high", "critical":
	default:
		return fmt.Errorf("%w: unknown urgency %q", models.ErrValidation, req.Urgency)
	}
	return nil
}

// CreateRequest создает заявку на кровь. Адрес, если задан, геокодируется,
// чтобы доноры могли искать заявки поблизости.
func (s *requestService) CreateRequest(ctx context.Context, req *models.BloodRequest) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "request",
		"method":      "CreateRequest",
		"blood_group": req.BloodGroup,
	})
	log.Info("Attempting to create a blood request")

	if err := validateRequest(req); err != nil {
		return err
	}

	if strings.TrimSpace(req.Address) != "" {
		resolved, err := s.geocoder.Resolve(ctx, req.Address)
		if err != nil {
			log.WithError(err).Warn("Failed to resolve request address")
			return fmt.Errorf("service: could not resolve request address: %w", err)
		}
		req.Address = resolved.FormattedAddress
		req.Longitude = &resolved.Point.Longitude
		req.Latitude = &resolved.Point.Latitude
	}

	req.Status = models.RequestStatusOpen
	if err := s.repo.Create(ctx, req); err != nil {
		log.WithError(err).Error("Failed to create blood request in repository")
		return fmt.Errorf("service: could not create blood request: %w", err)
	}

	// Уведомление доставляется асинхронно, отказ публикации не роняет запрос
	event := notify.Event{
		Type:      notify.EventRequestCreated,
		UserID:    req.RequesterID,
		Timestamp: time.Now(),
		Request:   req,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish request created event")
	}

	log.WithField("request_id", req.ID).Info("Blood request created successfully")
	return nil
}

// GetRequest получает заявку по ID, сначала из кэша
func (s *requestService) GetRequest(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "request",
		"method":     "GetRequest",
		"request_id": id,
	})

	cached, err := s.repo.GetRequestFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read blood request cache")
	}
	if cached != nil {
		return cached, nil
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get blood request from repository")
		return nil, fmt.Errorf("service: could not get blood request: %w", err)
	}

	if err := s.repo.SetRequestCache(ctx, req); err != nil {
		log.WithError(err).Warn("Failed to set blood request cache")
	}

	return req, nil
}

// UpdateRequest обновляет заявку. Менять заявку может только её автор,
// для остальных она неотличима от несуществующей.
func (s *requestService) UpdateRequest(ctx context.Context, req *models.BloodRequest) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "request",
		"method":     "UpdateRequest",
		"request_id": req.ID,
	})
	log.Info("Attempting to update blood request")

	if err := validateRequest(req); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent blood request")
		return fmt.Errorf("service: blood request not found for update: %w", err)
	}
	if existing.RequesterID != req.RequesterID {
		log.Warn("Attempted to update a foreign blood request")
		return fmt.Errorf("%w: blood request with id %s", models.ErrNotFound, req.ID)
	}

	existing.BloodGroup = req.BloodGroup
	existing.Units = req.Units
	existing.Urgency = req.Urgency
	existing.Status = req.Status

	// Координаты снаружи не принимаются: новый адрес геокодируется заново,
	// пустой адрес оставляет сохраненную точку нетронутой
	if strings.TrimSpace(req.Address) != "" {
		resolved, err := s.geocoder.Resolve(ctx, req.Address)
		if err != nil {
			log.WithError(err).Warn("Failed to resolve updated request address")
			return fmt.Errorf("service: could not resolve request address: %w", err)
		}
		existing.Address = resolved.FormattedAddress
		existing.Longitude = &resolved.Point.Longitude
		existing.Latitude = &resolved.Point.Latitude
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update blood request in repository")
		return fmt.Errorf("service: could not update blood request: %w", err)
	}

	if err := s.repo.InvalidateRequestCache(ctx, req.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate blood request cache")
	}

	log.Info("Blood request updated successfully")
	return nil
}

// CancelRequest переводит заявку автора в статус cancelled
func (s *requestService) CancelRequest(ctx context.Context, id, requesterID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "request",
		"method":     "CancelRequest",
		"request_id": id,
	})
	log.Info("Attempting to cancel blood request")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to cancel a non-existent blood request")
		return fmt.Errorf("service: blood request not found for cancel: %w", err)
	}
	if existing.RequesterID != requesterID {
		log.Warn("Attempted to cancel a foreign blood request")
		return fmt.Errorf("%w: blood request with id %s", models.ErrNotFound, id)
	}

	if err := s.repo.SetStatus(ctx, id, models.RequestStatusCancelled); err != nil {
		log.WithError(err).Error("Failed to cancel blood request in repository")
		return fmt.Errorf("service: could not cancel blood request: %w", err)
	}

	if err := s.repo.InvalidateRequestCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate blood request cache")
	}

	log.Info("Blood request cancelled successfully")
	return nil
}

// ListRequests возвращает список заявок с пагинацией
func (s *requestService) ListRequests(ctx context.Context, page, pageSize int) ([]*models.BloodRequest, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "request",
		"method":    "ListRequests",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing blood requests")

	requests, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list blood requests from repository")
		return nil, fmt.Errorf("service: could not list blood requests: %w", err)
	}

	log.WithField("count", len(requests)).Info("Blood requests listed successfully")
	return requests, nil
}

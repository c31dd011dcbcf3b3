package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/config"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/geo"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/notify"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// LocationRepository определяет контракт для работы с бд геоточек
type LocationRepository interface {
	Upsert(ctx context.Context, loc *models.Location) error
	FindNearby(ctx context.Context, lon, lat float64, radiusMeters int, kind string) ([]*models.NearbyMatch, error)
	ListBloodBanks(ctx context.Context) ([]*models.BloodBank, error)
	GetBloodBanksFromCache(ctx context.Context) ([]*models.BloodBank, error)
	SetBloodBanksCache(ctx context.Context, banks []*models.BloodBank) error
	InvalidateBloodBanksCache(ctx context.Context) error
}

// Geocoder определяет контракт разрешения адреса в координаты
type Geocoder interface {
	Resolve(ctx context.Context, address string) (*geo.GeocodeResult, error)
}

// DistanceProvider определяет контракт получения дорожного расстояния между точками
type DistanceProvider interface {
	Distance(ctx context.Context, origin, destination geo.Point) (*models.DistanceInfo, error)
}

// LocationService определяет контракт бизнес-логики геоточек
type LocationService interface {
	SaveLocation(ctx context.Context, userID uuid.UUID, kind, address string, available bool) (*models.Location, error)
	FindNearby(ctx context.Context, lon, lat float64, radiusMeters int, kind string) ([]*models.NearbyMatch, error)
	ListBloodBanks(ctx context.Context) ([]*models.BloodBank, error)
}

type locationService struct {
	repo      LocationRepository
	geocoder  Geocoder
	distance  DistanceProvider
	publisher notify.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewLocationService(repo LocationRepository, geocoder Geocoder, distance DistanceProvider, publisher notify.Publisher, logger *logrus.Logger, cfg *config.Config) LocationService {
	return &locationService{
		repo:      repo,
		geocoder:  geocoder,
		distance:  distance,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// SaveLocation геокодирует адрес и атомарно создает или обновляет геоточку
// пользователя. Отказ геокодера прерывает операцию, запись не создается.
func (s *locationService) SaveLocation(ctx context.Context, userID uuid.UUID, kind, address string, available bool) (*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "SaveLocation",
		"user_id": userID,
		"kind":    kind,
	})
	log.Info("Saving location")

	if !models.ValidKind(kind) {
		return nil, fmt.Errorf("%w: unknown location kind %q", models.ErrValidation, kind)
	}
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: address is required", models.ErrValidation)
	}

	resolved, err := s.geocoder.Resolve(ctx, address)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve address")
		return nil, fmt.Errorf("service: could not resolve address: %w", err)
	}

	loc := &models.Location{
		UserID:      userID,
		Kind:        kind,
		Longitude:   resolved.Point.Longitude,
		Latitude:    resolved.Point.Latitude,
		Address:     resolved.FormattedAddress,
		IsAvailable: available,
	}

	if err := s.repo.Upsert(ctx, loc); err != nil {
		log.WithError(err).Error("Failed to upsert location in repository")
		return nil, fmt.Errorf("service: could not save location: %w", err)
	}

	// Список банков крови кэшируется целиком, сбрасываем его при изменении банка
	if kind == models.KindBloodBank {
		if err := s.repo.InvalidateBloodBanksCache(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate blood banks cache")
		}
	}

	// Уведомление о новом доноре доставляется асинхронно, отказ не роняет запрос
	if kind == models.KindDonor && available {
		event := notify.Event{
			Type:      notify.EventDonorRegistered,
			UserID:    userID,
			Timestamp: time.Now(),
			Location:  loc,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish donor registered event")
		}
	}

	log.WithField("location_id", loc.ID).Info("Location saved successfully")
	return loc, nil
}

// FindNearby находит доступные точки заданного типа в радиусе, отсортированные
// по расстоянию, и обогащает каждую дорожным расстоянием от провайдера.
// Запросы к провайдеру идут параллельно, результаты сохраняют порядок кандидатов;
// любой отказ обогащения прерывает весь запрос.
func (s *locationService) FindNearby(ctx context.Context, lon, lat float64, radiusMeters int, kind string) ([]*models.NearbyMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "FindNearby",
		"kind":    kind,
		"radius":  radiusMeters,
	})
	log.Info("Searching nearby locations")

	if !models.ValidKind(kind) {
		return nil, fmt.Errorf("%w: unknown location kind %q", models.ErrValidation, kind)
	}
	// NaN проваливает любое сравнение, поэтому сравнения инвертированы:
	// NaN и ±Inf отклоняются вместе с выходом за диапазон
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) ||
		lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
	}
	if radiusMeters == 0 {
		radiusMeters = s.cfg.DefaultRadiusMeters
	}
	if radiusMeters < 0 || radiusMeters > s.cfg.MaxRadiusMeters {
		return nil, fmt.Errorf("%w: radius must be between 1 and %d meters", models.ErrValidation, s.cfg.MaxRadiusMeters)
	}

	matches, err := s.repo.FindNearby(ctx, lon, lat, radiusMeters, kind)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby locations in repository")
		return nil, fmt.Errorf("service: could not find nearby locations: %w", err)
	}

	origin := geo.Point{Longitude: lon, Latitude: lat}
	g, gctx := errgroup.WithContext(ctx)
	for i, match := range matches {
		g.Go(func() error {
			info, err := s.distance.Distance(gctx, origin, geo.Point{
				Longitude: match.Location.Longitude,
				Latitude:  match.Location.Latitude,
			})
			if err != nil {
				return err
			}
			matches[i].Distance = *info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to enrich nearby matches with distances")
		return nil, fmt.Errorf("service: could not enrich nearby matches: %w", err)
	}

	log.WithField("count", len(matches)).Info("Nearby search completed")
	return matches, nil
}

// ListBloodBanks возвращает все банки крови, через кэш Redis
func (s *locationService) ListBloodBanks(ctx context.Context) ([]*models.BloodBank, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "ListBloodBanks",
	})

	banks, err := s.repo.GetBloodBanksFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read blood banks cache")
	}
	if banks != nil {
		log.WithField("count", len(banks)).Info("Blood banks served from cache")
		return banks, nil
	}

	banks, err = s.repo.ListBloodBanks(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list blood banks from repository")
		return nil, fmt.Errorf("service: could not list blood banks: %w", err)
	}

	if err := s.repo.SetBloodBanksCache(ctx, banks); err != nil {
		log.WithError(err).Warn("Failed to set blood banks cache")
	}

	log.WithField("count", len(banks)).Info("Blood banks listed successfully")
	return banks, nil
}

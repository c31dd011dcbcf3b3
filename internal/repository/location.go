package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/service"
	"github.com/redis/go-redis/v9"
)

const bloodBanksCacheKey = "bloodbanks:all"

type LocationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewLocationRepository(db *pgxpool.Pool, redisClient *redis.Client) service.LocationRepository {
	return &LocationRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Upsert атомарно создает или обновляет геоточку по владельцу.
// ON CONFLICT по user_id закрывает гонку двух конкурентных регистраций:
// после вызова у пользователя ровно одна запись.
func (r *LocationRepository) Upsert(ctx context.Context, loc *models.Location) error {
	query := `
		INSERT INTO locations (user_id, kind, point, address, is_available)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			kind = EXCLUDED.kind,
			point = EXCLUDED.point,
			address = EXCLUDED.address,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
		RETURNING id, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		loc.UserID,
		loc.Kind,
		loc.Longitude,
		loc.Latitude,
		loc.Address,
		loc.IsAvailable,
	).Scan(&loc.ID, &loc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to upsert location: %v", models.ErrStorage, err)
	}
	return nil
}

// FindNearby находит доступные точки заданного типа в радиусе от точки запроса,
// отсортированные по геодезическому расстоянию, вместе с открытым профилем владельца.
// Поле Distance заполняет сервис через провайдера маршрутов.
func (r *LocationRepository) FindNearby(ctx context.Context, lon, lat float64, radiusMeters int, kind string) ([]*models.NearbyMatch, error) {
	query := `
		SELECT
			l.id,
			l.user_id,
			l.kind,
			ST_X(l.point::geometry) AS longitude,
			ST_Y(l.point::geometry) AS latitude,
			l.address,
			l.is_available,
			l.updated_at,
			u.id,
			u.name,
			u.email,
			u.phone
		FROM locations l
		JOIN users u ON u.id = l.user_id
		WHERE
			l.is_available = true
			AND l.kind = $3
			AND ST_DWithin(
				l.point,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$4
			)
		ORDER BY ST_Distance(l.point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography);
	`
	rows, err := r.db.Query(ctx, query, lon, lat, kind, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find nearby locations: %v", models.ErrStorage, err)
	}
	defer rows.Close()

	matches := make([]*models.NearbyMatch, 0)
	for rows.Next() {
		match := &models.NearbyMatch{}
		err := rows.Scan(
			&match.Location.ID,
			&match.Location.UserID,
			&match.Location.Kind,
			&match.Location.Longitude,
			&match.Location.Latitude,
			&match.Location.Address,
			&match.Location.IsAvailable,
			&match.Location.UpdatedAt,
			&match.Owner.ID,
			&match.Owner.Name,
			&match.Owner.Email,
			&match.Owner.Phone,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan nearby row: %v", models.ErrStorage, err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error nearby iteration: %v", models.ErrStorage, err)
	}
	return matches, nil
}

// ListBloodBanks возвращает все точки банков крови с именем и телефоном владельца
func (r *LocationRepository) ListBloodBanks(ctx context.Context) ([]*models.BloodBank, error) {
	query := `
		SELECT
			l.id,
			l.user_id,
			l.kind,
			ST_X(l.point::geometry) AS longitude,
			ST_Y(l.point::geometry) AS latitude,
			l.address,
			l.is_available,
			l.updated_at,
			u.id,
			u.name,
			u.phone
		FROM locations l
		JOIN users u ON u.id = l.user_id
		WHERE l.kind = $1
		ORDER BY l.updated_at DESC;
	`
	rows, err := r.db.Query(ctx, query, models.KindBloodBank)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list blood banks: %v", models.ErrStorage, err)
	}
	defer rows.Close()

	banks := make([]*models.BloodBank, 0)
	for rows.Next() {
		bank := &models.BloodBank{}
		err := rows.Scan(
			&bank.Location.ID,
			&bank.Location.UserID,
			&bank.Location.Kind,
			&bank.Location.Longitude,
			&bank.Location.Latitude,
			&bank.Location.Address,
			&bank.Location.IsAvailable,
			&bank.Location.UpdatedAt,
			&bank.Owner.ID,
			&bank.Owner.Name,
			&bank.Owner.Phone,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan blood bank row: %v", models.ErrStorage, err)
		}
		banks = append(banks, bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error blood banks iteration: %v", models.ErrStorage, err)
	}
	return banks, nil
}

// GetBloodBanksFromCache пытается получить список банков крови из Redis
func (r *LocationRepository) GetBloodBanksFromCache(ctx context.Context) ([]*models.BloodBank, error) {
	val, err := r.redisClient.Get(ctx, bloodBanksCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blood banks from cache: %w", err)
	}

	banks := make([]*models.BloodBank, 0)
	if err := json.Unmarshal(val, &banks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal blood banks from cache: %w", err)
	}
	return banks, nil
}

// SetBloodBanksCache сохраняет список банков крови в Redis
func (r *LocationRepository) SetBloodBanksCache(ctx context.Context, banks []*models.BloodBank) error {
	val, err := json.Marshal(banks)
	if err != nil {
		return fmt.Errorf("failed to marshal blood banks for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, bloodBanksCacheKey, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set blood banks in cache: %w", err)
	}
	return nil
}

// InvalidateBloodBanksCache удаляет список банков крови из Redis кэша
func (r *LocationRepository) InvalidateBloodBanksCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, bloodBanksCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate blood banks cache: %w", err)
	}
	return nil
}

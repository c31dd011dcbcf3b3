package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/service"
	"github.com/redis/go-redis/v9"
)

type RequestRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewRequestRepository(db *pgxpool.Pool, redisClient *redis.Client) service.RequestRepository {
	return &RequestRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую заявку на кровь в бд
func (r *RequestRepository) Create(ctx context.Context, req *models.BloodRequest) error {
	query := `
		INSERT INTO blood_requests (requester_id, blood_group, units, urgency, status, address, point)
		VALUES ($1, $2, $3, $4, $5, $6,
			CASE WHEN $7::float8 IS NULL THEN NULL
			     ELSE ST_SetSRID(ST_MakePoint($7, $8), 4326)::geography END)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		req.RequesterID,
		req.BloodGroup,
		req.Units,
		req.Urgency,
		req.Status,
		req.Address,
		req.Longitude,
		req.Latitude,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to create blood request: %v", models.ErrStorage, err)
	}
	return nil
}

// GetByID возвращает заявку по её UUID
func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error) {
	req := &models.BloodRequest{}
	query := `
		SELECT
			id,
			requester_id,
			blood_group,
			units,
			urgency,
			status,
			address,
			ST_X(point::geometry) AS longitude,
			ST_Y(point::geometry) AS latitude,
			created_at,
			updated_at
		FROM blood_requests
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.RequesterID,
		&req.BloodGroup,
		&req.Units,
		&req.Urgency,
		&req.Status,
		&req.Address,
		&req.Longitude,
		&req.Latitude,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: blood request with id %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to get blood request by id: %v", models.ErrStorage, err)
	}
	return req, nil
}

// Update обновляет существующую заявку
func (r *RequestRepository) Update(ctx context.Context, req *models.BloodRequest) error {
	query := `
		UPDATE blood_requests SET
			blood_group = $1,
			units = $2,
			urgency = $3,
			status = $4,
			address = $5,
			point = CASE WHEN $6::float8 IS NULL THEN NULL
			             ELSE ST_SetSRID(ST_MakePoint($6, $7), 4326)::geography END,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		req.BloodGroup,
		req.Units,
		req.Urgency,
		req.Status,
		req.Address,
		req.Longitude,
		req.Latitude,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update blood request: %v", models.ErrStorage, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: blood request with id %s for update", models.ErrNotFound, req.ID)
	}
	return nil
}

// SetStatus переводит заявку в новый статус (отмена/выполнение)
func (r *RequestRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE blood_requests SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("%w: failed to set blood request status: %v", models.ErrStorage, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: blood request with id %s for status change", models.ErrNotFound, id)
	}
	return nil
}

// List возвращает список заявок с пагинацией, новые первыми
func (r *RequestRepository) List(ctx context.Context, page, pageSize int) ([]*models.BloodRequest, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			requester_id,
			blood_group,
			units,
			urgency,
			status,
			address,
			ST_X(point::geometry) AS longitude,
			ST_Y(point::geometry) AS latitude,
			created_at,
			updated_at
		FROM blood_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list blood requests: %v", models.ErrStorage, err)
	}
	defer rows.Close()

	requests := make([]*models.BloodRequest, 0)
	for rows.Next() {
		req := &models.BloodRequest{}
		err := rows.Scan(
			&req.ID,
			&req.RequesterID,
			&req.BloodGroup,
			&req.Units,
			&req.Urgency,
			&req.Status,
			&req.Address,
			&req.Longitude,
			&req.Latitude,
			&req.CreatedAt,
			&req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan blood request row: %v", models.ErrStorage, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error list iteration: %v", models.ErrStorage, err)
	}
	return requests, nil
}

// GetRequestFromCache пытается получить заявку из Redis
func (r *RequestRepository) GetRequestFromCache(ctx context.Context, id uuid.UUID) (*models.BloodRequest, error) {
	key := fmt.Sprintf("request:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blood request from cache: %w", err)
	}

	req := &models.BloodRequest{}
	if err := json.Unmarshal(val, req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal blood request from cache: %w", err)
	}
	return req, nil
}

// SetRequestCache сохраняет заявку в Redis
func (r *RequestRepository) SetRequestCache(ctx context.Context, req *models.BloodRequest) error {
	key := fmt.Sprintf("request:%s", req.ID.String())
	val, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal blood request for cache: %w", err)
	}
	// Срок жизни кэша 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set blood request in cache: %w", err)
	}
	return nil
}

// InvalidateRequestCache удаляет заявку из Redis кэша
func (r *RequestRepository) InvalidateRequestCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("request:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate blood request cache: %w", err)
	}
	return nil
}

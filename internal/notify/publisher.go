package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	notifyQueueKey = "notification_events"

	// Типы событий уведомлений
	EventRequestCreated  = "request.created"
	EventDonorRegistered = "donor.registered"
)

// Event - событие для шлюза уведомлений (за шлюзом живет SMTP-рассылка)
type Event struct {
	Type      string               `json:"type"`
	UserID    uuid.UUID            `json:"user_id"`
	Timestamp time.Time            `json:"timestamp"`
	Request   *models.BloodRequest `json:"request,omitempty"`
	Location  *models.Location     `json:"location,omitempty"`
}

// Publisher - интерфейс для публикации событий уведомлений
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь-список Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает BRPop с правой
	if err := p.redisClient.LPush(ctx, notifyQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}

package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceClient_Distance_Success(t *testing.T) {
	// Подготовка: фейковый OSRM возвращает один маршрут
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/route/v1/driving/")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": "Ok", "routes": [{"distance": 1523.4, "duration": 312.7}]}`))
	}))
	defer server.Close()

	client := NewDistanceClient(server.URL, 5*time.Second, 3, 10*time.Millisecond)

	// Действие
	info, err := client.Distance(context.Background(),
		Point{Longitude: 37.60, Latitude: 55.74},
		Point{Longitude: 37.62, Latitude: 55.75},
	)

	// Проверки: значения провайдера отдаются как есть
	require.NoError(t, err)
	assert.Equal(t, 1523.4, info.Meters)
	assert.Equal(t, 312.7, info.Seconds)
}

func TestDistanceClient_Distance_RetriesOnFailure(t *testing.T) {
	// Подготовка: первые два вызова падают, третий успешен
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": "Ok", "routes": [{"distance": 1000, "duration": 200}]}`))
	}))
	defer server.Close()

	client := NewDistanceClient(server.URL, 5*time.Second, 3, time.Millisecond)

	// Действие
	info, err := client.Distance(context.Background(),
		Point{Longitude: 37.60, Latitude: 55.74},
		Point{Longitude: 37.62, Latitude: 55.75},
	)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, float64(1000), info.Meters)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDistanceClient_Distance_ExhaustsRetries(t *testing.T) {
	// Подготовка: провайдер падает на каждом вызове
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewDistanceClient(server.URL, 5*time.Second, 3, time.Millisecond)

	// Действие
	info, err := client.Distance(context.Background(),
		Point{Longitude: 37.60, Latitude: 55.74},
		Point{Longitude: 37.62, Latitude: 55.75},
	)

	// Проверки: ровно maxRetries попыток, затем ErrProvider
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrProvider)
	assert.Nil(t, info)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDistanceClient_Distance_NoRoutes(t *testing.T) {
	// Подготовка: код не Ok
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer server.Close()

	client := NewDistanceClient(server.URL, 5*time.Second, 1, time.Millisecond)

	// Действие
	info, err := client.Distance(context.Background(),
		Point{Longitude: 37.60, Latitude: 55.74},
		Point{Longitude: 0, Latitude: 0},
	)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrProvider)
	assert.Nil(t, info)
}

func TestDistanceClient_Distance_ContextCancelled(t *testing.T) {
	// Подготовка: провайдер всегда падает, контекст отменен до повторов
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewDistanceClient(server.URL, 5*time.Second, 5, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Действие
	info, err := client.Distance(ctx,
		Point{Longitude: 37.60, Latitude: 55.74},
		Point{Longitude: 37.62, Latitude: 55.75},
	)

	// Проверки: отмена контекста прерывает ожидание повтора
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrProvider)
	assert.Nil(t, info)
}

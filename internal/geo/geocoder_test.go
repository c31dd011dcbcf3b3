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

func TestGeocoder_Resolve_Success(t *testing.T) {
	// Подготовка: фейковый Nominatim возвращает одного кандидата
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Красная площадь", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "55.7539", "lon": "37.6208", "display_name": "Красная площадь, Москва, Россия"}]`))
	}))
	defer server.Close()

	geocoder := NewGeocoder(server.URL, 5*time.Second, time.Minute)

	// Действие
	result, err := geocoder.Resolve(context.Background(), "Красная площадь")

	// Проверки
	require.NoError(t, err)
	assert.InDelta(t, 37.6208, result.Point.Longitude, 0.0001)
	assert.InDelta(t, 55.7539, result.Point.Latitude, 0.0001)
	assert.Equal(t, "Красная площадь, Москва, Россия", result.FormattedAddress)
}

func TestGeocoder_Resolve_FirstCandidateWins(t *testing.T) {
	// Подготовка: провайдер возвращает несколько кандидатов
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"lat": "55.75", "lon": "37.62", "display_name": "Первый кандидат"},
			{"lat": "59.93", "lon": "30.31", "display_name": "Второй кандидат"}
		]`))
	}))
	defer server.Close()

	geocoder := NewGeocoder(server.URL, 5*time.Second, time.Minute)

	// Действие
	result, err := geocoder.Resolve(context.Background(), "улица Ленина")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Первый кандидат", result.FormattedAddress)
}

func TestGeocoder_Resolve_NoCandidates_NotFound(t *testing.T) {
	// Подготовка: пустой список кандидатов
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	geocoder := NewGeocoder(server.URL, 5*time.Second, time.Minute)

	// Действие
	result, err := geocoder.Resolve(context.Background(), "несуществующий адрес")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, result)
}

func TestGeocoder_Resolve_ProviderError(t *testing.T) {
	// Подготовка: провайдер отвечает 503
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	geocoder := NewGeocoder(server.URL, 5*time.Second, time.Minute)

	// Действие
	result, err := geocoder.Resolve(context.Background(), "Красная площадь")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrProvider)
	assert.Nil(t, result)
}

func TestGeocoder_Resolve_InvalidCoordinates(t *testing.T) {
	// Подготовка: провайдер вернул мусор вместо координат
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "not-a-number", "lon": "37.62", "display_name": "x"}]`))
	}))
	defer server.Close()

	geocoder := NewGeocoder(server.URL, 5*time.Second, time.Minute)

	// Действие
	result, err := geocoder.Resolve(context.Background(), "Красная площадь")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrProvider)
	assert.Nil(t, result)
}

func TestGeocoder_Resolve_CachesResult(t *testing.T) {
	// Подготовка: считаем обращения к провайдеру
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "55.75", "lon": "37.62", "display_name": "Москва"}]`))
	}))
	defer server.Close()

	geocoder := NewGeocoder(server.URL, 5*time.Second, time.Minute)
	ctx := context.Background()

	// Действие: два разрешения одного и того же адреса
	first, err := geocoder.Resolve(ctx, "Москва")
	require.NoError(t, err)
	second, err := geocoder.Resolve(ctx, "Москва")
	require.NoError(t, err)

	// Проверки: второй ответ из кэша, провайдер вызван один раз
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

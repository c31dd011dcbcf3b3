package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
)

// osrmRouteResponse - формат ответа OSRM /route
type osrmRouteResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// DistanceClient - клиент матрицы расстояний поверх OSRM-совместимого провайдера
type DistanceClient struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	baseDelay  time.Duration
}

// NewDistanceClient создает клиент расстояний с ограниченными повторами
func NewDistanceClient(baseURL string, timeout time.Duration, maxRetries int, baseDelay time.Duration) *DistanceClient {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &DistanceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

// Distance возвращает дорожное расстояние и время в пути между двумя точками.
// Берется первый маршрут провайдера как есть, без нормализации единиц.
// Отказы повторяются с экспоненциальной задержкой до maxRetries раз.
func (c *DistanceClient) Distance(ctx context.Context, origin, destination Point) (*models.DistanceInfo, error) {
	reqURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.baseURL,
		origin.Longitude, origin.Latitude,
		destination.Longitude, destination.Latitude,
	)

	var lastErr error
	delay := c.baseDelay
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: distance call cancelled: %v", models.ErrProvider, ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2 // Экспоненциальная задержка
		}

		info, err := c.fetchRoute(ctx, reqURL)
		if err == nil {
			return info, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: distance call failed after %d attempts: %v", models.ErrProvider, c.maxRetries, lastErr)
}

func (c *DistanceClient) fetchRoute(ctx context.Context, reqURL string) (*models.DistanceInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build route request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("route call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing provider returned status %d", resp.StatusCode)
	}

	var route osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return nil, fmt.Errorf("failed to decode route response: %w", err)
	}

	if route.Code != "Ok" || len(route.Routes) == 0 {
		return nil, fmt.Errorf("routing provider returned code %q with %d routes", route.Code, len(route.Routes))
	}

	return &models.DistanceInfo{
		Meters:  route.Routes[0].Distance,
		Seconds: route.Routes[0].Duration,
	}, nil
}

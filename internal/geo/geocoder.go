package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	gocache "github.com/patrickmn/go-cache"
)

// Point - пара координат в порядке хранения (долгота, широта)
type Point struct {
	Longitude float64
	Latitude  float64
}

// GeocodeResult - разрешенный адрес: координаты и форматированный адрес провайдера
type GeocodeResult struct {
	Point            Point
	FormattedAddress string
}

// nominatimResponse - формат ответа Nominatim /search
type nominatimResponse []struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocoder - клиент геокодирования поверх Nominatim-совместимого провайдера.
// Создается один раз на старте процесса и передается сервисам явно.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
}

// NewGeocoder создает клиент геокодирования с TTL-кэшем разрешенных адресов
func NewGeocoder(baseURL string, timeout, cacheTTL time.Duration) *Geocoder {
	return &Geocoder{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Resolve превращает текстовый адрес в координаты. Берется первый кандидат
// провайдера. Пустой список кандидатов - ErrNotFound, отказ вызова - ErrProvider.
func (g *Geocoder) Resolve(ctx context.Context, address string) (*GeocodeResult, error) {
	if cached, ok := g.cache.Get(address); ok {
		result := cached.(GeocodeResult)
		return &result, nil
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("accept-language", "en")

	reqURL := fmt.Sprintf("%s/search?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build geocode request: %v", models.ErrProvider, err)
	}
	req.Header.Set("User-Agent", "blood-donation-backend/1.0")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: geocode call failed: %v", models.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: geocoder returned status %d", models.ErrProvider, resp.StatusCode)
	}

	var candidates nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return nil, fmt.Errorf("%w: failed to decode geocoder response: %v", models.ErrProvider, err)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no geocoding candidates for address %q", models.ErrNotFound, address)
	}

	first := candidates[0]
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude %q in geocoder response", models.ErrProvider, first.Lon)
	}
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude %q in geocoder response", models.ErrProvider, first.Lat)
	}

	result := GeocodeResult{
		Point:            Point{Longitude: lon, Latitude: lat},
		FormattedAddress: first.DisplayName,
	}
	g.cache.Set(address, result, gocache.DefaultExpiration)

	return &result, nil
}

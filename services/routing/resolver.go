// Package routing resolves free-text place names to a driving distance using
// the OpenRouteService geocoding and directions APIs.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wanderhub/config"
	"wanderhub/utils"

	"go.uber.org/zap"
)

// ErrNoMatch is returned when the geocoder finds no candidate for a place
// name. Callers must reject the request with a recheck-your-input message,
// never treat it as zero distance.
var ErrNoMatch = errors.New("location not found")

// DistanceResolver turns two place names into a whole-kilometre driving
// distance.
type DistanceResolver interface {
	ResolveDistanceKm(ctx context.Context, origin, destination string) (int, error)
}

// ORSResolver implements DistanceResolver against OpenRouteService.
type ORSResolver struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewORSResolver builds a resolver from the application config.
func NewORSResolver() *ORSResolver {
	timeout := time.Duration(config.AppConfig.ORSTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ORSResolver{
		APIKey:  config.AppConfig.ORSAPIKey,
		BaseURL: config.AppConfig.ORSBaseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"features"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"` // meters
		} `json:"summary"`
	} `json:"routes"`
}

// ResolveDistanceKm geocodes both place names, requests a driving route and
// returns the route distance floored to whole kilometres. Any failed stage is
// an error; there is no retry.
func (r *ORSResolver) ResolveDistanceKm(ctx context.Context, origin, destination string) (int, error) {
	if origin == "" || destination == "" {
		return 0, ErrNoMatch
	}

	originLon, originLat, err := r.geocode(ctx, origin)
	if err != nil {
		return 0, err
	}
	destLon, destLat, err := r.geocode(ctx, destination)
	if err != nil {
		return 0, err
	}

	meters, err := r.route(ctx, [2]float64{originLon, originLat}, [2]float64{destLon, destLat})
	if err != nil {
		return 0, err
	}
	return int(meters / 1000), nil
}

func (r *ORSResolver) geocode(ctx context.Context, text string) (lon, lat float64, err error) {
	endpoint := fmt.Sprintf("%s/geocode/search?api_key=%s&text=%s",
		r.BaseURL, url.QueryEscape(r.APIKey), url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build geocode request: %w", err)
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(body.Features) == 0 || len(body.Features[0].Geometry.Coordinates) < 2 {
		utils.GetLogger().Debug("geocoder returned no match", zap.String("text", text))
		return 0, 0, ErrNoMatch
	}

	coords := body.Features[0].Geometry.Coordinates
	return coords[0], coords[1], nil
}

func (r *ORSResolver) route(ctx context.Context, origin, dest [2]float64) (meters float64, err error) {
	payload, err := json.Marshal(map[string]interface{}{
		"coordinates": [][2]float64{origin, dest},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal directions payload: %w", err)
	}

	endpoint := r.BaseURL + "/v2/directions/driving-car"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to build directions request: %w", err)
	}
	req.Header.Set("Authorization", r.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("directions request returned status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode directions response: %w", err)
	}
	if len(body.Routes) == 0 {
		return 0, ErrNoMatch
	}
	return body.Routes[0].Summary.Distance, nil
}

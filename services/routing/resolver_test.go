package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, handler http.Handler) *ORSResolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &ORSResolver{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Client:  srv.Client(),
	}
}

func geocodeBody(lon, lat string) string {
	return `{"features":[{"geometry":{"coordinates":[` + lon + `,` + lat + `]}}]}`
}

func TestResolveDistanceKmFloorsToWholeKilometres(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geocodeBody("79.86", "6.92")))
	})
	mux.HandleFunc("/v2/directions/driving-car", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"routes":[{"summary":{"distance":123999.0}}]}`))
	})
	resolver := newTestResolver(t, mux)

	km, err := resolver.ResolveDistanceKm(context.Background(), "Colombo", "Kandy")
	require.NoError(t, err)
	assert.Equal(t, 123, km, "partial kilometres are dropped, never rounded up")
}

func TestResolveDistanceKmNoGeocodeMatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	})
	resolver := newTestResolver(t, mux)

	_, err := resolver.ResolveDistanceKm(context.Background(), "Nowhereville", "Kandy")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolveDistanceKmDirectionsFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geocodeBody("79.86", "6.92")))
	})
	mux.HandleFunc("/v2/directions/driving-car", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	resolver := newTestResolver(t, mux)

	_, err := resolver.ResolveDistanceKm(context.Background(), "Colombo", "Kandy")
	assert.Error(t, err)
}

func TestResolveDistanceKmNoRoute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geocodeBody("79.86", "6.92")))
	})
	mux.HandleFunc("/v2/directions/driving-car", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes":[]}`))
	})
	resolver := newTestResolver(t, mux)

	_, err := resolver.ResolveDistanceKm(context.Background(), "Colombo", "Kandy")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolveDistanceKmRejectsEmptyInput(t *testing.T) {
	resolver := &ORSResolver{BaseURL: "http://unused", Client: http.DefaultClient}

	_, err := resolver.ResolveDistanceKm(context.Background(), "", "Kandy")
	assert.ErrorIs(t, err, ErrNoMatch)
}

package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func newTestPlacesService(nominatimBase string) *PlacesService {
	return &PlacesService{
		httpClient:    &http.Client{Timeout: 2 * time.Second},
		cache:         cache.New(5*time.Minute, 10*time.Minute),
		nominatimBase: nominatimBase,
	}
}

func TestSuggestCitiesShortQuery(t *testing.T) {
	svc := newTestPlacesService("http://127.0.0.1:0")

	if got := svc.SuggestCities(context.Background(), "p"); got != nil {
		t.Fatalf("queries under two characters should return nothing, got %v", got)
	}
	if got := svc.SuggestCities(context.Background(), "  "); got != nil {
		t.Fatalf("whitespace queries should return nothing, got %v", got)
	}
}

func TestSuggestCitiesFromProvider(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Query().Get("q") != "par" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"display_name": "Paris, France"},
			{"display_name": "Parma, Italy"},
		})
	}))
	defer server.Close()

	svc := newTestPlacesService(server.URL)

	got := svc.SuggestCities(context.Background(), "par")
	if len(got) != 2 || got[0] != "Paris, France" {
		t.Fatalf("unexpected suggestions: %v", got)
	}

	// Second identical lookup is served from the cache.
	svc.SuggestCities(context.Background(), "PAR")
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected one provider call, got %d", calls)
	}
}

func TestSuggestCitiesFallsBackToStaticList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := newTestPlacesService(server.URL)

	got := svc.SuggestCities(context.Background(), "lis")
	if len(got) != 1 || got[0] != "Lisbon, Portugal" {
		t.Fatalf("expected the static fallback match, got %v", got)
	}

	// Unknown names produce an empty answer, never an error.
	if got := svc.SuggestCities(context.Background(), "zzqq"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

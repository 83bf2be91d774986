package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Fallback pool served when neither lookup provider answers. Keeps the
// destination field usable offline.
var fallbackCities = []string{
	"Amsterdam, Netherlands",
	"Bangkok, Thailand",
	"Barcelona, Spain",
	"Berlin, Germany",
	"Dubai, United Arab Emirates",
	"Istanbul, Turkey",
	"Lisbon, Portugal",
	"London, United Kingdom",
	"Madrid, Spain",
	"New York, United States",
	"Paris, France",
	"Prague, Czech Republic",
	"Rome, Italy",
	"Singapore, Singapore",
	"Tokyo, Japan",
}

type PlacesServiceInterface interface {
	SuggestCities(ctx context.Context, query string) []string
}

type PlacesService struct {
	httpClient    *http.Client
	cache         *cache.Cache
	nominatimBase string
	rapidAPIKey   string
	rapidAPIHost  string
}

func NewPlacesService() PlacesServiceInterface {
	return &PlacesService{
		httpClient:    &http.Client{Timeout: 8 * time.Second},
		cache:         cache.New(5*time.Minute, 10*time.Minute),
		nominatimBase: "https://nominatim.openstreetmap.org",
		rapidAPIKey:   os.Getenv("RAPIDAPI_KEY"),
		rapidAPIHost:  "booking-com15.p.rapidapi.com",
	}
}

// SuggestCities resolves a partial city name to display names. Lookups are
// cached per normalized query and the method never fails: provider errors
// fall through to the next source, ending at the static list.
func (s *PlacesService) SuggestCities(ctx context.Context, query string) []string {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil
	}

	cacheKey := strings.ToLower(query)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]string)
	}

	cities := s.searchNominatim(ctx, query)
	if len(cities) == 0 {
		cities = s.searchRapidAPI(ctx, query)
	}
	if len(cities) == 0 {
		cities = filterFallback(query)
	}

	s.cache.Set(cacheKey, cities, cache.DefaultExpiration)
	return cities
}

func (s *PlacesService) searchNominatim(ctx context.Context, query string) []string {
	reqURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=6&featureType=city",
		s.nominatimBase, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", "nomadtrip/1.0")

	var results []struct {
		DisplayName string `json:"display_name"`
	}
	if err := s.getJSON(req, &results); err != nil {
		log.Printf("Nominatim lookup failed: %v", err)
		return nil
	}

	cities := make([]string, 0, len(results))
	for _, r := range results {
		if r.DisplayName != "" {
			cities = append(cities, r.DisplayName)
		}
	}
	return cities
}

func (s *PlacesService) searchRapidAPI(ctx context.Context, query string) []string {
	if s.rapidAPIKey == "" {
		return nil
	}

	reqURL := fmt.Sprintf("https://%s/api/v1/flights/searchDestination?query=%s",
		s.rapidAPIHost, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("x-rapidapi-key", s.rapidAPIKey)
	req.Header.Set("x-rapidapi-host", s.rapidAPIHost)

	var payload struct {
		Data []struct {
			CityName    string `json:"cityName"`
			CountryName string `json:"countryName"`
		} `json:"data"`
	}
	if err := s.getJSON(req, &payload); err != nil {
		log.Printf("RapidAPI destination lookup failed: %v", err)
		return nil
	}

	seen := make(map[string]bool)
	cities := make([]string, 0, len(payload.Data))
	for _, d := range payload.Data {
		if d.CityName == "" {
			continue
		}
		name := d.CityName
		if d.CountryName != "" {
			name += ", " + d.CountryName
		}
		if !seen[name] {
			seen[name] = true
			cities = append(cities, name)
		}
	}
	return cities
}

func (s *PlacesService) getJSON(req *http.Request, out any) error {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func filterFallback(query string) []string {
	lower := strings.ToLower(query)
	var matches []string
	for _, city := range fallbackCities {
		if strings.Contains(strings.ToLower(city), lower) {
			matches = append(matches, city)
		}
	}
	return matches
}

package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"nomadtrip/internal/models/response_models"
)

// TravelSearchInterface grounds option generation with real aggregator data.
// Results are advisory: no credentials or an upstream failure yields an empty
// list and the completion service fabricates plausible candidates instead.
type TravelSearchInterface interface {
	SearchFlights(ctx context.Context, from, to, date string, duration, adults int) ([]response_models.Flight, error)
	SearchHotels(ctx context.Context, destination, checkIn string, duration int, level string, adults int) ([]response_models.Hotel, error)
}

type TravelSearchClient struct {
	httpClient   *http.Client
	serpAPIKey   string
	serpBaseURL  string
	rapidAPIKey  string
	rapidAPIHost string
}

func NewTravelSearchClient(serpAPIKey, rapidAPIKey string) TravelSearchInterface {
	return &TravelSearchClient{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		serpAPIKey:   serpAPIKey,
		serpBaseURL:  "https://serpapi.com/search.json",
		rapidAPIKey:  rapidAPIKey,
		rapidAPIHost: "booking-com15.p.rapidapi.com",
	}
}

// AddDays shifts a YYYY-MM-DD date string by n days.
func AddDays(dateStr string, days int) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}

func (t *TravelSearchClient) SearchFlights(ctx context.Context, from, to, date string, duration, adults int) ([]response_models.Flight, error) {
	if t.serpAPIKey == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("engine", "google_flights")
	q.Set("departure_id", from)
	q.Set("arrival_id", to)
	q.Set("outbound_date", date)
	q.Set("return_date", AddDays(date, duration))
	q.Set("adults", fmt.Sprintf("%d", adults))
	q.Set("currency", "USD")
	q.Set("api_key", t.serpAPIKey)

	var payload struct {
		BestFlights []struct {
			Price         float64 `json:"price"`
			TotalDuration int     `json:"total_duration"`
			Flights       []struct {
				Airline      string `json:"airline"`
				FlightNumber string `json:"flight_number"`
				AirlineLogo  string `json:"airline_logo"`
				DepartureAirport struct {
					Time string `json:"time"`
				} `json:"departure_airport"`
				ArrivalAirport struct {
					Time string `json:"time"`
				} `json:"arrival_airport"`
			} `json:"flights"`
		} `json:"best_flights"`
	}

	if err := t.getJSON(ctx, t.serpBaseURL+"?"+q.Encode(), nil, &payload); err != nil {
		return nil, err
	}

	var flights []response_models.Flight
	for i, item := range payload.BestFlights {
		if len(item.Flights) == 0 {
			continue
		}
		first := item.Flights[0]
		last := item.Flights[len(item.Flights)-1]
		flights = append(flights, response_models.Flight{
			ID:            fmt.Sprintf("ext-f%d", i+1),
			Airline:       first.Airline,
			FlightNumber:  first.FlightNumber,
			DepartureTime: first.DepartureAirport.Time,
			ArrivalTime:   last.ArrivalAirport.Time,
			Price:         item.Price,
			Duration:      fmt.Sprintf("%dh %dm", item.TotalDuration/60, item.TotalDuration%60),
			LogoURL:       first.AirlineLogo,
		})
		if len(flights) >= 5 {
			break
		}
	}
	return flights, nil
}

func (t *TravelSearchClient) SearchHotels(ctx context.Context, destination, checkIn string, duration int, level string, adults int) ([]response_models.Hotel, error) {
	if t.rapidAPIKey == "" {
		return nil, nil
	}

	destID, err := t.lookupDestinationID(ctx, destination)
	if err != nil || destID == "" {
		return nil, err
	}

	q := url.Values{}
	q.Set("dest_id", destID)
	q.Set("search_type", "CITY")
	q.Set("arrival_date", checkIn)
	q.Set("departure_date", AddDays(checkIn, duration))
	q.Set("adults", fmt.Sprintf("%d", adults))
	q.Set("room_qty", "1")
	q.Set("currency_code", "USD")
	switch level {
	case "budget":
		q.Set("sort_by", "price")
	case "premium":
		q.Set("sort_by", "class_descending")
	}

	endpoint := fmt.Sprintf("https://%s/api/v1/hotels/searchHotels?%s", t.rapidAPIHost, q.Encode())

	var payload struct {
		Data []struct {
			HotelName   string  `json:"hotel_name"`
			Class       int     `json:"class"`
			ReviewScore float64 `json:"review_score"`
			Address     string  `json:"address"`
			MainPhoto   string  `json:"main_photo_url"`
			Breakdown   struct {
				GrossAmount struct {
					Value float64 `json:"value"`
				} `json:"gross_amount"`
				GrossPerNight struct {
					Value float64 `json:"value"`
				} `json:"gross_amount_per_night"`
			} `json:"composite_price_breakdown"`
		} `json:"data"`
	}

	if err := t.getJSON(ctx, endpoint, t.rapidHeaders(), &payload); err != nil {
		return nil, err
	}

	var hotels []response_models.Hotel
	for i, h := range payload.Data {
		perNight := h.Breakdown.GrossPerNight.Value
		if perNight == 0 {
			perNight = 150
		}
		total := h.Breakdown.GrossAmount.Value
		if total == 0 {
			total = perNight * float64(duration)
		}
		stars := h.Class
		if stars == 0 {
			stars = 3
		}
		hotels = append(hotels, response_models.Hotel{
			ID:            fmt.Sprintf("ext-h%d", i+1),
			Name:          h.HotelName,
			Stars:         stars,
			Rating:        h.ReviewScore,
			Address:       h.Address,
			PricePerNight: perNight,
			TotalPrice:    total,
			ImageURL:      h.MainPhoto,
			Description:   fmt.Sprintf("Located in %s, this property offers a comfortable stay.", destination),
		})
		if len(hotels) >= 8 {
			break
		}
	}
	return hotels, nil
}

func (t *TravelSearchClient) lookupDestinationID(ctx context.Context, city string) (string, error) {
	endpoint := fmt.Sprintf("https://%s/api/v1/hotels/searchDestination?query=%s",
		t.rapidAPIHost, url.QueryEscape(city))

	var payload struct {
		Data []struct {
			DestID   string `json:"dest_id"`
			DestType string `json:"dest_type"`
		} `json:"data"`
	}
	if err := t.getJSON(ctx, endpoint, t.rapidHeaders(), &payload); err != nil {
		return "", err
	}
	for _, d := range payload.Data {
		if d.DestType == "city" {
			return d.DestID, nil
		}
	}
	return "", nil
}

func (t *TravelSearchClient) rapidHeaders() map[string]string {
	return map[string]string{
		"x-rapidapi-key":  t.rapidAPIKey,
		"x-rapidapi-host": t.rapidAPIHost,
	}
}

func (t *TravelSearchClient) getJSON(ctx context.Context, endpoint string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("aggregator returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

package controllers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fixedPlaces struct{ cities []string }

func (f fixedPlaces) SuggestCities(ctx context.Context, query string) []string {
	return f.cities
}

func newPlacesRouter(cities []string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/places/suggest", NewPlacesController(fixedPlaces{cities: cities}).SuggestHandler)
	return r
}

func TestSuggestEchoesSeqToken(t *testing.T) {
	r := newPlacesRouter([]string{"Paris, France"})

	w, envelope := doRequest(t, r, http.MethodGet, "/places/suggest?q=par&seq=42", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data, _ := envelope.Data.(map[string]interface{})
	if seq, _ := data["seq"].(float64); seq != 42 {
		t.Fatalf("seq token not echoed: %+v", envelope.Data)
	}
	if query, _ := data["query"].(string); query != "par" {
		t.Fatalf("query not echoed: %+v", envelope.Data)
	}
}

func TestSuggestEchoesZeroSeq(t *testing.T) {
	r := newPlacesRouter(nil)

	// Zero is a legal first token and must appear in the body.
	w, _ := doRequest(t, r, http.MethodGet, "/places/suggest?q=ab&seq=0", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"seq":0`) {
		t.Fatalf("seq 0 missing from body: %s", w.Body.String())
	}
}

func TestSuggestRejectsNonNumericSeq(t *testing.T) {
	r := newPlacesRouter(nil)

	w, envelope := doRequest(t, r, http.MethodGet, "/places/suggest?q=ab&seq=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if envelope.Status != "error" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nomadtrip/internal/models/response_models"
	"nomadtrip/internal/services"
	"nomadtrip/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{
		placesService: placesService,
	}
}

// SuggestHandler echoes the caller's seq token back unchanged so a client
// firing overlapping lookups can discard answers to superseded queries.
// A missing or non-numeric token is rejected rather than folded into 0,
// which is a legal token value.
func (p *PlacesController) SuggestHandler(c *gin.Context) {
	query := c.Query("q")

	seq := 0
	if raw := c.Query("seq"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "seq must be an integer")
			return
		}
		seq = parsed
	}

	cities := p.placesService.SuggestCities(c.Request.Context(), query)

	utils.RespondSuccess(c, response_models.CitySuggestions{
		Seq:    seq,
		Query:  query,
		Cities: cities,
	}, "City suggestions fetched")
}

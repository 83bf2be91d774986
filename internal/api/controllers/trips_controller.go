package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomadtrip/internal/models/request_models"
	"nomadtrip/internal/services"
	"nomadtrip/pkg/utils"
)

type TripsController struct {
	optionsService services.TripOptionsServiceInterface
	builderService services.TripBuilderServiceInterface
}

func NewTripsController(
	optionsService services.TripOptionsServiceInterface,
	builderService services.TripBuilderServiceInterface,
) *TripsController {
	return &TripsController{
		optionsService: optionsService,
		builderService: builderService,
	}
}

func (t *TripsController) GenerateHandler(c *gin.Context) {
	var req request_models.TripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := t.optionsService.GenerateOptions(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Trip options generated successfully")
}

func (t *TripsController) ChooseFlightHandler(c *gin.Context) {
	var req request_models.ChooseFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "flight_id is required")
		return
	}

	state, err := t.builderService.ChooseFlight(c.Param("sessionId"), req.FlightID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Flight selected")
}

func (t *TripsController) ChooseHotelHandler(c *gin.Context) {
	var req request_models.ChooseHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "hotel_id is required")
		return
	}

	state, err := t.builderService.ChooseHotel(c.Param("sessionId"), req.HotelID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Hotel selected")
}

func (t *TripsController) ToggleActivityHandler(c *gin.Context) {
	var req request_models.ToggleActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "activity_id is required")
		return
	}

	state, err := t.builderService.ToggleActivity(c.Param("sessionId"), req.ActivityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Activity toggled")
}

func (t *TripsController) AdvanceHandler(c *gin.Context) {
	state, err := t.builderService.Advance(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Moved to next stage")
}

func (t *TripsController) GetStateHandler(c *gin.Context) {
	state, err := t.builderService.GetState(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Session state fetched")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomadtrip/internal/models/request_models"
	"nomadtrip/internal/services"
	"nomadtrip/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Book the current trip selection
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), userID, req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Trip booked successfully")
}

// ListBookings godoc
// @Summary List the authenticated user's bookings
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookings, err := b.bookingService.ListBookings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched")
}

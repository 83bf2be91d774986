package booking_fx

import (
	"go.uber.org/fx"

	"nomadtrip/internal/api/controllers"
	"nomadtrip/internal/services"
)

var Module = fx.Provide(
	services.NewBookingService,
	controllers.NewBookingController)

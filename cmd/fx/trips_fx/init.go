package trips_fx

import (
	"go.uber.org/fx"

	"nomadtrip/internal/api/controllers"
	"nomadtrip/internal/services"
)

var Module = fx.Provide(
	services.NewTripOptionsService,
	services.NewTripBuilderService,
	services.NewAssistantService,
	controllers.NewTripsController,
	controllers.NewAssistantController)

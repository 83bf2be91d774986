package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"nomadtrip/cmd/fx/account_fx"
	"nomadtrip/cmd/fx/booking_fx"
	"nomadtrip/cmd/fx/llm_fx"
	"nomadtrip/cmd/fx/places_fx"
	"nomadtrip/cmd/fx/session_fx"
	"nomadtrip/cmd/fx/store_fx"
	"nomadtrip/cmd/fx/trips_fx"
	"nomadtrip/internal/api/controllers"
	"nomadtrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		llm_fx.Module,
		session_fx.Module,
		store_fx.Module,
		trips_fx.Module,
		booking_fx.Module,
		account_fx.Module,
		places_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	assistantController *controllers.AssistantController,
	bookingController *controllers.BookingController,
	accountController *controllers.AccountController,
	placesController *controllers.PlacesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripsController, assistantController, bookingController, accountController, placesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	assistantController *controllers.AssistantController,
	bookingController *controllers.BookingController,
	accountController *controllers.AccountController,
	placesController *controllers.PlacesController) {

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("/generate", tripsController.GenerateHandler)
	tripsGroup.GET("/:sessionId", tripsController.GetStateHandler)
	tripsGroup.POST("/:sessionId/flight", tripsController.ChooseFlightHandler)
	tripsGroup.POST("/:sessionId/hotel", tripsController.ChooseHotelHandler)
	tripsGroup.POST("/:sessionId/activities/toggle", tripsController.ToggleActivityHandler)
	tripsGroup.POST("/:sessionId/advance", tripsController.AdvanceHandler)
	tripsGroup.POST("/:sessionId/assistant", assistantController.SendMessageHandler)
	tripsGroup.POST("/:sessionId/assistant/apply", assistantController.ApplySuggestionHandler)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	bookingsGroup := r.Group("/bookings")
	bookingsGroup.Use(middleware.JWTAuthMiddleware())
	bookingsGroup.POST("", bookingController.CreateBooking)
	bookingsGroup.GET("", bookingController.ListBookings)

	placesGroup := r.Group("/places")
	placesGroup.GET("/suggest", placesController.SuggestHandler)
}

package main

import (
	"github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/handler"
	"github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/repository"
	"github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/service"
	"github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/validator"
	"github.com/Akashajay-dot/Velocity-pro-audio/internal/events"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/app"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/config"
)

const ServiceName = "bookings-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting booking intake service")
	bookingService, publisher := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
	)
	if publisher != nil {
		serverApp.OnShutdown(func() {
			if err := publisher.Close(); err != nil {
				cfg.Log.Error("Failed to close event publisher", "error", err)
			}
		})
	}
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.BookingService, *events.Publisher) {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)

	var publisher *events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
		cfg.Log.Info("Booking event publishing enabled", "topic", cfg.KafkaTopic)
	}

	bookingService := service.NewBookingService(
		bookingRepo,
		bookingValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.DatabaseName)
	return bookingService, publisher
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airportbooking/api"
	"github.com/Domenick1991/airportbooking/config"
	"github.com/Domenick1991/airportbooking/internal/bootstrap"
	"github.com/Domenick1991/airportbooking/internal/cache"
	"github.com/Domenick1991/airportbooking/internal/kafka"
	"github.com/Domenick1991/airportbooking/internal/logger"
	"github.com/Domenick1991/airportbooking/internal/repository"
	"github.com/Domenick1991/airportbooking/internal/service/airports"
	"github.com/Domenick1991/airportbooking/internal/service/booking"
	"github.com/Domenick1991/airportbooking/internal/service/flights"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := repository.NewMemoryStore()

	flightOpts := []flights.FlightServiceOption{
		flights.WithPricing(flights.Pricing{BaseFare: cfg.Pricing.BaseFare, PerBooking: cfg.Pricing.PerBooking}),
	}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
		defer redisCache.Close()
		// Flights live in memory only, so anything cached by a previous run is stale.
		if err := redisCache.InvalidateFlights(ctx); err != nil {
			lg.Warn("redis unavailable, flight cache disabled", zap.Error(err))
		} else {
			flightOpts = append(flightOpts, flights.WithCache(redisCache))
		}
	}
	flightService := flights.NewFlightService(store, store, lg, flightOpts...)

	var bookingOpts []booking.BookingServiceOption
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, lg)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			lg.Warn("kafka check failed, events may be dropped", zap.Error(err))
		}
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}
	bookingService := booking.NewBookingService(store, store, flightService, lg, bookingOpts...)
	airportService := airports.NewAirportService(store, store, store, lg)

	if err := bootstrap.Run(ctx, cfg, lg,
		api.NewAirportHandler(airportService),
		api.NewFlightHandler(flightService),
		api.NewBookingHandler(bookingService),
		api.NewDocsHandler(),
	); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
}

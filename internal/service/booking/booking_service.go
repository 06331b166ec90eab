package booking

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/kafka"
	"github.com/Domenick1991/airportbooking/internal/metrics"
	"github.com/Domenick1991/airportbooking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	opBook   = "book"
	opCancel = "cancel"
)

type BookingUseCase interface {
	AddPassenger(ctx context.Context, passenger domain.Passenger) error
	// BookTicket reports false when the flight or passenger is unknown, the
	// flight is full, or the passenger already holds a seat on it.
	BookTicket(ctx context.Context, flightID, passengerID int) (bool, error)
	// CancelTicket reports false when the flight or passenger is unknown or
	// the passenger holds no seat on it.
	CancelTicket(ctx context.Context, flightID, passengerID int) (bool, error)
	CountBookingsForPassenger(ctx context.Context, passengerID int) (int, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FareCalculator interface {
	CalculateFare(ctx context.Context, flightID int) (int, error)
}

type BookingService struct {
	passengers         repository.PassengerRepository
	bookings           repository.BookingRepository
	fares              FareCalculator
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	logger             *zap.Logger
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	passengers repository.PassengerRepository,
	bookings repository.BookingRepository,
	fares FareCalculator,
	logger *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		passengers: passengers,
		bookings:   bookings,
		fares:      fares,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) AddPassenger(ctx context.Context, passenger domain.Passenger) error {
	if err := s.passengers.SavePassenger(ctx, passenger); err != nil {
		return err
	}
	metrics.EntitiesAdded.WithLabelValues("passenger").Inc()
	return nil
}

func (s *BookingService) BookTicket(ctx context.Context, flightID, passengerID int) (bool, error) {
	err := s.bookings.Book(ctx, flightID, passengerID)
	ok, err := s.outcome(opBook, err, flightID, passengerID)
	if !ok || err != nil {
		return false, err
	}
	s.publish(ctx, kafka.EventTicketBooked, flightID, passengerID)
	return true, nil
}

func (s *BookingService) CancelTicket(ctx context.Context, flightID, passengerID int) (bool, error) {
	err := s.bookings.Cancel(ctx, flightID, passengerID)
	ok, err := s.outcome(opCancel, err, flightID, passengerID)
	if !ok || err != nil {
		return false, err
	}
	s.publish(ctx, kafka.EventTicketCancelled, flightID, passengerID)
	return true, nil
}

func (s *BookingService) CountBookingsForPassenger(ctx context.Context, passengerID int) (int, error) {
	bookings, err := s.bookings.Bookings(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, passengers := range bookings {
		if slices.Contains(passengers, passengerID) {
			count++
		}
	}
	return count, nil
}

// outcome maps store sentinels to a failed operation; any other error is returned.
func (s *BookingService) outcome(op string, err error, flightID, passengerID int) (bool, error) {
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrFlightNotFound):
		result = "flight_not_found"
	case errors.Is(err, repository.ErrPassengerNotFound):
		result = "passenger_not_found"
	case errors.Is(err, repository.ErrFlightFull):
		result = "flight_full"
	case errors.Is(err, repository.ErrAlreadyBooked):
		result = "already_booked"
	case errors.Is(err, repository.ErrNoBookings):
		result = "no_bookings"
	case errors.Is(err, repository.ErrNotBooked):
		result = "not_booked"
	default:
		metrics.TicketOperations.WithLabelValues(op, "error").Inc()
		return false, err
	}

	metrics.TicketOperations.WithLabelValues(op, result).Inc()
	if err != nil {
		s.logger.Info("ticket operation rejected",
			zap.String("operation", op),
			zap.Int("flight_id", flightID),
			zap.Int("passenger_id", passengerID),
			zap.String("reason", result),
		)
		return false, nil
	}
	return true, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, flightID, passengerID int) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}

	fare, err := s.fares.CalculateFare(ctx, flightID)
	if err != nil {
		s.logger.Warn("calculate fare for event", zap.Int("flight_id", flightID), zap.Error(err))
	}
	event := kafka.BookingEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		FlightID:    flightID,
		PassengerID: passengerID,
		Fare:        fare,
		OccurredAt:  s.now().UTC(),
	}
	key := strconv.Itoa(flightID)

	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		s.logger.Warn("publish booking event", zap.String("type", eventType), zap.Error(err))
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			s.logger.Warn("publish notification event", zap.String("type", eventType), zap.Error(err))
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)

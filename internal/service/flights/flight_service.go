package flights

import (
	"context"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/metrics"
	"github.com/Domenick1991/airportbooking/internal/repository"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	AddFlight(ctx context.Context, flight domain.Flight) error
	List(ctx context.Context) ([]domain.Flight, error)
	// ShortestDuration returns -1 when no flight serves the city pair.
	ShortestDuration(ctx context.Context, from, to domain.City) (float64, error)
	CalculateFare(ctx context.Context, flightID int) (int, error)
	CalculateRevenue(ctx context.Context, flightID int) (int, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

// Pricing is linear in the number of bookings on a flight.
type Pricing struct {
	BaseFare   int
	PerBooking int
}

func DefaultPricing() Pricing {
	return Pricing{BaseFare: 3000, PerBooking: 50}
}

func (p Pricing) Fare(bookings int) int {
	return p.BaseFare + p.PerBooking*bookings
}

func (p Pricing) Revenue(bookings int) int {
	return p.PerBooking * bookings
}

type FlightService struct {
	flights  repository.FlightRepository
	bookings repository.BookingRepository
	cache    FlightCache
	pricing  Pricing
	logger   *zap.Logger
}

type FlightServiceOption func(*FlightService)

func WithCache(cache FlightCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithPricing(p Pricing) FlightServiceOption {
	return func(s *FlightService) {
		s.pricing = p
	}
}

func NewFlightService(
	flights repository.FlightRepository,
	bookings repository.BookingRepository,
	logger *zap.Logger,
	opts ...FlightServiceOption,
) *FlightService {
	service := &FlightService{
		flights:  flights,
		bookings: bookings,
		pricing:  DefaultPricing(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FlightService) AddFlight(ctx context.Context, flight domain.Flight) error {
	if err := s.flights.AddFlight(ctx, flight); err != nil {
		return err
	}
	metrics.EntitiesAdded.WithLabelValues("flight").Inc()
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			s.logger.Warn("invalidate flights cache", zap.Error(err))
		}
	}
	return nil
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn("read flights cache", zap.Error(err))
		}
	}

	flights, err := s.flights.ListFlights(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) ShortestDuration(ctx context.Context, from, to domain.City) (float64, error) {
	flights, err := s.flights.ListFlights(ctx)
	if err != nil {
		return 0, err
	}

	shortest, found := -1.0, false
	for _, f := range flights {
		if f.FromCity != from || f.ToCity != to {
			continue
		}
		if !found || f.Duration < shortest {
			shortest, found = f.Duration, true
		}
	}
	return shortest, nil
}

func (s *FlightService) CalculateFare(ctx context.Context, flightID int) (int, error) {
	count, err := s.bookings.BookingCount(ctx, flightID)
	if err != nil {
		return 0, err
	}
	return s.pricing.Fare(count), nil
}

func (s *FlightService) CalculateRevenue(ctx context.Context, flightID int) (int, error) {
	count, err := s.bookings.BookingCount(ctx, flightID)
	if err != nil {
		return 0, err
	}
	return s.pricing.Revenue(count), nil
}

var _ FlightUseCase = (*FlightService)(nil)

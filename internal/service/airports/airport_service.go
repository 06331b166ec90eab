package airports

import (
	"context"
	"errors"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/metrics"
	"github.com/Domenick1991/airportbooking/internal/repository"
	"go.uber.org/zap"
)

type AirportUseCase interface {
	AddAirport(ctx context.Context, airport domain.Airport) error
	// LargestAirport returns "" when no airports exist.
	LargestAirport(ctx context.Context) (string, error)
	// OriginAirportName returns "" when the flight or its origin airport is unknown.
	OriginAirportName(ctx context.Context, flightID int) (string, error)
	PeopleOnDate(ctx context.Context, date domain.Date, airportName string) (int, error)
}

type AirportService struct {
	airports repository.AirportRepository
	flights  repository.FlightRepository
	bookings repository.BookingRepository
	logger   *zap.Logger
}

func NewAirportService(
	airports repository.AirportRepository,
	flights repository.FlightRepository,
	bookings repository.BookingRepository,
	logger *zap.Logger,
) *AirportService {
	return &AirportService{
		airports: airports,
		flights:  flights,
		bookings: bookings,
		logger:   logger,
	}
}

func (s *AirportService) AddAirport(ctx context.Context, airport domain.Airport) error {
	if err := s.airports.SaveAirport(ctx, airport); err != nil {
		return err
	}
	metrics.EntitiesAdded.WithLabelValues("airport").Inc()
	return nil
}

func (s *AirportService) LargestAirport(ctx context.Context) (string, error) {
	list, err := s.airports.ListAirports(ctx)
	if err != nil {
		return "", err
	}

	var best *domain.Airport
	for i := range list {
		a := &list[i]
		if best == nil ||
			a.NoOfTerminals > best.NoOfTerminals ||
			(a.NoOfTerminals == best.NoOfTerminals && a.Name < best.Name) {
			best = a
		}
	}
	if best == nil {
		return "", nil
	}
	return best.Name, nil
}

// OriginAirportName uses the origin city's name as the airport key.
func (s *AirportService) OriginAirportName(ctx context.Context, flightID int) (string, error) {
	flight, err := s.flights.FindFlight(ctx, flightID)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return "", nil
		}
		return "", err
	}

	airport, err := s.airports.GetAirport(ctx, string(flight.FromCity))
	if err != nil {
		if errors.Is(err, repository.ErrAirportNotFound) {
			return "", nil
		}
		return "", err
	}
	return airport.Name, nil
}

// PeopleOnDate counts distinct passengers booked on any flight departing on
// date. airportName does not narrow the count.
func (s *AirportService) PeopleOnDate(ctx context.Context, date domain.Date, airportName string) (int, error) {
	flights, err := s.flights.ListFlights(ctx)
	if err != nil {
		return 0, err
	}
	bookings, err := s.bookings.Bookings(ctx)
	if err != nil {
		return 0, err
	}

	departing := make(map[int]struct{})
	for _, f := range flights {
		if f.FlightDate.SameDay(date) {
			departing[f.ID] = struct{}{}
		}
	}

	people := make(map[int]struct{})
	for flightID, passengers := range bookings {
		if _, ok := departing[flightID]; !ok {
			continue
		}
		for _, id := range passengers {
			people[id] = struct{}{}
		}
	}

	s.logger.Debug("people on date",
		zap.Stringer("date", date),
		zap.String("airport", airportName),
		zap.Int("count", len(people)),
	)
	return len(people), nil
}

var _ AirportUseCase = (*AirportService)(nil)

package api

import (
	"context"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockAirportUseCase is a mock implementation of airports.AirportUseCase
type MockAirportUseCase struct {
	mock.Mock
}

func (m *MockAirportUseCase) AddAirport(ctx context.Context, airport domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportUseCase) LargestAirport(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAirportUseCase) OriginAirportName(ctx context.Context, flightID int) (string, error) {
	args := m.Called(ctx, flightID)
	return args.String(0), args.Error(1)
}

func (m *MockAirportUseCase) PeopleOnDate(ctx context.Context, date domain.Date, airportName string) (int, error) {
	args := m.Called(ctx, date, airportName)
	return args.Int(0), args.Error(1)
}

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) AddFlight(ctx context.Context, flight domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) ShortestDuration(ctx context.Context, from, to domain.City) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockFlightUseCase) CalculateFare(ctx context.Context, flightID int) (int, error) {
	args := m.Called(ctx, flightID)
	return args.Int(0), args.Error(1)
}

func (m *MockFlightUseCase) CalculateRevenue(ctx context.Context, flightID int) (int, error) {
	args := m.Called(ctx, flightID)
	return args.Int(0), args.Error(1)
}

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) AddPassenger(ctx context.Context, passenger domain.Passenger) error {
	args := m.Called(ctx, passenger)
	return args.Error(0)
}

func (m *MockBookingUseCase) BookTicket(ctx context.Context, flightID, passengerID int) (bool, error) {
	args := m.Called(ctx, flightID, passengerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingUseCase) CancelTicket(ctx context.Context, flightID, passengerID int) (bool, error) {
	args := m.Called(ctx, flightID, passengerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingUseCase) CountBookingsForPassenger(ctx context.Context, passengerID int) (int, error) {
	args := m.Called(ctx, passengerID)
	return args.Int(0), args.Error(1)
}

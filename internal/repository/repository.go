package repository

import (
	"context"

	"github.com/Domenick1991/airportbooking/internal/domain"
)

type AirportRepository interface {
	SaveAirport(ctx context.Context, airport domain.Airport) error
	GetAirport(ctx context.Context, name string) (*domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
}

type FlightRepository interface {
	AddFlight(ctx context.Context, flight domain.Flight) error
	FindFlight(ctx context.Context, id int) (*domain.Flight, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
}

type PassengerRepository interface {
	SavePassenger(ctx context.Context, passenger domain.Passenger) error
	GetPassenger(ctx context.Context, id int) (*domain.Passenger, error)
}

type BookingRepository interface {
	Book(ctx context.Context, flightID, passengerID int) error
	Cancel(ctx context.Context, flightID, passengerID int) error
	BookingCount(ctx context.Context, flightID int) (int, error)
	// Bookings returns a copy of the flight id -> passenger ids relation.
	Bookings(ctx context.Context) (map[int][]int, error)
}

package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/Domenick1991/airportbooking/internal/domain"
)

// MemoryStore owns airports, flights, passengers and per-flight booking lists.
// A single mutex serializes every operation across all four collections.
type MemoryStore struct {
	mu         sync.Mutex
	airports   map[string]domain.Airport
	flights    []domain.Flight
	passengers map[int]domain.Passenger
	bookings   map[int][]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		airports:   make(map[string]domain.Airport),
		passengers: make(map[int]domain.Passenger),
		bookings:   make(map[int][]int),
	}
}

func (s *MemoryStore) SaveAirport(_ context.Context, airport domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.airports[airport.Name] = airport
	return nil
}

func (s *MemoryStore) GetAirport(_ context.Context, name string) (*domain.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.airports[name]
	if !ok {
		return nil, ErrAirportNotFound
	}
	return &a, nil
}

func (s *MemoryStore) ListAirports(_ context.Context) ([]domain.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	airports := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		airports = append(airports, a)
	}
	return airports, nil
}

func (s *MemoryStore) AddFlight(_ context.Context, flight domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = append(s.flights, flight)
	return nil
}

func (s *MemoryStore) FindFlight(_ context.Context, id int) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.findFlight(id)
	if !ok {
		return nil, ErrFlightNotFound
	}
	return &f, nil
}

func (s *MemoryStore) ListFlights(_ context.Context) ([]domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.flights), nil
}

func (s *MemoryStore) SavePassenger(_ context.Context, passenger domain.Passenger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passengers[passenger.ID] = passenger
	return nil
}

func (s *MemoryStore) GetPassenger(_ context.Context, id int) (*domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.passengers[id]
	if !ok {
		return nil, ErrPassengerNotFound
	}
	return &p, nil
}

// Book appends passengerID to the flight's booking list. Capacity comes from
// the first flight registered under flightID.
func (s *MemoryStore) Book(_ context.Context, flightID, passengerID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.findFlight(flightID)
	if !ok {
		return ErrFlightNotFound
	}
	if _, ok := s.passengers[passengerID]; !ok {
		return ErrPassengerNotFound
	}
	booked := s.bookings[flightID]
	if len(booked) >= flight.MaxCapacity {
		return ErrFlightFull
	}
	if slices.Contains(booked, passengerID) {
		return ErrAlreadyBooked
	}
	s.bookings[flightID] = append(booked, passengerID)
	return nil
}

// Cancel removes one occurrence of passengerID from the flight's booking list.
func (s *MemoryStore) Cancel(_ context.Context, flightID, passengerID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findFlight(flightID); !ok {
		return ErrFlightNotFound
	}
	if _, ok := s.passengers[passengerID]; !ok {
		return ErrPassengerNotFound
	}
	booked, ok := s.bookings[flightID]
	if !ok {
		return ErrNoBookings
	}
	i := slices.Index(booked, passengerID)
	if i < 0 {
		return ErrNotBooked
	}
	s.bookings[flightID] = slices.Delete(booked, i, i+1)
	return nil
}

func (s *MemoryStore) BookingCount(_ context.Context, flightID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings[flightID]), nil
}

func (s *MemoryStore) Bookings(_ context.Context) (map[int][]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int][]int, len(s.bookings))
	for id, passengers := range s.bookings {
		out[id] = slices.Clone(passengers)
	}
	return out, nil
}

func (s *MemoryStore) findFlight(id int) (domain.Flight, bool) {
	for _, f := range s.flights {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Flight{}, false
}

var (
	_ AirportRepository   = (*MemoryStore)(nil)
	_ FlightRepository    = (*MemoryStore)(nil)
	_ PassengerRepository = (*MemoryStore)(nil)
	_ BookingRepository   = (*MemoryStore)(nil)
)

package repository

import "errors"

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrAirportNotFound   = errors.New("airport not found")
	ErrFlightFull        = errors.New("flight is at capacity")
	ErrAlreadyBooked     = errors.New("passenger already booked on flight")
	ErrNoBookings        = errors.New("flight has no bookings")
	ErrNotBooked         = errors.New("passenger not booked on flight")
)

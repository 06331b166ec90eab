package notify

import (
	"context"

	"github.com/Domenick1991/airportbooking/internal/kafka"
	"go.uber.org/zap"
)

// Sender delivers passenger notifications for booking events. Delivery is a
// structured log line.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.logger.Info("notify passenger",
		zap.String("event_id", event.ID),
		zap.String("type", event.Type),
		zap.Int("flight_id", event.FlightID),
		zap.Int("passenger_id", event.PassengerID),
		zap.Int("fare", event.Fare),
	)
	return nil
}

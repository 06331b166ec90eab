package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// TicketOperations counts book/cancel attempts by operation and result.
var TicketOperations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "airport_booking_ticket_operations_total",
		Help: "Total number of ticket operations by operation and result",
	},
	[]string{"operation", "result"},
)

// EntitiesAdded counts airports, flights and passengers registered.
var EntitiesAdded = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "airport_booking_entities_added_total",
		Help: "Total number of airports, flights and passengers added",
	},
	[]string{"entity"},
)

func init() {
	prometheus.MustRegister(TicketOperations, EntitiesAdded)
}

package domain

// Flight ids are not unique; lookups take the first match in insertion order.
type Flight struct {
	ID          int     `json:"flightId"`
	FromCity    City    `json:"fromCity"`
	ToCity      City    `json:"toCity"`
	MaxCapacity int     `json:"maxCapacity"`
	FlightDate  Date    `json:"flightDate"`
	Duration    float64 `json:"duration"`
}

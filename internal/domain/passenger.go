package domain

type Passenger struct {
	ID    int    `json:"passengerId"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Age   int    `json:"age,omitempty"`
}

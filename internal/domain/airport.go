package domain

type Airport struct {
	Name          string `json:"airportName"`
	NoOfTerminals int    `json:"noOfTerminals"`
	City          City   `json:"city"`
}

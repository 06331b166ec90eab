package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type City string

const (
	CityAgra       City = "AGRA"
	CityBanglore   City = "BANGLORE"
	CityChandigarh City = "CHANDIGARH"
	CityChennai    City = "CHENNAI"
	CityDelhi      City = "DELHI"
	CityHyderabad  City = "HYDERABAD"
	CityJaipur     City = "JAIPUR"
	CityKanpur     City = "KANPUR"
	CityKolkata    City = "KOLKATA"
	CityMumbai     City = "MUMBAI"
	CityPatna      City = "PATNA"
)

var cities = map[City]struct{}{
	CityAgra:       {},
	CityBanglore:   {},
	CityChandigarh: {},
	CityChennai:    {},
	CityDelhi:      {},
	CityHyderabad:  {},
	CityJaipur:     {},
	CityKanpur:     {},
	CityKolkata:    {},
	CityMumbai:     {},
	CityPatna:      {},
}

// ParseCity is case-insensitive and rejects names outside the known set.
func ParseCity(s string) (City, error) {
	c := City(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := cities[c]; !ok {
		return "", fmt.Errorf("unknown city %q", s)
	}
	return c, nil
}

func (c *City) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCity(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

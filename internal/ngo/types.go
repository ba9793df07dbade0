package ngo

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Coordinate is a latitude or longitude value. The dataset mixes JSON numbers
// and numeric strings, so both decode to the same float.
type Coordinate float64

// UnmarshalJSON accepts either a JSON number or a numeric string.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*c = Coordinate(v)
	return nil
}

// Volunteer is the contact person attached to an organization in the dataset.
type Volunteer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Organization is one NGO record from the city-keyed dataset.
// Records are read-only for the lifetime of the process.
type Organization struct {
	ID        string     `json:"organization_id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	Latitude  Coordinate `json:"latitude"`
	Longitude Coordinate `json:"longitude"`
	Volunteer *Volunteer `json:"volunteer,omitempty"`
}

// OrganizationSummary is one row of the flat all-cities listing.
type OrganizationSummary struct {
	City string `json:"city"`
	ID   string `json:"organization_id"`
	Name string `json:"name"`
}

// NearestResult is the response body for a nearest-organization query.
// DistanceKm is null when the index is empty and the fallback city was used.
type NearestResult struct {
	City          string         `json:"city"`
	DistanceKm    *float64       `json:"distance_km"`
	Organizations []Organization `json:"organizations"`
}

// CityOrganizations is the response body for a by-city listing.
type CityOrganizations struct {
	City          string         `json:"city"`
	Organizations []Organization `json:"organizations"`
}

// UnknownCityResponse is the 404 body for a by-city listing, carrying the
// cities the caller could have asked for.
type UnknownCityResponse struct {
	Error       string   `json:"error"`
	KnownCities []string `json:"known_cities"`
}

// CitiesResponse is the response body for the city listing.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

var _ json.Unmarshaler = (*Coordinate)(nil)

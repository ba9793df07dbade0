package ngo

import (
	"math"
	"strconv"

	apiErrors "github.com/sevasetu/sevasetu-backend/internal/errors"
	"github.com/sirupsen/logrus"
)

// Service provides business logic for organization lookups.
// Encapsulates the immutable dataset and the geo index behind query operations.
type Service struct {
	dataset Dataset
	index   *Index
	logger  *logrus.Logger
}

// NewService creates a new Service.
// Used to inject dependencies and enable testability.
func NewService(dataset Dataset, index *Index, logger *logrus.Logger) *Service {
	return &Service{dataset, index, logger}
}

// Cities lists every known city, sorted.
func (s *Service) Cities() []string {
	return s.dataset.Cities()
}

// ByCity returns the organizations registered in city.
// Fails with ErrUnknownCity when the city is not in the dataset.
func (s *Service) ByCity(city string) ([]Organization, error) {
	orgs, ok := s.dataset[city]
	if !ok {
		return nil, apiErrors.ErrUnknownCity
	}
	return orgs, nil
}

// All returns one flat summary row per organization across every city,
// in lexicographic city order.
func (s *Service) All() []OrganizationSummary {
	rows := make([]OrganizationSummary, 0, s.index.Len())
	for _, city := range s.dataset.Cities() {
		for _, org := range s.dataset[city] {
			rows = append(rows, OrganizationSummary{City: city, ID: org.ID, Name: org.Name})
		}
	}
	return rows
}

// Nearest parses the raw lat/lng query values and resolves the closest city
// together with its organizations. Non-numeric or non-finite input fails with
// ErrInvalidQuery.
func (s *Service) Nearest(latStr, lngStr string) (*NearestResult, error) {
	lat, err := parseFinite(latStr)
	if err != nil {
		return nil, apiErrors.ErrInvalidQuery
	}
	lng, err := parseFinite(lngStr)
	if err != nil {
		return nil, apiErrors.ErrInvalidQuery
	}

	city, distKm, err := s.index.Nearest(lat, lng)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"lat":  lat,
		"lng":  lng,
		"city": city,
	}).Debug("resolved nearest city")

	return &NearestResult{
		City:          city,
		DistanceKm:    distKm,
		Organizations: s.dataset[city],
	}, nil
}

func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

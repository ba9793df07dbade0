package ngo

import (
	"testing"

	apiErrors "github.com/sevasetu/sevasetu-backend/internal/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func createTestService() *Service {
	ds := createTestDataset()
	return NewService(ds, NewIndex(ds, "CityA"), logrus.New())
}

// TestServiceNearest tests query parsing and resolution.
func TestServiceNearest(t *testing.T) {
	tests := []struct {
		name          string
		lat           string
		lng           string
		expectedCity  string
		expectedError error
	}{
		{
			name:         "Success - numeric query near CityA",
			lat:          "10.1",
			lng:          "10.1",
			expectedCity: "CityA",
		},
		{
			name:          "Error - non-numeric latitude",
			lat:           "abc",
			lng:           "10.1",
			expectedError: apiErrors.ErrInvalidQuery,
		},
		{
			name:          "Error - missing longitude",
			lat:           "10.1",
			lng:           "",
			expectedError: apiErrors.ErrInvalidQuery,
		},
		{
			name:          "Error - non-finite latitude",
			lat:           "NaN",
			lng:           "10.1",
			expectedError: apiErrors.ErrInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := createTestService()

			res, err := service.Nearest(tt.lat, tt.lng)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCity, res.City)
			assert.NotNil(t, res.DistanceKm)
			assert.Len(t, res.Organizations, 1)
		})
	}
}

// TestServiceNearestDeterministic tests repeatability for a fixed dataset.
func TestServiceNearestDeterministic(t *testing.T) {
	service := createTestService()

	first, err := service.Nearest("10.1", "10.1")
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		res, err := service.Nearest("10.1", "10.1")
		assert.NoError(t, err)
		assert.Equal(t, first.City, res.City)
		assert.Equal(t, *first.DistanceKm, *res.DistanceKm)
	}
}

// TestServiceByCity tests the by-city listing.
func TestServiceByCity(t *testing.T) {
	service := createTestService()

	t.Run("known city", func(t *testing.T) {
		orgs, err := service.ByCity("CityA")
		assert.NoError(t, err)
		assert.Len(t, orgs, 1)
		assert.Equal(t, "org1", orgs[0].ID)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := service.ByCity("Atlantis")
		assert.ErrorIs(t, err, apiErrors.ErrUnknownCity)
	})
}

// TestServiceCities tests that the city list is sorted.
func TestServiceCities(t *testing.T) {
	service := createTestService()

	assert.Equal(t, []string{"CityA", "CityB"}, service.Cities())
}

// TestServiceAll tests the flat all-cities listing.
func TestServiceAll(t *testing.T) {
	service := createTestService()

	rows := service.All()

	assert.Equal(t, []OrganizationSummary{
		{City: "CityA", ID: "org1", Name: "Helping Hands"},
		{City: "CityB", ID: "org2", Name: "Care Foundation"},
	}, rows)
}

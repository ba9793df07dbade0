package ngo

import (
	"math"

	apiErrors "github.com/sevasetu/sevasetu-backend/internal/errors"
)

// earthRadiusKm is the mean Earth radius used by the great-circle formula.
const earthRadiusKm = 6371.0

// Index answers nearest-organization queries over a loaded dataset.
// The scan order is lexicographic by city, then dataset order within a city,
// so ties resolve deterministically to the first minimum in that order.
type Index struct {
	locations    []location
	fallbackCity string
}

type location struct {
	city string
	lat  float64
	lon  float64
}

// NewIndex flattens the dataset into scan order. fallbackCity is returned,
// with no distance, when the dataset holds no organizations; when it is empty
// an empty-index query fails instead.
func NewIndex(ds Dataset, fallbackCity string) *Index {
	ix := &Index{fallbackCity: fallbackCity}
	for _, city := range ds.Cities() {
		for _, org := range ds[city] {
			ix.locations = append(ix.locations, location{
				city: city,
				lat:  float64(org.Latitude),
				lon:  float64(org.Longitude),
			})
		}
	}
	return ix
}

// Nearest returns the city owning the organization closest to (lat, lon) and
// the great-circle distance to that organization. A nil distance means the
// index was empty and the fallback city was used.
func (ix *Index) Nearest(lat, lon float64) (string, *float64, error) {
	if len(ix.locations) == 0 {
		if ix.fallbackCity == "" {
			return "", nil, apiErrors.ErrNoOrganizations
		}
		return ix.fallbackCity, nil, nil
	}

	bestCity := ix.locations[0].city
	bestDist := haversineKm(lat, lon, ix.locations[0].lat, ix.locations[0].lon)
	for _, loc := range ix.locations[1:] {
		if d := haversineKm(lat, lon, loc.lat, loc.lon); d < bestDist {
			bestDist = d
			bestCity = loc.city
		}
	}
	return bestCity, &bestDist, nil
}

// Len reports how many organizations are indexed.
func (ix *Index) Len() int {
	return len(ix.locations)
}

// haversineKm computes the great-circle distance in kilometers between two
// points on the Earth sphere.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

package ngo

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/afero"
)

// Dataset is the full organization dataset keyed by city, loaded once at
// process start and immutable thereafter.
type Dataset map[string][]Organization

// LoadDataset reads and parses the city-keyed NGO dataset from fs.
// Any failure here is a configuration error: the caller must refuse to start.
func LoadDataset(fs afero.Fs, path string) (Dataset, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading NGO dataset %s: %w", path, err)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parsing NGO dataset %s: %w", path, err)
	}
	return ds, nil
}

// Cities returns every city in the dataset, sorted.
func (d Dataset) Cities() []string {
	cities := make([]string, 0, len(d))
	for city := range d {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

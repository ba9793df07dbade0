package ngo

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

// TestLoadDataset tests dataset loading, including numeric-string coordinates
// as they appear in the shipped data.
func TestLoadDataset(t *testing.T) {
	t.Run("valid dataset with mixed coordinate types", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		raw := `{
			"Nagpur": [
				{"organization_id": "NGP001", "name": "Seva Trust", "latitude": "21.1458", "longitude": 79.0882,
				 "volunteer": {"name": "Asha", "phone": "9876543210"}}
			]
		}`
		assert.NoError(t, afero.WriteFile(fs, "ngos.json", []byte(raw), 0o644))

		ds, err := LoadDataset(fs, "ngos.json")

		assert.NoError(t, err)
		assert.Len(t, ds["Nagpur"], 1)
		org := ds["Nagpur"][0]
		assert.Equal(t, "NGP001", org.ID)
		assert.InDelta(t, 21.1458, float64(org.Latitude), 1e-9)
		assert.InDelta(t, 79.0882, float64(org.Longitude), 1e-9)
		assert.Equal(t, "Asha", org.Volunteer.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDataset(afero.NewMemMapFs(), "absent.json")
		assert.Error(t, err)
	})

	t.Run("malformed dataset", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.NoError(t, afero.WriteFile(fs, "ngos.json", []byte("{not json"), 0o644))

		_, err := LoadDataset(fs, "ngos.json")
		assert.Error(t, err)
	})
}

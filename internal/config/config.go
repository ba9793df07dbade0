package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the application, loaded from environment variables or config files.
// This struct centralizes configuration for maintainability and testability.
type Config struct {
	Port          string // HTTP server port
	Env           string // Application environment (e.g., development, production)
	NGODataPath   string // Path to the city-keyed NGO dataset, loaded once at startup
	DonationsPath string // Path to the donation-requests store file
	CatalogPath   string // Path to the items catalog served as-is
	FallbackCity  string // City returned by nearest-NGO lookups when the index is empty
}

// Load reads configuration from the .env file and environment variables, returning a Config struct.
// A missing .env file is not an error; environment variables and defaults still apply.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("NGO_DATA_PATH", "data/ngo_info_by_city.json")
	viper.SetDefault("DONATIONS_PATH", "data/donation_requests.json")
	viper.SetDefault("CATALOG_PATH", "data/items_catalog.json")
	viper.SetDefault("FALLBACK_CITY", "Nagpur")
	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Config{
		Port:          viper.GetString("PORT"),
		Env:           viper.GetString("ENV"),
		NGODataPath:   viper.GetString("NGO_DATA_PATH"),
		DonationsPath: viper.GetString("DONATIONS_PATH"),
		CatalogPath:   viper.GetString("CATALOG_PATH"),
		FallbackCity:  viper.GetString("FALLBACK_CITY"),
	}, nil
}

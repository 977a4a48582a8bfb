package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application settings sourced from TDATE_* environment
// variables, with a .env file in the working directory taking effect
// first.
type Config struct {
	// Location is the place the date is computed for when none is given
	// on the command line.
	Location string `env:"TDATE_LOCATION" envDefault:"Las Vegas, NV"`
	// NominatimURL points geocoding at a self-hosted Nominatim instance.
	NominatimURL string `env:"TDATE_NOMINATIM_URL"`
	// CacheDir overrides where the geocoding cache lives.
	CacheDir string `env:"TDATE_CACHE_DIR"`
	// PlacesFile overrides where saved place aliases are read from.
	PlacesFile string `env:"TDATE_PLACES_FILE"`
}

// GetEnvVars loads a .env file if one exists in the working directory,
// then parses the environment into a Config.
func GetEnvVars() Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Println("Error loading .env file")
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("%+v\n", err)
	}

	return cfg
}

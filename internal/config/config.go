package config

import (
	"github.com/adampresley/configinator"
	"github.com/joho/godotenv"
)

// Config holds process level settings read from flags, environment and .env
type Config struct {
	BaseURL               string `flag:"baseurl" env:"MARS_BASE_URL" default:"" description:"Base URL of the Mars photos service. Empty uses the public Mars server"`
	Language              string `flag:"lang" env:"APP_LANGUAGE" default:"system" description:"UI language. Valid values are 'system', 'en', 'ru' and 'pt'"`
	LogLevel              string `flag:"loglevel" env:"LOG_LEVEL" default:"info" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxInFlightLoads      int    `flag:"maxinflight" env:"MAX_IN_FLIGHT_LOADS" default:"4" description:"Maximum number of photo loads running at once"`
	RequestTimeoutSeconds int    `flag:"timeout" env:"REQUEST_TIMEOUT_SECONDS" default:"30" description:"Timeout in seconds for a single photos request"`
}

// LoadConfig reads an optional .env file, then flags and environment
func LoadConfig() Config {
	// A missing .env file is fine
	_ = godotenv.Load()

	config := Config{}
	configinator.Behold(&config)
	return config
}

package utils

import (
	"os"
	"strings"

	"github.com/alpacahq/marketcal/utils/log"
)

// Listen address, log level and default country can be overridden by environment
// variables so a container can be reconfigured without editing the config file.

const (
	envListenURL      = "MARKETCAL_LISTEN_URL"
	envLogLevel       = "MARKETCAL_LOG_LEVEL"
	envDefaultCountry = "MARKETCAL_DEFAULT_COUNTRY"
)

// envOverride updates some configs by environment variables.
func envOverride(config *CalConfig) (*CalConfig, error) {
	listenURL := os.Getenv(envListenURL)
	if listenURL != "" {
		config.ListenURL = listenURL
	}

	logLevel := os.Getenv(envLogLevel)
	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return nil, err
		}
		config.LogLevel = level
	}

	country := os.Getenv(envDefaultCountry)
	if country != "" {
		config.DefaultCountry = strings.ToUpper(country)
	}

	return config, nil
}

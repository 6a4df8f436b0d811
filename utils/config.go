package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/alpacahq/marketcal/calendar"
	"github.com/alpacahq/marketcal/utils/log"
)

const (
	defaultListenURL       = "localhost:5995"
	defaultCountry         = "US"
	defaultStopGracePeriod = 5 * time.Second
)

type CalConfig struct {
	ListenURL       string
	UtilitiesURL    string
	LogLevel        log.Level
	StopGracePeriod time.Duration
	DefaultCountry  string
	// Countries limits the served jurisdictions. Empty serves all of them.
	Countries   []string
	EasterCache bool
	// PreloadFrom and PreloadTo are both zero when no warm-up is configured.
	PreloadFrom int
	PreloadTo   int
	Timezone    *time.Location
	StartTime   time.Time
}

// NewDefaultConfig returns the configuration used when no file is given.
func NewDefaultConfig() *CalConfig {
	return &CalConfig{
		ListenURL:       defaultListenURL,
		LogLevel:        log.INFO,
		StopGracePeriod: defaultStopGracePeriod,
		DefaultCountry:  defaultCountry,
		EasterCache:     true,
		Timezone:        time.UTC,
	}
}

// ParseConfig parses a YAML configuration and applies environment overrides.
func ParseConfig(data []byte) (*CalConfig, error) {
	m := NewDefaultConfig()
	if err := m.Parse(data); err != nil {
		return nil, err
	}
	return envOverride(m)
}

func (m *CalConfig) Parse(data []byte) error {
	var aux struct {
		ListenURL       string   `yaml:"listen_url"`
		UtilitiesURL    string   `yaml:"utilities_url"`
		LogLevel        string   `yaml:"log_level"`
		StopGracePeriod int      `yaml:"stop_grace_period"`
		DefaultCountry  string   `yaml:"default_country"`
		Countries       []string `yaml:"countries"`
		EasterCache     string   `yaml:"easter_cache"`
		PreloadYears    []int    `yaml:"preload_years"`
		Timezone        string   `yaml:"timezone"`
	}

	if err := yaml.Unmarshal(data, &aux); err != nil {
		return errors.Wrap(err, "failed to parse the config file")
	}

	if aux.ListenURL != "" {
		m.ListenURL = aux.ListenURL
	}
	m.UtilitiesURL = aux.UtilitiesURL

	if aux.LogLevel != "" {
		level, err := log.ParseLevel(aux.LogLevel)
		if err != nil {
			return err
		}
		m.LogLevel = level
	}

	if aux.StopGracePeriod < 0 {
		return errors.Errorf("invalid stop_grace_period: %d", aux.StopGracePeriod)
	} else if aux.StopGracePeriod > 0 {
		m.StopGracePeriod = time.Duration(aux.StopGracePeriod) * time.Second
	}

	if aux.DefaultCountry != "" {
		m.DefaultCountry = strings.ToUpper(aux.DefaultCountry)
	}
	m.Countries = nil
	for _, c := range aux.Countries {
		m.Countries = append(m.Countries, strings.ToUpper(strings.TrimSpace(c)))
	}

	if aux.EasterCache != "" {
		enabled, err := strconv.ParseBool(aux.EasterCache)
		if err != nil {
			log.Error("Invalid value: %v for easter_cache. Caching Easter dates...", aux.EasterCache)
		} else {
			m.EasterCache = enabled
		}
	}

	switch len(aux.PreloadYears) {
	case 0:
	case 2:
		from, to := aux.PreloadYears[0], aux.PreloadYears[1]
		if from > to || from < calendar.MinYear || to > calendar.MaxYear {
			return errors.Errorf("invalid preload_years: [%d, %d]", from, to)
		}
		m.PreloadFrom, m.PreloadTo = from, to
	default:
		return errors.Errorf("preload_years needs exactly two years, got %d", len(aux.PreloadYears))
	}

	if !m.EasterCache && m.PreloadFrom != 0 {
		log.Warn("preload_years [%d, %d] is ignored because easter_cache is disabled",
			m.PreloadFrom, m.PreloadTo)
	}

	// Giving "" to LoadLocation will be UTC anyway, which is our default too.
	tz, err := time.LoadLocation(aux.Timezone)
	if err != nil {
		return errors.Wrapf(err, "invalid timezone %q", aux.Timezone)
	}
	m.Timezone = tz

	return nil
}

// Served reports whether the jurisdiction code is enabled by the configuration.
func (m *CalConfig) Served(code string) bool {
	if len(m.Countries) == 0 {
		return true
	}
	for _, c := range m.Countries {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}

// Package config loads observation requests from YAML files.
//
// A request names an observer and the instants to evaluate:
//
//	observer:
//	  name: Greenwich
//	  latitude: 51d28m40sN
//	  longitude: -0.0015
//	  elevation: 46
//	  timezone: Europe/London
//	times:
//	  - 2024-06-21 12:00
//	  - 2024-12-21
//	workers: 4
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // observer zones resolve without a system zoneinfo

	"gopkg.in/yaml.v2"

	"github.com/thurmanmarka/solarglide"
	"github.com/thurmanmarka/solarglide/internal/angle"
)

const (
	DefaultName     = "Observatory"
	DefaultTimezone = "UTC"

	// MinElevation is a little below the Dead Sea shore, in meters.
	MinElevation = -500.0
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be within [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude must be within [-180, 180]")
	ErrNoTimes          = errors.New("no observation times configured")
	ErrInvalidWorkers   = errors.New("workers must not be negative")
	ErrInvalidElevation = errors.New("elevation must be a finite height of at least -500 m")
)

// timeLayouts are tried in order when parsing an entry of Config.Times.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
	"20060102",
}

// Degrees is an angle read from YAML as either a number or a
// degrees/minutes/seconds string.
type Degrees float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Degrees) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	v, err := angle.ParseDegrees(s, -360, 360)
	if err != nil {
		return err
	}
	*d = Degrees(v)
	return nil
}

type Observer struct {
	Name      string  `yaml:"name"`
	Latitude  Degrees `yaml:"latitude"`
	Longitude Degrees `yaml:"longitude"`
	Elevation float64 `yaml:"elevation,omitempty"` // meters above sea level
	Timezone  string  `yaml:"timezone,omitempty"`
}

type Config struct {
	Observer Observer `yaml:"observer"`
	Times    []string `yaml:"times"`
	Workers  int      `yaml:"workers,omitempty"`
}

// Default returns a configuration for an observer at lat=0 lon=0 in UTC
// with no times.
func Default() *Config {
	return &Config{
		Observer: Observer{
			Name:     DefaultName,
			Timezone: DefaultTimezone,
		},
	}
}

// Open reads and validates the YAML file at filename. Missing fields take
// the values of Default.
func Open(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(b)
}

// Parse decodes and validates a YAML document.
func Parse(b []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(b, config); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	if config.Observer.Name == "" {
		config.Observer.Name = DefaultName
	}
	if config.Observer.Timezone == "" {
		config.Observer.Timezone = DefaultTimezone
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if lat := float64(c.Observer.Latitude); lat < -90 || lat > 90 {
		return fmt.Errorf("%w: got %g", ErrInvalidLatitude, lat)
	}
	if lon := float64(c.Observer.Longitude); lon < -180 || lon > 180 {
		return fmt.Errorf("%w: got %g", ErrInvalidLongitude, lon)
	}
	if elev := c.Observer.Elevation; math.IsNaN(elev) || math.IsInf(elev, 0) || elev < MinElevation {
		return fmt.Errorf("%w: got %g", ErrInvalidElevation, elev)
	}
	if len(c.Times) == 0 {
		return ErrNoTimes
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the observer's time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Observer.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Observer.Timezone, err)
	}
	return loc, nil
}

// Instants parses every configured time as local time in the observer's
// time zone and returns the instants in UTC.
func (c *Config) Instants() ([]time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	instants := make([]time.Time, 0, len(c.Times))
	for i, s := range c.Times {
		t, err := parseTime(strings.TrimSpace(s), loc)
		if err != nil {
			return nil, fmt.Errorf("times[%d]: %w", i, err)
		}
		instants = append(instants, t.UTC())
	}
	return instants, nil
}

// Observations returns one located observation per configured time.
func (c *Config) Observations() ([]solarglide.Observation, error) {
	instants, err := c.Instants()
	if err != nil {
		return nil, err
	}

	lat := float64(c.Observer.Latitude)
	lon := float64(c.Observer.Longitude)

	obs := make([]solarglide.Observation, 0, len(instants))
	for _, t := range instants {
		obs = append(obs, solarglide.FromTime(t).WithLocation(lat, lon))
	}
	return obs, nil
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

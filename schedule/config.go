package schedule

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata" // zone database for hosts without one
)

const (
	// DefaultBaseURL is the schedule provider root.
	DefaultBaseURL = "https://rtu-mirea-mobile.herokuapp.com"
	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 5 * time.Second
	// DefaultTimezone decides which calendar day is "today".
	DefaultTimezone = "Europe/Moscow"
)

// Config configures the provider client and the day calendar.
type Config struct {
	BaseURL   string `yaml:"base_url" envconfig:"SCHEDULE_BASE_URL"`
	TimeoutMS int    `yaml:"timeout_ms" envconfig:"SCHEDULE_TIMEOUT_MS"`
	Timezone  string `yaml:"timezone" envconfig:"SCHEDULE_TIMEZONE"`
}

// Normalize fills defaults and validates values.
func (c *Config) Normalize() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("schedule.base_url %q is not an absolute URL", c.BaseURL)
	}
	if c.TimeoutMS < 0 {
		return fmt.Errorf("schedule.timeout_ms must be >= 0")
	}
	if c.TimeoutMS == 0 {
		c.TimeoutMS = int(DefaultTimeout / time.Millisecond)
	}
	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("schedule.timezone: %w", err)
	}
	return nil
}

// Timeout returns the fetch timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Location loads the configured timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Package schedule fetches weekly class schedules from the provider API and
// renders single days as chat text.
package schedule

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound reports that a schedule could not be obtained, for whatever
	// reason. The cause is logged by the client.
	ErrNotFound = errors.New("schedule not found")
	// ErrUnknownGroup reports a group id missing from the registry.
	ErrUnknownGroup = errors.New("unknown group")
)

// Group is a class cohort with the metadata shown in inline results.
type Group struct {
	ID          string `yaml:"id" db:"id"`
	Description string `yaml:"description" db:"description"`
	Thumb       string `yaml:"thumb" db:"thumb_url"`
}

// Lesson is one class slot.
type Lesson struct {
	Time string `json:"time"`
	Name string `json:"name"`
	Room string `json:"room"`
}

// Schedule maps lowercase weekday names to the day's lessons in order.
type Schedule struct {
	Days map[string][]Lesson `json:"days"`
}

// Lessons returns the lessons of the named day. A missing day has none.
func (s *Schedule) Lessons(dayName string) []Lesson {
	if s == nil {
		return nil
	}
	return s.Days[strings.ToLower(dayName)]
}

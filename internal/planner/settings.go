package planner

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfiguration rejects a scheduling run before any placement
// happens. Malformed settings fail wholesale rather than being clamped, so
// the caller can surface a clear message instead of a silently wrong plan.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Settings configures session decomposition and slot generation.
// DefaultSettings gives every field a sensible value.
type Settings struct {
	MinBlockMinutes       int            // smallest session worth sitting down for
	MaxBlockMinutes       int            // largest single session
	RemainderFloorMinutes int            // remainders below this merge into the prior session
	HorizonDays           int            // scheduling look-ahead window
	WorkdayStartHour      int            // first bookable hour (inclusive)
	WorkdayEndHour        int            // last bookable hour (exclusive)
	Weekdays              []time.Weekday // days eligible for study slots
	RespectEnergyLevels   bool           // honor the per-hour energy profile
}

// DefaultSettings returns the stock configuration: 20-30 minute blocks,
// a two-week horizon, 9-17 workdays Monday through Friday.
//
// A session must fit inside a single hourly slot, and with the energy panel
// off a slot holds 36 minutes (medium energy), so the default max block
// stays under that. Callers raising MaxBlockMinutes past a slot's capacity
// will see those sessions overflow.
func DefaultSettings() Settings {
	return Settings{
		MinBlockMinutes:       20,
		MaxBlockMinutes:       30,
		RemainderFloorMinutes: 10,
		HorizonDays:           14,
		WorkdayStartHour:      9,
		WorkdayEndHour:        17,
		Weekdays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}

// Validate checks ordering and positivity of every numeric field.
func (s Settings) Validate() error {
	if s.MinBlockMinutes <= 0 {
		return fmt.Errorf("%w: min block minutes must be positive, got %d", ErrInvalidConfiguration, s.MinBlockMinutes)
	}
	if s.MaxBlockMinutes < s.MinBlockMinutes {
		return fmt.Errorf("%w: min block (%d) exceeds max block (%d)", ErrInvalidConfiguration, s.MinBlockMinutes, s.MaxBlockMinutes)
	}
	if s.RemainderFloorMinutes <= 0 || s.RemainderFloorMinutes > s.MinBlockMinutes {
		return fmt.Errorf("%w: remainder floor must be in 1..%d, got %d", ErrInvalidConfiguration, s.MinBlockMinutes, s.RemainderFloorMinutes)
	}
	if s.HorizonDays <= 0 {
		return fmt.Errorf("%w: horizon days must be positive, got %d", ErrInvalidConfiguration, s.HorizonDays)
	}
	if s.WorkdayStartHour < 0 || s.WorkdayEndHour > 24 || s.WorkdayStartHour >= s.WorkdayEndHour {
		return fmt.Errorf("%w: workday window %d-%d is not a valid hour range", ErrInvalidConfiguration, s.WorkdayStartHour, s.WorkdayEndHour)
	}
	if len(s.Weekdays) == 0 {
		return fmt.Errorf("%w: no workday weekdays configured", ErrInvalidConfiguration)
	}
	for _, d := range s.Weekdays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: invalid weekday %d", ErrInvalidConfiguration, d)
		}
	}
	return nil
}

// workday reports whether the weekday is eligible for study slots.
func (s Settings) workday(d time.Weekday) bool {
	for _, w := range s.Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

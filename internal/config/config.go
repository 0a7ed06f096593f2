package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/LavenderBridge/studyplan/internal/planner"
)

// File is the on-disk shape of ~/.studyplan/config.yaml. Every field is
// optional; zero values fall back to the planner defaults so a partial file
// only overrides what it names.
type File struct {
	MinBlockMinutes       int             `yaml:"min_block_minutes"`
	MaxBlockMinutes       int             `yaml:"max_block_minutes"`
	RemainderFloorMinutes int             `yaml:"remainder_floor_minutes"`
	HorizonDays           int             `yaml:"horizon_days"`
	WorkdayStartHour      int             `yaml:"workday_start_hour"`
	WorkdayEndHour        int             `yaml:"workday_end_hour"`
	Weekdays              []string        `yaml:"weekdays"`
	RespectEnergyLevels   bool            `yaml:"respect_energy_levels"`
	Energy                map[int]float64 `yaml:"energy"` // hour -> 0..1
}

// Load reads the settings file from the default location. A missing file is
// not an error: defaults apply.
func Load() (planner.Settings, planner.EnergyProfile, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return planner.Settings{}, nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return LoadFrom(filepath.Join(home, ".studyplan", "config.yaml"))
}

// LoadFrom reads settings from an explicit path, merging over defaults.
func LoadFrom(path string) (planner.Settings, planner.EnergyProfile, error) {
	settings := planner.DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil, nil
	}
	if err != nil {
		return planner.Settings{}, nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return planner.Settings{}, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if f.MinBlockMinutes != 0 {
		settings.MinBlockMinutes = f.MinBlockMinutes
	}
	if f.MaxBlockMinutes != 0 {
		settings.MaxBlockMinutes = f.MaxBlockMinutes
	}
	if f.RemainderFloorMinutes != 0 {
		settings.RemainderFloorMinutes = f.RemainderFloorMinutes
	}
	if f.HorizonDays != 0 {
		settings.HorizonDays = f.HorizonDays
	}
	if f.WorkdayStartHour != 0 {
		settings.WorkdayStartHour = f.WorkdayStartHour
	}
	if f.WorkdayEndHour != 0 {
		settings.WorkdayEndHour = f.WorkdayEndHour
	}
	if len(f.Weekdays) > 0 {
		days, err := parseWeekdays(f.Weekdays)
		if err != nil {
			return planner.Settings{}, nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		settings.Weekdays = days
	}
	settings.RespectEnergyLevels = f.RespectEnergyLevels

	return settings, planner.EnergyProfile(f.Energy), nil
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	lookup := map[string]time.Weekday{
		"sunday": time.Sunday, "sun": time.Sunday,
		"monday": time.Monday, "mon": time.Monday,
		"tuesday": time.Tuesday, "tue": time.Tuesday,
		"wednesday": time.Wednesday, "wed": time.Wednesday,
		"thursday": time.Thursday, "thu": time.Thursday,
		"friday": time.Friday, "fri": time.Friday,
		"saturday": time.Saturday, "sat": time.Saturday,
	}

	var days []time.Weekday
	for _, name := range names {
		d, ok := lookup[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		days = append(days, d)
	}
	return days, nil
}

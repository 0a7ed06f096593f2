package planner

import "time"

// Slot is one bookable (day, hour) unit with finite remaining capacity.
// Capacity is minutes, scaled down from 60 by the hour's energy level.
// A zero-capacity slot is valid; it just never gets picked.
type Slot struct {
	Start     time.Time
	Capacity  int
	Remaining int
}

// used is how many minutes have already been consumed, which is also the
// offset of the next session placed into this slot.
func (s Slot) used() int {
	return s.Capacity - s.Remaining
}

// startOfDay truncates to local midnight.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// buildSlots lays out the scheduling horizon: one slot per workday hour
// within [today, today+HorizonDays], in chronological order. Hours that have
// already fully elapsed today are dropped; the in-progress hour stays
// bookable.
func buildSlots(now time.Time, s Settings, profile EnergyProfile) []Slot {
	var slots []Slot
	today := startOfDay(now)

	for offset := 0; offset <= s.HorizonDays; offset++ {
		day := today.AddDate(0, 0, offset)
		if !s.workday(day.Weekday()) {
			continue
		}
		for hour := s.WorkdayStartHour; hour < s.WorkdayEndHour; hour++ {
			start := day.Add(time.Duration(hour) * time.Hour)
			if !start.Add(time.Hour).After(now) {
				continue
			}
			capacity := int(60 * profile.Level(hour, s.RespectEnergyLevels))
			slots = append(slots, Slot{Start: start, Capacity: capacity, Remaining: capacity})
		}
	}
	return slots
}

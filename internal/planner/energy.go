package planner

import "fmt"

// EnergyProfile maps hour-of-day (0-23) to a capacity multiplier in [0, 1].
// It models how much focused work an hour can realistically hold.
type EnergyProfile map[int]float64

// disabledEnergyLevel is the flat multiplier used when the energy panel is
// off. The app treats "disabled" as medium energy for every hour, not full
// capacity.
const disabledEnergyLevel = 0.6

// Validate rejects hours outside 0-23 and multipliers outside [0, 1].
func (p EnergyProfile) Validate() error {
	for hour, level := range p {
		if hour < 0 || hour > 23 {
			return fmt.Errorf("%w: energy profile hour %d out of range", ErrInvalidConfiguration, hour)
		}
		if level < 0 || level > 1 {
			return fmt.Errorf("%w: energy level %.2f for hour %d out of [0,1]", ErrInvalidConfiguration, level, hour)
		}
	}
	return nil
}

// Level returns the capacity multiplier for an hour. With the panel disabled
// every hour is flat medium energy. With it enabled, hours absent from the
// profile get zero capacity (the conservative reading: unlisted means
// unavailable).
func (p EnergyProfile) Level(hour int, respect bool) float64 {
	if !respect {
		return disabledEnergyLevel
	}
	return p[hour]
}

package rotation

import (
	"sort"

	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/logger"
)

// BasePattern maps engineer name to day-off name for a single week, as
// produced by the generator before any swaps or coverage adjustments.
type BasePattern map[string]string

// clone returns an independent copy of the pattern.
func (p BasePattern) clone() BasePattern {
	out := make(BasePattern, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Cycle is the immutable repeating sequence of weekly day-off patterns.
// Its length is numEngineers * numRotationDays; identical configuration
// always yields an identical cycle.
type Cycle struct {
	engineers    []Engineer
	rotationDays []string
	mandatoryDay string
	patterns     []BasePattern
}

// NewCycle generates the rotation cycle from team configuration.
// Fails with a configuration error when the team is smaller than the
// number of rotation days, since the coverage pass could not place one
// engineer per day.
func NewCycle(cfg Config) (*Cycle, error) {
	if len(cfg.Engineers) == 0 {
		return nil, apperrors.ErrEmptyRoster
	}
	numEngineers := len(cfg.Engineers)
	numDays := len(cfg.RotationDays)
	if numEngineers < numDays {
		return nil, apperrors.ErrNotEnoughEngineers
	}
	for _, day := range cfg.RotationDays {
		if day == cfg.MandatoryDay {
			return nil, apperrors.ErrMandatoryDayInRotation
		}
	}

	c := &Cycle{
		engineers:    append([]Engineer(nil), cfg.Engineers...),
		rotationDays: append([]string(nil), cfg.RotationDays...),
		mandatoryDay: cfg.MandatoryDay,
	}

	cycleLength := numEngineers * numDays
	c.patterns = make([]BasePattern, 0, cycleLength)
	for week := 0; week < cycleLength; week++ {
		c.patterns = append(c.patterns, c.generateWeek(week))
	}

	c.reportDistribution()
	return c, nil
}

// generateWeek builds one week's pattern in two passes: a coverage pass
// placing exactly one engineer on each rotation day, then a fill pass
// spreading the remaining engineers over the least-loaded days.
func (c *Cycle) generateWeek(week int) BasePattern {
	numEngineers := len(c.engineers)
	pattern := make(BasePattern, numEngineers)
	used := make(map[string]bool, numEngineers)
	dayCounts := make(map[string]int, len(c.rotationDays))
	for _, day := range c.rotationDays {
		dayCounts[day] = 0
	}

	// Coverage pass: one engineer per rotation day, advancing past anyone
	// already assigned this week.
	for dayIdx, day := range c.rotationDays {
		engineerIdx := (week + dayIdx) % numEngineers
		for used[c.engineers[engineerIdx].Name] {
			engineerIdx = (engineerIdx + 1) % numEngineers
		}
		eng := c.engineers[engineerIdx]
		pattern[eng.Name] = day
		dayCounts[day]++
		used[eng.Name] = true
	}

	// Fill pass: each remaining engineer goes to a day with the minimum
	// assigned count. Ties are broken by indexing into the sorted tied day
	// names, never randomized.
	for _, eng := range c.engineers {
		if used[eng.Name] {
			continue
		}

		minCount := -1
		for _, day := range c.rotationDays {
			if minCount == -1 || dayCounts[day] < minCount {
				minCount = dayCounts[day]
			}
		}
		var tied []string
		for _, day := range c.rotationDays {
			if dayCounts[day] == minCount {
				tied = append(tied, day)
			}
		}
		sort.Strings(tied)

		selected := tied[mod(week+len(used), len(tied))]
		pattern[eng.Name] = selected
		dayCounts[selected]++
		used[eng.Name] = true
	}

	return pattern
}

// reportDistribution logs a warning for any week where a single day
// collects more than half the team. Diagnostic only, never a failure.
func (c *Cycle) reportDistribution() {
	log := logger.New()
	maxOff := len(c.engineers) / 2

	for week, pattern := range c.patterns {
		dayCounts := make(map[string]int, len(c.rotationDays))
		for _, dayOff := range pattern {
			dayCounts[dayOff]++
		}
		for day, count := range dayCounts {
			if count > maxOff {
				log.WithFields(map[string]interface{}{
					"week":  week,
					"day":   day,
					"count": count,
				}).Warn("uneven rotation pattern: many engineers off on the same day")
			}
		}
	}
}

// Len returns the cycle length (numEngineers * numRotationDays).
func (c *Cycle) Len() int {
	return len(c.patterns)
}

// Engineers returns the roster in configured order.
func (c *Cycle) Engineers() []Engineer {
	return append([]Engineer(nil), c.engineers...)
}

// RotationDays returns the configured rotation days in order.
func (c *Cycle) RotationDays() []string {
	return append([]string(nil), c.rotationDays...)
}

// MandatoryDay returns the weekday every engineer must work.
func (c *Cycle) MandatoryDay() string {
	return c.mandatoryDay
}

// Pattern returns a copy of the base pattern at the given cycle position.
func (c *Cycle) Pattern(week int) BasePattern {
	return c.patterns[mod(week, len(c.patterns))].clone()
}

// EngineerByName resolves a roster member by name.
func (c *Cycle) EngineerByName(name string) (Engineer, bool) {
	for _, eng := range c.engineers {
		if eng.Name == name {
			return eng, true
		}
	}
	return Engineer{}, false
}

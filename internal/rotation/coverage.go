package rotation

import (
	"time"

	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/holiday"
)

// Adjuster detects under-coverage on any non-mandatory workday and
// relocates excess day-off assignments to alternate rotation days. It
// reads the swap-adjusted effective pattern, never mutates the cycle,
// and caches per-week results only for its own lifetime.
type Adjuster struct {
	schedule *Schedule
	ledger   *Ledger
	oracle   holiday.Oracle
	cache    map[int]map[string]string // week -> engineer -> relocated day
}

// NewAdjuster creates a coverage adjuster. The oracle is a caller-owned
// capability; pass holiday.None{} to disable holiday awareness.
func NewAdjuster(schedule *Schedule, ledger *Ledger, oracle holiday.Oracle) *Adjuster {
	return &Adjuster{
		schedule: schedule,
		ledger:   ledger,
		oracle:   oracle,
		cache:    make(map[int]map[string]string),
	}
}

// floor returns the maximum number of engineers allowed absent on one
// day: at least 2 must be actively working.
func (a *Adjuster) floor() int {
	return len(a.schedule.Cycle().Engineers()) - 2
}

// Adjustments computes (and caches) the day-off relocations for a week.
// The map is keyed by engineer name; a missing key means the engineer
// keeps their effective day off. When no alternative day qualifies for
// an excess absentee, that engineer is silently left unmoved: the
// adjustment favors schedule stability over forced rebalancing.
func (a *Adjuster) Adjustments(week int) map[string]string {
	if cached, ok := a.cache[week]; ok {
		return cached
	}

	weekStart := a.schedule.WeekStartDate(week)
	oncall := a.schedule.OnCallEngineer(week)
	pattern := a.ledger.EffectivePattern(weekStart, a.schedule.RotationPattern(week))
	engineers := a.schedule.Cycle().Engineers()
	maxAbsent := a.floor()

	adjustments := make(map[string]string)

	for _, day := range workweek {
		if day == a.schedule.Cycle().MandatoryDay() {
			continue
		}
		date := weekStart.AddDate(0, 0, workdayOffset(day))

		var holidayAbsent, scheduleAbsent []string
		for _, eng := range engineers {
			if eng.Name == oncall.Name {
				continue
			}
			if a.oracle.IsHoliday(date, eng.Country, eng.Region) {
				holidayAbsent = append(holidayAbsent, eng.Name)
			} else if pattern[eng.Name] == day {
				scheduleAbsent = append(scheduleAbsent, eng.Name)
			}
		}

		totalAbsent := len(holidayAbsent) + len(scheduleAbsent)
		if totalAbsent <= maxAbsent {
			continue
		}

		// Holiday absences are never relocated; move the first excess
		// schedule-caused absentees in roster order.
		excess := totalAbsent - maxAbsent
		if excess > len(scheduleAbsent) {
			excess = len(scheduleAbsent)
		}
		for _, name := range scheduleAbsent[:excess] {
			if alt, ok := a.findAlternativeDay(name, day, week, weekStart, pattern, oncall); ok {
				adjustments[name] = alt
			}
		}
	}

	a.cache[week] = adjustments
	return adjustments
}

// findAlternativeDay tries the other rotation days in configured order,
// skipping any that is a holiday for the engineer or whose absent count
// would itself breach the floor.
func (a *Adjuster) findAlternativeDay(name, originalDay string, week int, weekStart time.Time, pattern BasePattern, oncall Engineer) (string, bool) {
	cycle := a.schedule.Cycle()
	eng, ok := cycle.EngineerByName(name)
	if !ok {
		return "", false
	}

	for _, altDay := range cycle.RotationDays() {
		if altDay == originalDay {
			continue
		}
		altDate := weekStart.AddDate(0, 0, workdayOffset(altDay))

		if a.oracle.IsHoliday(altDate, eng.Country, eng.Region) {
			continue
		}

		absent := 0
		for _, other := range cycle.Engineers() {
			if other.Name == oncall.Name {
				continue
			}
			if a.oracle.IsHoliday(altDate, other.Country, other.Region) || pattern[other.Name] == altDay {
				absent++
			}
		}
		if absent+1 <= a.floor() {
			return altDay, true
		}
	}

	return "", false
}

// EffectiveDayOff resolves an engineer's day off for a week after
// approved swaps and coverage adjustments.
func (a *Adjuster) EffectiveDayOff(name string, week int) (string, error) {
	pattern := a.ledger.EffectivePattern(a.schedule.WeekStartDate(week), a.schedule.RotationPattern(week))
	dayOff, ok := pattern[name]
	if !ok {
		return "", apperrors.ErrEngineerNotFound
	}
	if moved, ok := a.Adjustments(week)[name]; ok {
		return moved, nil
	}
	return dayOff, nil
}

// EffectivePattern returns the week's pattern after swaps and coverage
// adjustments. Computed fresh from the ledger on every call; only the
// adjustment step is cached.
func (a *Adjuster) EffectivePattern(week int) BasePattern {
	pattern := a.ledger.EffectivePattern(a.schedule.WeekStartDate(week), a.schedule.RotationPattern(week))
	for name, day := range a.Adjustments(week) {
		pattern[name] = day
	}
	return pattern
}

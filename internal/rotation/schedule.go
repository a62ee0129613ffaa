package rotation

import (
	"time"
)

// Clock supplies the current time; swapped out in tests for determinism.
type Clock func() time.Time

// Schedule is a read-only query façade over the generated cycle. All
// methods are total and idempotent: results depend only on the week
// number and the immutable cycle, so arbitrarily large horizons are
// queryable in O(1) memory.
type Schedule struct {
	cycle  *Cycle
	clock  Clock
	anchor *time.Time
}

// ScheduleOption customizes a Schedule.
type ScheduleOption func(*Schedule)

// WithClock overrides the time source used to derive the default anchor.
func WithClock(clock Clock) ScheduleOption {
	return func(s *Schedule) { s.clock = clock }
}

// WithAnchor pins week 0 to a fixed Monday instead of deriving it from
// the current date.
func WithAnchor(anchor time.Time) ScheduleOption {
	return func(s *Schedule) {
		a := midnight(anchor)
		s.anchor = &a
	}
}

// NewSchedule creates a schedule over an already-generated cycle.
func NewSchedule(cycle *Cycle, opts ...ScheduleOption) *Schedule {
	s := &Schedule{
		cycle: cycle,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cycle exposes the underlying immutable cycle.
func (s *Schedule) Cycle() *Cycle {
	return s.cycle
}

// Anchor returns the Monday of week 0: the configured anchor if pinned,
// otherwise the next Monday from the current date.
func (s *Schedule) Anchor() time.Time {
	if s.anchor != nil {
		return *s.anchor
	}
	return NextMonday(s.clock())
}

// WeekStartDate returns the Monday of the given week number.
func (s *Schedule) WeekStartDate(week int) time.Time {
	return s.Anchor().AddDate(0, 0, 7*week)
}

// OnCallEngineer returns the week's designated extended-hours worker.
// The on-call rotation has period N, independent of the N*D fairness
// cycle; the combined schedule repeats every N*D weeks.
func (s *Schedule) OnCallEngineer(week int) Engineer {
	engineers := s.cycle.engineers
	return engineers[mod(week, len(engineers))]
}

// RotationPattern returns the base day-off pattern for the week.
func (s *Schedule) RotationPattern(week int) BasePattern {
	return s.cycle.Pattern(week)
}

// WeekForDate finds the week number whose 7-day span contains the date,
// limited to 4 weeks before the anchor through 52 weeks after. Returns
// false when the date is outside that horizon.
func (s *Schedule) WeekForDate(date time.Time) (int, bool) {
	target := midnight(date)
	anchor := s.Anchor()
	for week := -4; week < 52; week++ {
		start := anchor.AddDate(0, 0, 7*week)
		end := start.AddDate(0, 0, 6)
		if !target.Before(start) && !target.After(end) {
			return week, true
		}
	}
	return 0, false
}

// WeekSchedule returns the day-by-day roster of engineer markers for the
// week, derived from the base pattern. Every engineer appears on the
// mandatory day; on other workdays an engineer appears unless the base
// pattern gives them that day off. The on-call engineer is marked with a
// trailing "*" and never takes a day off.
func (s *Schedule) WeekSchedule(week int) map[string][]string {
	return s.WeekScheduleFor(week, s.RotationPattern(week))
}

// WeekScheduleFor builds the day-by-day roster from an explicit day-off
// pattern, typically the effective pattern after approved swaps and
// coverage adjustments.
func (s *Schedule) WeekScheduleFor(week int, pattern BasePattern) map[string][]string {
	oncall := s.OnCallEngineer(week)

	schedule := make(map[string][]string, len(workweek))
	for _, day := range workweek {
		schedule[day] = []string{}
	}

	for _, eng := range s.cycle.engineers {
		schedule[s.cycle.mandatoryDay] = append(schedule[s.cycle.mandatoryDay], marker(eng, oncall))
	}

	for _, eng := range s.cycle.engineers {
		dayOff := pattern[eng.Name]
		for _, day := range workweek {
			if day == s.cycle.mandatoryDay {
				continue
			}
			if day == dayOff && eng.Name != oncall.Name {
				continue
			}
			schedule[day] = append(schedule[day], marker(eng, oncall))
		}
	}

	return schedule
}

func marker(eng, oncall Engineer) string {
	if eng.Name == oncall.Name {
		return eng.Letter + "*"
	}
	return eng.Letter
}

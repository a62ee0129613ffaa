package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/holiday"
	"rotation-manager-backend/internal/rotation"
)

// CalendarService renders the effective schedule as iCalendar and CSV
// exports. Both formats cover week 0 through the requested horizon.
type CalendarService struct {
	schedule     *rotation.Schedule
	ledger       *rotation.Ledger
	oracle       holiday.Oracle
	defaultWeeks int
	maxWeeks     int
}

// NewCalendarService creates a new calendar service
func NewCalendarService(schedule *rotation.Schedule, ledger *rotation.Ledger, oracle holiday.Oracle, defaultWeeks, maxWeeks int) *CalendarService {
	return &CalendarService{
		schedule:     schedule,
		ledger:       ledger,
		oracle:       oracle,
		defaultWeeks: defaultWeeks,
		maxWeeks:     maxWeeks,
	}
}

// clampWeeks bounds the export horizon; zero or negative falls back to
// the configured default.
func (s *CalendarService) clampWeeks(weeks int) int {
	if weeks <= 0 {
		weeks = s.defaultWeeks
	}
	if weeks > s.maxWeeks {
		weeks = s.maxWeeks
	}
	return weeks
}

// ICal renders the schedule as an iCalendar document with one all-day
// event per day off and one week-long event per on-call shift.
func (s *CalendarService) ICal(weeks int) []byte {
	return s.renderICal(weeks, "")
}

// ICalForEngineer renders one engineer's personal calendar: their day-off
// events and the weeks they are on call.
func (s *CalendarService) ICalForEngineer(name string, weeks int) ([]byte, error) {
	if _, ok := s.schedule.Cycle().EngineerByName(name); !ok {
		return nil, apperrors.ErrEngineerNotFound
	}
	return s.renderICal(weeks, name), nil
}

func (s *CalendarService) renderICal(weeks int, only string) []byte {
	weeks = s.clampWeeks(weeks)
	adjuster := rotation.NewAdjuster(s.schedule, s.ledger, s.oracle)

	var buf bytes.Buffer
	writeLine := func(line string) {
		buf.WriteString(line)
		buf.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:-//rotation-manager-backend//schedule//EN")
	writeLine("CALSCALE:GREGORIAN")

	engineers := s.schedule.Cycle().Engineers()

	for week := 0; week < weeks; week++ {
		start := s.schedule.WeekStartDate(week)
		oncall := s.schedule.OnCallEngineer(week)
		pattern := adjuster.EffectivePattern(week)

		if only == "" || oncall.Name == only {
			writeLine("BEGIN:VEVENT")
			writeLine(fmt.Sprintf("UID:oncall-%d@rotation-manager", week))
			writeLine("DTSTART;VALUE=DATE:" + start.Format("20060102"))
			writeLine("DTEND;VALUE=DATE:" + start.AddDate(0, 0, 5).Format("20060102"))
			writeLine("SUMMARY:On-call: " + escapeICalText(oncall.Name))
			writeLine("END:VEVENT")
		}

		// The on-call engineer works the full week; their nominal day
		// off gets no event.
		for _, eng := range engineers {
			if eng.Name == oncall.Name {
				continue
			}
			if only != "" && eng.Name != only {
				continue
			}
			date := start.AddDate(0, 0, dayOffsetInWeek(pattern[eng.Name]))
			writeLine("BEGIN:VEVENT")
			writeLine(fmt.Sprintf("UID:dayoff-%d-%s@rotation-manager", week, eng.Name))
			writeLine("DTSTART;VALUE=DATE:" + date.Format("20060102"))
			writeLine("DTEND;VALUE=DATE:" + date.AddDate(0, 0, 1).Format("20060102"))
			writeLine("SUMMARY:" + escapeICalText(eng.Name) + " day off")
			writeLine("END:VEVENT")
		}
	}

	writeLine("END:VCALENDAR")
	return buf.Bytes()
}

// CSV renders the schedule as rows of week, start date, engineer, day
// off and on-call flag
func (s *CalendarService) CSV(weeks int) ([]byte, error) {
	weeks = s.clampWeeks(weeks)
	adjuster := rotation.NewAdjuster(s.schedule, s.ledger, s.oracle)
	engineers := s.schedule.Cycle().Engineers()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"week", "start_date", "engineer", "day_off", "on_call"}); err != nil {
		return nil, err
	}

	for week := 0; week < weeks; week++ {
		start := s.schedule.WeekStartDate(week).Format("2006-01-02")
		oncall := s.schedule.OnCallEngineer(week)
		pattern := adjuster.EffectivePattern(week)

		for _, eng := range engineers {
			dayOff := pattern[eng.Name]
			if eng.Name == oncall.Name {
				dayOff = "None"
			}
			row := []string{
				strconv.Itoa(week),
				start,
				eng.Name,
				dayOff,
				strconv.FormatBool(eng.Name == oncall.Name),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// dayOffsetInWeek maps a workweek day name to its offset from Monday.
func dayOffsetInWeek(day string) int {
	switch day {
	case "Monday":
		return 0
	case "Tuesday":
		return 1
	case "Wednesday":
		return 2
	case "Thursday":
		return 3
	case "Friday":
		return 4
	}
	return 0
}

func escapeICalText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '\\', ';', ',':
			buf.WriteByte('\\')
			buf.WriteRune(r)
		case '\n':
			buf.WriteString("\\n")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

package service

import (
	"time"

	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/holiday"
	"rotation-manager-backend/internal/rotation"
)

// PatternLayer selects which view of a week's assignments to return.
type PatternLayer string

const (
	// PatternLayerBase is the generated rotation before swaps and
	// coverage adjustments.
	PatternLayerBase PatternLayer = "base"
	// PatternLayerEffective folds in approved swaps and coverage
	// adjustments.
	PatternLayerEffective PatternLayer = "effective"
)

// IsValid checks if the PatternLayer is valid
func (l PatternLayer) IsValid() bool {
	return l == PatternLayerBase || l == PatternLayerEffective
}

// EngineerResponse represents one roster member in API responses
type EngineerResponse struct {
	Name      string `json:"name"`
	Letter    string `json:"letter"`
	Seniority int    `json:"seniority"`
	Country   string `json:"country,omitempty"`
	Region    string `json:"region,omitempty"`
}

// OnCallResponse represents the on-call assignment for a week
type OnCallResponse struct {
	Week      int              `json:"week"`
	StartDate string           `json:"start_date"`
	Engineer  EngineerResponse `json:"engineer"`
}

// WeekResponse represents the full rendered schedule for one week
type WeekResponse struct {
	Week        int                 `json:"week"`
	StartDate   string              `json:"start_date"`
	OnCall      EngineerResponse    `json:"on_call"`
	Days        map[string][]string `json:"days"`
	Pattern     map[string]string   `json:"pattern"`
	Adjustments map[string]string   `json:"adjustments,omitempty"`
}

// PatternResponse represents a week's day-off pattern in one layer
type PatternResponse struct {
	Week    int               `json:"week"`
	Layer   PatternLayer      `json:"layer"`
	Pattern map[string]string `json:"pattern"`
}

// FairnessResponse summarizes how day-off assignments spread across a
// full generation cycle
type FairnessResponse struct {
	CycleWeeks int                       `json:"cycle_weeks"`
	Engineers  map[string]map[string]int `json:"engineers"`
	OnCall     map[string]int            `json:"on_call"`
}

// ScheduleService handles business logic for schedule queries. All
// reads go through a fresh coverage adjuster so approved swaps are
// always reflected.
type ScheduleService struct {
	schedule     *rotation.Schedule
	ledger       *rotation.Ledger
	oracle       holiday.Oracle
	defaultWeeks int
	maxWeeks     int
}

// NewScheduleService creates a new schedule service
func NewScheduleService(schedule *rotation.Schedule, ledger *rotation.Ledger, oracle holiday.Oracle, defaultWeeks, maxWeeks int) *ScheduleService {
	return &ScheduleService{
		schedule:     schedule,
		ledger:       ledger,
		oracle:       oracle,
		defaultWeeks: defaultWeeks,
		maxWeeks:     maxWeeks,
	}
}

// adjuster returns a fresh coverage adjuster over the current ledger
// state. Week results are cached only within one service call.
func (s *ScheduleService) adjuster() *rotation.Adjuster {
	return rotation.NewAdjuster(s.schedule, s.ledger, s.oracle)
}

// checkHorizon bounds week queries to 4 weeks of history and the
// configured forward horizon.
func (s *ScheduleService) checkHorizon(week int) error {
	if week < -4 || week >= s.maxWeeks {
		return apperrors.ErrWeekOutOfHorizon
	}
	return nil
}

// DefaultWeeks returns the default forward horizon for exports
func (s *ScheduleService) DefaultWeeks() int {
	return s.defaultWeeks
}

// Engineers returns the roster in configuration order
func (s *ScheduleService) Engineers() []EngineerResponse {
	engineers := s.schedule.Cycle().Engineers()
	out := make([]EngineerResponse, 0, len(engineers))
	for _, eng := range engineers {
		out = append(out, toEngineerResponse(eng))
	}
	return out
}

// Week renders one week: day rosters, effective pattern and any
// coverage adjustments
func (s *ScheduleService) Week(week int) (*WeekResponse, error) {
	if err := s.checkHorizon(week); err != nil {
		return nil, err
	}

	adj := s.adjuster()
	oncall := s.schedule.OnCallEngineer(week)
	pattern := adj.EffectivePattern(week)

	return &WeekResponse{
		Week:        week,
		StartDate:   s.schedule.WeekStartDate(week).Format("2006-01-02"),
		OnCall:      toEngineerResponse(oncall),
		Days:        s.schedule.WeekScheduleFor(week, pattern),
		Pattern:     pattern,
		Adjustments: adj.Adjustments(week),
	}, nil
}

// Pattern returns the base or effective day-off pattern for a week
func (s *ScheduleService) Pattern(week int, layer PatternLayer) (*PatternResponse, error) {
	if err := s.checkHorizon(week); err != nil {
		return nil, err
	}
	if !layer.IsValid() {
		return nil, apperrors.NewValidationError("layer", "must be base or effective")
	}

	var pattern map[string]string
	if layer == PatternLayerBase {
		pattern = s.schedule.RotationPattern(week)
	} else {
		pattern = s.adjuster().EffectivePattern(week)
	}

	return &PatternResponse{Week: week, Layer: layer, Pattern: pattern}, nil
}

// OnCall returns the on-call engineer for a week
func (s *ScheduleService) OnCall(week int) (*OnCallResponse, error) {
	if err := s.checkHorizon(week); err != nil {
		return nil, err
	}
	return &OnCallResponse{
		Week:      week,
		StartDate: s.schedule.WeekStartDate(week).Format("2006-01-02"),
		Engineer:  toEngineerResponse(s.schedule.OnCallEngineer(week)),
	}, nil
}

// WeekForDate resolves a calendar date to its schedule week
func (s *ScheduleService) WeekForDate(dateStr string) (int, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return 0, apperrors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	week, ok := s.schedule.WeekForDate(date)
	if !ok {
		return 0, apperrors.ErrWeekNotFound
	}
	return week, nil
}

// Fairness counts base-pattern day-off assignments and on-call weeks
// per engineer over one full generation cycle. On-call weeks carry no
// day off and are excluded from the day-off tallies.
func (s *ScheduleService) Fairness() *FairnessResponse {
	cycle := s.schedule.Cycle()
	counts := make(map[string]map[string]int, len(cycle.Engineers()))
	oncall := make(map[string]int, len(cycle.Engineers()))
	for _, eng := range cycle.Engineers() {
		counts[eng.Name] = make(map[string]int)
		oncall[eng.Name] = 0
	}
	for week := 0; week < cycle.Len(); week++ {
		oncallName := s.schedule.OnCallEngineer(week).Name
		for name, day := range cycle.Pattern(week) {
			if name == oncallName {
				continue
			}
			counts[name][day]++
		}
		oncall[oncallName]++
	}
	return &FairnessResponse{
		CycleWeeks: cycle.Len(),
		Engineers:  counts,
		OnCall:     oncall,
	}
}

func toEngineerResponse(eng rotation.Engineer) EngineerResponse {
	return EngineerResponse{
		Name:      eng.Name,
		Letter:    eng.Letter,
		Seniority: eng.Seniority,
		Country:   eng.Country,
		Region:    eng.Region,
	}
}

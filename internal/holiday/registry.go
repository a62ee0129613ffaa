package holiday

import (
	"fmt"
	"strings"
	"time"

	apperrors "rotation-manager-backend/internal/errors"
)

// Provider computes the holidays of one country. Implementations memoize
// per-year tables inside the provider instance, so callers keep the
// memoization benefit without any shared global cache.
type Provider interface {
	Holidays(year int, region string) map[string]string // date (YYYY-MM-DD) -> name
}

// Registry maps country codes to providers. Construction fails fast for
// unsupported codes rather than silently returning empty results.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds a registry for the given country codes. Every code
// must have a known provider.
func NewRegistry(countries ...string) (*Registry, error) {
	r := &Registry{providers: make(map[string]Provider, len(countries))}
	for _, country := range countries {
		code := strings.ToUpper(country)
		if _, ok := r.providers[code]; ok {
			continue
		}
		switch code {
		case "US":
			r.providers[code] = newUSProvider()
		case "CA":
			r.providers[code] = newCanadaProvider()
		default:
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedHolidayCode, country)
		}
	}
	return r, nil
}

// IsHoliday implements Oracle. Unknown countries report no holidays;
// they were rejected at construction, so reaching one here means the
// roster changed underneath the registry.
func (r *Registry) IsHoliday(date time.Time, country, region string) bool {
	provider, ok := r.providers[strings.ToUpper(country)]
	if !ok {
		return false
	}
	_, found := provider.Holidays(date.Year(), region)[date.Format("2006-01-02")]
	return found
}

// HolidayName returns the holiday name for a date and location, or ""
// when the date is not a holiday there.
func (r *Registry) HolidayName(date time.Time, country, region string) string {
	provider, ok := r.providers[strings.ToUpper(country)]
	if !ok {
		return ""
	}
	return provider.Holidays(date.Year(), region)[date.Format("2006-01-02")]
}

// Supported lists the registered country codes.
func (r *Registry) Supported() []string {
	codes := make([]string, 0, len(r.providers))
	for code := range r.providers {
		codes = append(codes, code)
	}
	return codes
}

package handler

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	analyticsdomain "asmabeauty-go/internal/domain/analytics"
)

// parsePeriodQuery reads the shared vue/date query parameters. vue defaults
// to mois, date to now.
func parsePeriodQuery(query url.Values) (time.Time, analyticsdomain.Granularity, error) {
	granularity, err := analyticsdomain.ParseGranularity(query.Get("vue"))
	if err != nil {
		return time.Time{}, "", err
	}

	ref, err := parseDateParam(query.Get("date"))
	if err != nil {
		return time.Time{}, "", err
	}

	return ref, granularity, nil
}

func parseDateParam(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now(), nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// montantField accepts a JSON number or a numeric string; anything that does
// not parse coerces to 0 rather than failing the request.
type montantField float64

func (m *montantField) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*m = 0
		return nil
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*m = 0
		return nil
	}
	*m = montantField(parsed)
	return nil
}

package analytics

import (
	"fmt"
	"strings"
	"time"
)

type Granularity string

const (
	GranularityJour  Granularity = "jour"
	GranularityMois  Granularity = "mois"
	GranularityAnnee Granularity = "annee"
)

func ParseGranularity(value string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(GranularityMois):
		return GranularityMois, nil
	case string(GranularityJour):
		return GranularityJour, nil
	case string(GranularityAnnee):
		return GranularityAnnee, nil
	default:
		return "", fmt.Errorf("invalid granularity %q", value)
	}
}

// Period is a closed interval of instants with a display label.
type Period struct {
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
	Label string    `json:"label"`
}

// Window derives the reporting period containing ref for the given
// granularity. Bounds are computed in ref's location; the upper bound ends at
// 23:59:59.999 so same-day comparisons stay inclusive.
func Window(ref time.Time, g Granularity) Period {
	year, month, day := ref.Date()
	loc := ref.Location()

	switch g {
	case GranularityJour:
		return Period{
			From:  time.Date(year, month, day, 0, 0, 0, 0, loc),
			To:    endOfDay(year, month, day, loc),
			Label: frDate(ref),
		}
	case GranularityAnnee:
		return Period{
			From:  time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
			To:    endOfDay(year, time.December, 31, loc),
			Label: fmt.Sprintf("%d", year),
		}
	default:
		// Day 0 of the following month normalizes to the last day of this one.
		return Period{
			From:  time.Date(year, month, 1, 0, 0, 0, 0, loc),
			To:    endOfDay(year, month+1, 0, loc),
			Label: frMonthYear(ref),
		}
	}
}

// Contains reports whether t falls inside the period, both bounds inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}

func endOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 23, 59, 59, 999*int(time.Millisecond), loc)
}

// French calendar labels; the stdlib time package carries no locale data.

var frMonthsLong = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frMonthsShort = [...]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

func frDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func frMonthYear(t time.Time) string {
	return fmt.Sprintf("%s %d", frMonthsLong[t.Month()-1], t.Year())
}

func frMonthShort(t time.Time) string {
	return frMonthsShort[t.Month()-1]
}

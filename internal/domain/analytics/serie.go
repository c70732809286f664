package analytics

import (
	"sort"
	"strconv"

	"asmabeauty-go/internal/domain/records"
)

// Serie buckets sale amounts for the revenue chart: one bucket per month of
// the year, per day of the month, or per calendar date depending on the
// granularity. Buckets come out in chronological order of first occurrence.
func Serie(prestations []records.Prestation, g Granularity) []SeriePoint {
	type bucket struct {
		label   string
		montant float64
		first   int // index of first occurrence, ties broken by input order
	}

	byLabel := make(map[string]*bucket)
	order := make([]*bucket, 0)

	for i, p := range prestations {
		label := serieLabel(p, g)
		b, ok := byLabel[label]
		if !ok {
			b = &bucket{label: label, first: i}
			byLabel[label] = b
			order = append(order, b)
		}
		b.montant += p.Montant
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		ta := prestations[a.first].Date
		tb := prestations[b.first].Date
		if ta.Equal(tb) {
			return a.first < b.first
		}
		return ta.Before(tb)
	})

	points := make([]SeriePoint, 0, len(order))
	for _, b := range order {
		points = append(points, SeriePoint{Label: b.label, Montant: b.montant})
	}
	return points
}

func serieLabel(p records.Prestation, g Granularity) string {
	switch g {
	case GranularityAnnee:
		return frMonthShort(p.Date)
	case GranularityMois:
		return strconv.Itoa(p.Date.Day())
	default:
		return frDate(p.Date)
	}
}

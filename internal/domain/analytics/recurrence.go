package analytics

import (
	"math"
	"sort"
	"time"

	"asmabeauty-go/internal/domain/records"
)

// A client is recurrent when some adjacent pair of visits, sorted by date, is
// spaced within the rebooking cadence. Adjacent-only comparison is deliberate:
// visits at day 0, 25 and 80 qualify from the first gap alone.
const (
	recurrenceMinDays = 21.0
	recurrenceMaxDays = 35.0
)

// RecurrenceRate returns the percentage of distinct clients with at least one
// return visit 21 to 35 days after a previous one, over the full history.
func RecurrenceRate(history []records.Prestation) int {
	visits := make(map[ClientKey][]time.Time)
	for _, p := range history {
		key := NewClientKey(p.Client)
		visits[key] = append(visits[key], p.Date)
	}
	if len(visits) == 0 {
		return 0
	}

	recurrent := 0
	for _, times := range visits {
		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
		for i := 1; i < len(times); i++ {
			gapDays := math.Abs(times[i].Sub(times[i-1]).Hours() / 24)
			if gapDays >= recurrenceMinDays && gapDays <= recurrenceMaxDays {
				recurrent++
				break
			}
		}
	}

	return roundPct(float64(recurrent) / float64(len(visits)) * 100)
}

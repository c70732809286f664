package analytics

import (
	"context"
	"math"
	"time"

	"asmabeauty-go/internal/domain/records"
)

// Provider hands the analytics service the record collections. Satisfied by
// the records service.
type Provider interface {
	All(ctx context.Context) (records.Snapshot, error)
}

type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// KPIs computes the period summary, plus the previous-month comparison when
// the granularity is month.
func (s *Service) KPIs(ctx context.Context, ref time.Time, g Granularity) (Report, error) {
	snapshot, err := s.provider.All(ctx)
	if err != nil {
		return Report{}, err
	}

	periode := Window(ref, g)
	prestations := FilterPrestations(snapshot.Prestations, periode)
	depenses := FilterDepenses(snapshot.Depenses, periode)
	summary := Summarize(prestations, depenses)

	report := Report{Periode: periode, Summary: summary}
	if g == GranularityMois {
		comparison := CompareToPreviousMonth(snapshot.Prestations, ref, summary.CATotal)
		report.Comparaison = &comparison
	}

	return report, nil
}

func (s *Service) Repartition(ctx context.Context, ref time.Time, g Granularity) ([]RepartitionRow, error) {
	snapshot, err := s.provider.All(ctx)
	if err != nil {
		return nil, err
	}
	return Repartition(FilterPrestations(snapshot.Prestations, Window(ref, g))), nil
}

func (s *Service) Serie(ctx context.Context, ref time.Time, g Granularity) ([]SeriePoint, error) {
	snapshot, err := s.provider.All(ctx)
	if err != nil {
		return nil, err
	}
	return Serie(FilterPrestations(snapshot.Prestations, Window(ref, g)), g), nil
}

// Recurrence operates on the full history, not the active period.
func (s *Service) Recurrence(ctx context.Context) (int, error) {
	snapshot, err := s.provider.All(ctx)
	if err != nil {
		return 0, err
	}
	return RecurrenceRate(snapshot.Prestations), nil
}

// FilterPrestations keeps prestations whose instant falls inside the period,
// preserving input order.
func FilterPrestations(items []records.Prestation, p Period) []records.Prestation {
	result := make([]records.Prestation, 0, len(items))
	for _, item := range items {
		if p.Contains(item.Date) {
			result = append(result, item)
		}
	}
	return result
}

func FilterDepenses(items []records.Depense, p Period) []records.Depense {
	result := make([]records.Depense, 0, len(items))
	for _, item := range items {
		if p.Contains(item.Date) {
			result = append(result, item)
		}
	}
	return result
}

// Summarize computes the period KPIs. Every ratio is guarded, so the result
// is defined for empty inputs.
func Summarize(prestations []records.Prestation, depenses []records.Depense) Summary {
	summary := Summary{NbPrestations: len(prestations)}

	for _, p := range prestations {
		summary.CATotal += p.Montant
	}
	if summary.NbPrestations > 0 {
		summary.PanierMoyen = summary.CATotal / float64(summary.NbPrestations)
	}

	for _, d := range depenses {
		summary.TotalDepenses += d.Montant
		if d.Variable {
			summary.ChargesVariables += d.Montant
		}
	}
	summary.MargeNette = summary.CATotal - summary.ChargesVariables

	return summary
}

// CompareToPreviousMonth sums revenue over the calendar month preceding ref
// and derives the percentage change. The previous month is anchored at day 15
// to stay clear of month-length edge effects.
func CompareToPreviousMonth(history []records.Prestation, ref time.Time, currentCA float64) Comparison {
	anchor := time.Date(ref.Year(), ref.Month()-1, 15, 0, 0, 0, 0, ref.Location())
	window := Window(anchor, GranularityMois)

	prevCA := 0.0
	for _, p := range FilterPrestations(history, window) {
		prevCA += p.Montant
	}

	deltaPct := 0
	switch {
	case prevCA == 0:
		if currentCA > 0 {
			deltaPct = 100
		}
	default:
		deltaPct = roundPct((currentCA - prevCA) / prevCA * 100)
	}

	return Comparison{PrevLabel: window.Label, PrevCA: prevCA, DeltaPct: deltaPct}
}

// Repartition groups sale amounts by category with each group's share of the
// total. Rows come out in declared category order, unknown labels after in
// first-seen order, so charts render deterministically.
func Repartition(prestations []records.Prestation) []RepartitionRow {
	totals := make(map[string]float64, len(records.CategoriesPrestations))
	var extras []string
	for _, p := range prestations {
		if _, seen := totals[p.Categorie]; !seen && !records.IsPrestationCategorie(p.Categorie) {
			extras = append(extras, p.Categorie)
		}
		totals[p.Categorie] += p.Montant
	}

	grandTotal := 0.0
	for _, montant := range totals {
		grandTotal += montant
	}
	if grandTotal == 0 {
		grandTotal = 1
	}

	rows := make([]RepartitionRow, 0, len(totals))
	appendRow := func(categorie string) {
		montant, ok := totals[categorie]
		if !ok {
			return
		}
		rows = append(rows, RepartitionRow{
			Categorie: categorie,
			Montant:   montant,
			Pct:       roundPct(montant / grandTotal * 100),
		})
	}

	for _, categorie := range records.CategoriesPrestations {
		appendRow(categorie)
	}
	for _, categorie := range extras {
		appendRow(categorie)
	}

	return rows
}

func roundPct(value float64) int {
	return int(math.Round(value))
}

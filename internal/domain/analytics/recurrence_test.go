package analytics

import (
	"testing"
	"time"

	"asmabeauty-go/internal/domain/records"
)

func visit(date time.Time, client records.Client) records.Prestation {
	return records.Prestation{Date: date, Client: client, Categorie: "Déposes", Montant: 90}
}

func TestRecurrenceRateWithinWindow(t *testing.T) {
	client := records.Client{Nom: "Dupont", Prenom: "Anna", Email: "anna@example.com"}
	history := []records.Prestation{
		visit(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), client),
		visit(time.Date(2024, 3, 28, 10, 0, 0, 0, time.UTC), client),
	}

	// 27-day gap falls inside [21, 35].
	if rate := RecurrenceRate(history); rate != 100 {
		t.Fatalf("expected 100%%, got %d", rate)
	}
}

func TestRecurrenceRateGapTooShort(t *testing.T) {
	client := records.Client{Nom: "Dupont", Prenom: "Anna"}
	history := []records.Prestation{
		visit(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), client),
		visit(time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC), client),
	}

	if rate := RecurrenceRate(history); rate != 0 {
		t.Fatalf("expected 0%%, got %d", rate)
	}
}

func TestRecurrenceRateAdjacentPairsOnly(t *testing.T) {
	client := records.Client{Nom: "Dupont", Prenom: "Anna"}
	// Gaps of 25 then 55 days: first adjacent pair qualifies regardless of the rest.
	history := []records.Prestation{
		visit(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), client),
		visit(time.Date(2024, 3, 26, 10, 0, 0, 0, time.UTC), client),
		visit(time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC), client),
	}

	if rate := RecurrenceRate(history); rate != 100 {
		t.Fatalf("expected 100%%, got %d", rate)
	}
}

func TestRecurrenceRateMixedClients(t *testing.T) {
	recurrente := records.Client{Nom: "Dupont", Prenom: "Anna"}
	ponctuelle := records.Client{Nom: "Martin", Prenom: "Léa"}
	history := []records.Prestation{
		visit(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), recurrente),
		visit(time.Date(2024, 3, 26, 10, 0, 0, 0, time.UTC), recurrente),
		visit(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), ponctuelle),
	}

	if rate := RecurrenceRate(history); rate != 50 {
		t.Fatalf("expected 50%%, got %d", rate)
	}
}

func TestRecurrenceRateNoClients(t *testing.T) {
	if rate := RecurrenceRate(nil); rate != 0 {
		t.Fatalf("expected 0%% for empty history, got %d", rate)
	}
}

func TestClientKeyNormalization(t *testing.T) {
	a := NewClientKey(records.Client{Nom: " Dupont", Prenom: "ANNA", Email: "Anna@Example.com "})
	b := NewClientKey(records.Client{Nom: "dupont", Prenom: "anna", Email: "anna@example.com"})

	if a != b {
		t.Fatalf("expected normalized keys to match: %+v vs %+v", a, b)
	}

	c := NewClientKey(records.Client{Nom: "dupont", Prenom: "anna", Email: "other@example.com"})
	if a == c {
		t.Fatalf("different emails must not collapse into one client")
	}
}

func TestRecurrenceRateGroupsNormalizedIdentities(t *testing.T) {
	history := []records.Prestation{
		visit(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), records.Client{Nom: "Dupont ", Prenom: "Anna"}),
		visit(time.Date(2024, 3, 26, 10, 0, 0, 0, time.UTC), records.Client{Nom: "dupont", Prenom: "anna"}),
	}

	if rate := RecurrenceRate(history); rate != 100 {
		t.Fatalf("expected one recurrent client after normalization, got %d%%", rate)
	}
}

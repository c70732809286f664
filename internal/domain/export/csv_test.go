package export

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"asmabeauty-go/internal/domain/records"
)

type fakeProvider struct {
	snapshot records.Snapshot
}

func (f *fakeProvider) All(ctx context.Context) (records.Snapshot, error) {
	return f.snapshot, nil
}

func testSnapshot() records.Snapshot {
	return records.Snapshot{
		Prestations: []records.Prestation{
			{
				ID:   "p1",
				Date: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
				Client: records.Client{
					Nom:    `Dupont "Nini"`,
					Prenom: "Anna",
					Email:  "anna@example.com",
				},
				Categorie:   "Déposes",
				Montant:     45.5,
				Commentaire: "retouche, devis",
			},
		},
		Depenses: []records.Depense{
			{
				ID:        "d1",
				Date:      time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
				Categorie: "loyer",
				Montant:   600,
				Variable:  true,
			},
		},
	}
}

func TestBuildLayout(t *testing.T) {
	data := Build(testSnapshot())
	lines := strings.Split(data, "\n")

	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != `"type","date","categorie","montant","nom","prenom","adresse","email","telephone","commentaire","variable"` {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"prestation","2024-03-01T10:00:00.000Z"`) {
		t.Fatalf("unexpected prestation row: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"Dupont ""Nini"""`) {
		t.Fatalf("embedded quotes must be doubled: %s", lines[1])
	}
	if !strings.HasSuffix(lines[1], `,""`) {
		t.Fatalf("prestation variable column must be empty: %s", lines[1])
	}
	if !strings.HasSuffix(lines[2], `"oui"`) {
		t.Fatalf("variable depense must export oui: %s", lines[2])
	}
}

// Field values survive a parse round trip even with embedded quotes and commas.
func TestBuildRoundTrip(t *testing.T) {
	data := Build(testSnapshot())

	rows, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	prestation := rows[1]
	if prestation[4] != `Dupont "Nini"` {
		t.Fatalf("nom mangled: %q", prestation[4])
	}
	if prestation[9] != "retouche, devis" {
		t.Fatalf("commentaire mangled: %q", prestation[9])
	}
	if prestation[3] != "45.5" {
		t.Fatalf("montant mangled: %q", prestation[3])
	}

	depense := rows[2]
	if depense[0] != "depense" || depense[4] != "" || depense[10] != "oui" {
		t.Fatalf("unexpected depense row: %v", depense)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	if got := Filename(now); got != "asmabeauty_export_2024-03-15.csv" {
		t.Fatalf("unexpected filename: %s", got)
	}
}

func TestServiceCSV(t *testing.T) {
	svc := NewService(&fakeProvider{snapshot: testSnapshot()})
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC) }

	filename, data, err := svc.CSV(context.Background())
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if filename != "asmabeauty_export_2024-03-15.csv" {
		t.Fatalf("unexpected filename: %s", filename)
	}
	if !strings.HasPrefix(data, `"type",`) {
		t.Fatalf("unexpected data prefix: %s", data[:20])
	}
}

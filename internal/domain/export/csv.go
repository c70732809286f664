package export

import (
	"context"
	"strconv"
	"strings"
	"time"

	"asmabeauty-go/internal/domain/records"
)

// Provider hands the exporter the full record collections.
type Provider interface {
	All(ctx context.Context) (records.Snapshot, error)
}

type Service struct {
	provider Provider
	now      func() time.Time
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider, now: time.Now}
}

// CSV renders the full history and returns it with the dated filename.
func (s *Service) CSV(ctx context.Context) (filename string, data string, err error) {
	snapshot, err := s.provider.All(ctx)
	if err != nil {
		return "", "", err
	}
	return Filename(s.now()), Build(snapshot), nil
}

var header = []string{
	"type", "date", "categorie", "montant",
	"nom", "prenom", "adresse", "email", "telephone",
	"commentaire", "variable",
}

// Build renders the export: header row, one row per prestation, then one per
// depense. Every field is double-quoted with internal quotes doubled; the
// format is fixed by the original export and encoding/csv's minimal quoting
// would not reproduce it.
func Build(snapshot records.Snapshot) string {
	var sb strings.Builder
	writeRow(&sb, header)

	for _, p := range snapshot.Prestations {
		writeRow(&sb, []string{
			"prestation",
			isoDate(p.Date),
			p.Categorie,
			formatMontant(p.Montant),
			p.Client.Nom,
			p.Client.Prenom,
			p.Client.Adresse,
			p.Client.Email,
			p.Client.Telephone,
			p.Commentaire,
			"",
		})
	}

	for _, d := range snapshot.Depenses {
		variable := "non"
		if d.Variable {
			variable = "oui"
		}
		writeRow(&sb, []string{
			"depense",
			isoDate(d.Date),
			d.Categorie,
			formatMontant(d.Montant),
			"", "", "", "", "",
			d.Commentaire,
			variable,
		})
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func Filename(now time.Time) string {
	return "asmabeauty_export_" + now.Format("2006-01-02") + ".csv"
}

func writeRow(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
}

func isoDate(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func formatMontant(montant float64) string {
	return strconv.FormatFloat(montant, 'f', -1, 64)
}

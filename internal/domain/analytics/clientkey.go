package analytics

import (
	"strings"

	"asmabeauty-go/internal/domain/records"
)

// ClientKey groups prestations likely belonging to the same person. Fields
// are trimmed and case-folded so "Dupont " and "dupont" land in one group;
// two prestations belong to the same client iff all four normalized fields
// match.
type ClientKey struct {
	Email     string
	Telephone string
	Nom       string
	Prenom    string
}

func NewClientKey(c records.Client) ClientKey {
	return ClientKey{
		Email:     normalizeIdentity(c.Email),
		Telephone: normalizeIdentity(c.Telephone),
		Nom:       normalizeIdentity(c.Nom),
		Prenom:    normalizeIdentity(c.Prenom),
	}
}

func normalizeIdentity(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

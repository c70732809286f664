package records

import "time"

// Client is the sub-record attached to a prestation. Only nom and prenom are
// required by the entry form; the rest improves recurrence matching.
type Client struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Adresse   string `json:"adresse,omitempty"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
}

// Prestation is a billable service rendered to a client.
// JSON field names follow the persisted-blob contract.
type Prestation struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Client      Client    `json:"client"`
	Categorie   string    `json:"categorie"`
	Montant     float64   `json:"montant"`
	Commentaire string    `json:"commentaire,omitempty"`
}

// Depense is a business expense. Variable expenses count against net margin.
type Depense struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Categorie   string    `json:"categorie"`
	Montant     float64   `json:"montant"`
	Commentaire string    `json:"commentaire,omitempty"`
	Variable    bool      `json:"variable"`
}

// Snapshot is a copy of the full record collections, newest first.
type Snapshot struct {
	Prestations []Prestation
	Depenses    []Depense
}

type CreatePrestationInput struct {
	Date        time.Time
	Client      Client
	Categorie   string
	Montant     float64
	Commentaire string
}

type CreateDepenseInput struct {
	Date        time.Time
	Categorie   string
	Montant     float64
	Commentaire string
	Variable    bool
}

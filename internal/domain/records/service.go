package records

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
)

// document is the persisted-blob layout. Field names are part of the
// compatibility contract and must not change.
type document struct {
	Prestations []Prestation `json:"prestations"`
	Depenses    []Depense    `json:"depenses"`
}

// Service holds the in-memory record collections and writes them wholesale to
// the blob store on every mutation. Handlers run concurrently, so all access
// goes through the mutex.
type Service struct {
	store Store
	key   string

	mu          sync.Mutex
	prestations []Prestation
	depenses    []Depense
}

// NewService reads the blob under key and initializes the collections.
// A missing or unparsable blob yields empty collections, not an error.
func NewService(ctx context.Context, store Store, key string) (*Service, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read blob %q: %w", key, err)
	}

	var doc document
	if ok {
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			doc = document{}
		}
	}

	return &Service{
		store:       store,
		key:         key,
		prestations: doc.Prestations,
		depenses:    doc.Depenses,
	}, nil
}

func (s *Service) AddPrestation(ctx context.Context, input CreatePrestationInput) (Prestation, error) {
	if !IsPrestationCategorie(input.Categorie) {
		return Prestation{}, ErrUnknownCategorie
	}

	prestation := Prestation{
		ID:          uuid.NewString(),
		Date:        input.Date,
		Client:      input.Client,
		Categorie:   input.Categorie,
		Montant:     coerceMontant(input.Montant),
		Commentaire: input.Commentaire,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prestations := prepend(s.prestations, prestation)
	if err := s.persist(ctx, prestations, s.depenses); err != nil {
		return Prestation{}, err
	}

	s.prestations = prestations
	return prestation, nil
}

func (s *Service) AddDepense(ctx context.Context, input CreateDepenseInput) (Depense, error) {
	if !IsDepenseCategorie(input.Categorie) {
		return Depense{}, ErrUnknownCategorie
	}

	depense := Depense{
		ID:          uuid.NewString(),
		Date:        input.Date,
		Categorie:   input.Categorie,
		Montant:     coerceMontant(input.Montant),
		Commentaire: input.Commentaire,
		Variable:    input.Variable,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	depenses := prepend(s.depenses, depense)
	if err := s.persist(ctx, s.prestations, depenses); err != nil {
		return Depense{}, err
	}

	s.depenses = depenses
	return depense, nil
}

func (s *Service) RemovePrestation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prestations, removed := removePrestationByID(s.prestations, id)
	if !removed {
		return ErrPrestationNotFound
	}
	if err := s.persist(ctx, prestations, s.depenses); err != nil {
		return err
	}

	s.prestations = prestations
	return nil
}

func (s *Service) RemoveDepense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	depenses, removed := removeDepenseByID(s.depenses, id)
	if !removed {
		return ErrDepenseNotFound
	}
	if err := s.persist(ctx, s.prestations, depenses); err != nil {
		return err
	}

	s.depenses = depenses
	return nil
}

// All returns a copy of both collections, newest first.
func (s *Service) All(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Prestations: append([]Prestation(nil), s.prestations...),
		Depenses:    append([]Depense(nil), s.depenses...),
	}, nil
}

// persist writes the candidate collections before they replace the in-memory
// state, so a failed write leaves memory consistent with the stored blob.
func (s *Service) persist(ctx context.Context, prestations []Prestation, depenses []Depense) error {
	doc := document{Prestations: prestations, Depenses: depenses}
	if doc.Prestations == nil {
		doc.Prestations = []Prestation{}
	}
	if doc.Depenses == nil {
		doc.Depenses = []Depense{}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal blob: %w", err)
	}
	if err := s.store.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("write blob %q: %w", s.key, err)
	}
	return nil
}

// coerceMontant maps anything non-finite to 0. NaN amounts would otherwise
// poison every aggregation and fail JSON marshalling.
func coerceMontant(montant float64) float64 {
	if math.IsNaN(montant) || math.IsInf(montant, 0) {
		return 0
	}
	return montant
}

func prepend[T any](items []T, item T) []T {
	result := make([]T, 0, len(items)+1)
	result = append(result, item)
	return append(result, items...)
}

func removePrestationByID(items []Prestation, id string) ([]Prestation, bool) {
	result := make([]Prestation, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		result = append(result, item)
	}
	return result, removed
}

func removeDepenseByID(items []Depense, id string) ([]Depense, bool) {
	result := make([]Depense, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		result = append(result, item)
	}
	return result, removed
}

package records

import "errors"

var (
	ErrPrestationNotFound = errors.New("prestation not found")
	ErrDepenseNotFound    = errors.New("depense not found")
	ErrUnknownCategorie   = errors.New("unknown categorie")
)

package handler

import (
	"net/http"

	recordsdomain "asmabeauty-go/internal/domain/records"
)

type categoriesResponse struct {
	Prestations []string `json:"prestations"`
	Depenses    []string `json:"depenses"`
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{
		Prestations: recordsdomain.CategoriesPrestations,
		Depenses:    recordsdomain.CategoriesDepenses,
	})
}

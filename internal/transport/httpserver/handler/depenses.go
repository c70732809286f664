package handler

import (
	"errors"
	"net/http"
	"strings"

	analyticsdomain "asmabeauty-go/internal/domain/analytics"
	recordsdomain "asmabeauty-go/internal/domain/records"
	"github.com/go-chi/chi/v5"
)

type createDepenseRequest struct {
	Date        string       `json:"date"`
	Categorie   string       `json:"categorie"`
	Montant     montantField `json:"montant"`
	Commentaire string       `json:"commentaire"`
	Variable    bool         `json:"variable"`
}

type depenseListResponse struct {
	Items        []recordsdomain.Depense `json:"items"`
	Total        int                     `json:"total"`
	MontantTotal float64                 `json:"montant_total"`
}

func (h *Handlers) ListDepenses(w http.ResponseWriter, r *http.Request) {
	ref, granularity, err := parsePeriodQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid vue or date")
		return
	}

	snapshot, err := h.Records.All(r.Context())
	if err != nil {
		h.log.InternalError("depenses.list: read records failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	window := analyticsdomain.Window(ref, granularity)
	items := analyticsdomain.FilterDepenses(snapshot.Depenses, window)

	montantTotal := 0.0
	for _, item := range items {
		montantTotal += item.Montant
	}

	writeJSON(w, http.StatusOK, depenseListResponse{
		Items:        items,
		Total:        len(items),
		MontantTotal: montantTotal,
	})
}

func (h *Handlers) CreateDepense(w http.ResponseWriter, r *http.Request) {
	var req createDepenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	created, err := h.Records.AddDepense(r.Context(), recordsdomain.CreateDepenseInput{
		Date:        date,
		Categorie:   req.Categorie,
		Montant:     float64(req.Montant),
		Commentaire: req.Commentaire,
		Variable:    req.Variable,
	})
	if err != nil {
		if errors.Is(err, recordsdomain.ErrUnknownCategorie) {
			h.log.BusinessError("depenses.create: unknown categorie", err, "categorie", req.Categorie)
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown categorie")
			return
		}
		h.log.InternalError("depenses.create: add depense failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteDepense(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	if err := h.Records.RemoveDepense(r.Context(), id); err != nil {
		if errors.Is(err, recordsdomain.ErrDepenseNotFound) {
			h.log.BusinessError("depenses.delete: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "depense_not_found", "depense not found")
			return
		}
		h.log.InternalError("depenses.delete: remove failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

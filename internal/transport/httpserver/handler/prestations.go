package handler

import (
	"errors"
	"net/http"
	"strings"

	analyticsdomain "asmabeauty-go/internal/domain/analytics"
	recordsdomain "asmabeauty-go/internal/domain/records"
	"github.com/go-chi/chi/v5"
)

type createPrestationRequest struct {
	Date        string       `json:"date"`
	Client      clientFields `json:"client"`
	Categorie   string       `json:"categorie"`
	Montant     montantField `json:"montant"`
	Commentaire string       `json:"commentaire"`
}

type clientFields struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Adresse   string `json:"adresse"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

type prestationListResponse struct {
	Items        []recordsdomain.Prestation `json:"items"`
	Total        int                        `json:"total"`
	MontantTotal float64                    `json:"montant_total"`
}

func (h *Handlers) ListPrestations(w http.ResponseWriter, r *http.Request) {
	ref, granularity, err := parsePeriodQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid vue or date")
		return
	}

	snapshot, err := h.Records.All(r.Context())
	if err != nil {
		h.log.InternalError("prestations.list: read records failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	window := analyticsdomain.Window(ref, granularity)
	items := analyticsdomain.FilterPrestations(snapshot.Prestations, window)

	montantTotal := 0.0
	for _, item := range items {
		montantTotal += item.Montant
	}

	writeJSON(w, http.StatusOK, prestationListResponse{
		Items:        items,
		Total:        len(items),
		MontantTotal: montantTotal,
	})
}

func (h *Handlers) CreatePrestation(w http.ResponseWriter, r *http.Request) {
	var req createPrestationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	created, err := h.Records.AddPrestation(r.Context(), recordsdomain.CreatePrestationInput{
		Date: date,
		Client: recordsdomain.Client{
			Nom:       req.Client.Nom,
			Prenom:    req.Client.Prenom,
			Adresse:   req.Client.Adresse,
			Email:     req.Client.Email,
			Telephone: req.Client.Telephone,
		},
		Categorie:   req.Categorie,
		Montant:     float64(req.Montant),
		Commentaire: req.Commentaire,
	})
	if err != nil {
		if errors.Is(err, recordsdomain.ErrUnknownCategorie) {
			h.log.BusinessError("prestations.create: unknown categorie", err, "categorie", req.Categorie)
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown categorie")
			return
		}
		h.log.InternalError("prestations.create: add prestation failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeletePrestation(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	if err := h.Records.RemovePrestation(r.Context(), id); err != nil {
		if errors.Is(err, recordsdomain.ErrPrestationNotFound) {
			h.log.BusinessError("prestations.delete: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "prestation_not_found", "prestation not found")
			return
		}
		h.log.InternalError("prestations.delete: remove failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

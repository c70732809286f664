package handler

import (
	"net/http"
)

func (h *Handlers) AnalyticsKPIs(w http.ResponseWriter, r *http.Request) {
	ref, granularity, err := parsePeriodQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid vue or date")
		return
	}

	report, err := h.Analytics.KPIs(r.Context(), ref, granularity)
	if err != nil {
		h.log.InternalError("analytics.kpis: build report failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handlers) AnalyticsRepartition(w http.ResponseWriter, r *http.Request) {
	ref, granularity, err := parsePeriodQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid vue or date")
		return
	}

	rows, err := h.Analytics.Repartition(r.Context(), ref, granularity)
	if err != nil {
		h.log.InternalError("analytics.repartition: build rows failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) AnalyticsSerie(w http.ResponseWriter, r *http.Request) {
	ref, granularity, err := parsePeriodQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid vue or date")
		return
	}

	points, err := h.Analytics.Serie(r.Context(), ref, granularity)
	if err != nil {
		h.log.InternalError("analytics.serie: build serie failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, points)
}

func (h *Handlers) AnalyticsRecurrence(w http.ResponseWriter, r *http.Request) {
	rate, err := h.Analytics.Recurrence(r.Context())
	if err != nil {
		h.log.InternalError("analytics.recurrence: compute rate failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"taux_recurrence": rate})
}

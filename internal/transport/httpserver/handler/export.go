package handler

import (
	"net/http"
)

func (h *Handlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.Export.CSV(r.Context())
	if err != nil {
		h.log.InternalError("export.csv: build export failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(data))
}

//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"asmabeauty-go/internal/config"
	analyticsdomain "asmabeauty-go/internal/domain/analytics"
	exportdomain "asmabeauty-go/internal/domain/export"
	recordsdomain "asmabeauty-go/internal/domain/records"
	"asmabeauty-go/internal/repository/blob"
	"asmabeauty-go/internal/transport/httpserver"
	"asmabeauty-go/internal/transport/httpserver/handler"
	"asmabeauty-go/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	store := blob.NewMemory()
	log := logger.New(io.Discard, slog.LevelError, "text")

	records, err := recordsdomain.NewService(context.Background(), store, config.DefaultStorageKey)
	if err != nil {
		t.Fatalf("records service: %v", err)
	}

	handlers := handler.New(
		records,
		analyticsdomain.NewService(records),
		exportdomain.NewService(records),
		log,
	)

	cfg := config.Config{HTTPPort: "0"}
	router := httpserver.NewRouter(cfg, handlers)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestDashboardFlow(t *testing.T) {
	env := setupE2E(t)

	resp, _ := env.do(t, http.MethodGet, "/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: status %d", resp.StatusCode)
	}

	client := map[string]string{"nom": "Dupont", "prenom": "Anna", "email": "anna@example.com"}
	resp, raw := env.do(t, http.MethodPost, "/api/prestations", map[string]any{
		"date":      "2024-03-01T10:00:00Z",
		"client":    client,
		"categorie": "Déposes",
		"montant":   100,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create prestation: status %d body %s", resp.StatusCode, raw)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil || created.ID == "" {
		t.Fatalf("create prestation: bad body %s", raw)
	}

	resp, raw = env.do(t, http.MethodPost, "/api/prestations", map[string]any{
		"date":      "2024-03-28T10:00:00Z",
		"client":    client,
		"categorie": "Déposes",
		"montant":   "50", // string montant coerces
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create second prestation: status %d body %s", resp.StatusCode, raw)
	}

	resp, raw = env.do(t, http.MethodPost, "/api/depenses", map[string]any{
		"date":      "2024-03-10T09:00:00Z",
		"categorie": "loyer",
		"montant":   30,
		"variable":  true,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create depense: status %d body %s", resp.StatusCode, raw)
	}

	resp, raw = env.do(t, http.MethodGet, "/api/analytics/kpis?vue=mois&date=2024-03-15", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("kpis: status %d", resp.StatusCode)
	}
	var report struct {
		KPIs struct {
			CATotal     float64 `json:"ca_total"`
			Nb          int     `json:"nb_prestations"`
			PanierMoyen float64 `json:"panier_moyen"`
			MargeNette  float64 `json:"marge_nette"`
		} `json:"kpis"`
		Comparaison *struct {
			DeltaPct int `json:"delta_pct"`
		} `json:"comparaison"`
	}
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatalf("kpis: bad body %s", raw)
	}
	if report.KPIs.CATotal != 150 || report.KPIs.Nb != 2 || report.KPIs.PanierMoyen != 75 {
		t.Fatalf("unexpected kpis: %+v", report.KPIs)
	}
	if report.KPIs.MargeNette != 120 {
		t.Fatalf("unexpected marge nette: %v", report.KPIs.MargeNette)
	}
	if report.Comparaison == nil || report.Comparaison.DeltaPct != 100 {
		t.Fatalf("unexpected comparaison: %+v", report.Comparaison)
	}

	resp, raw = env.do(t, http.MethodGet, "/api/analytics/recurrence", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("recurrence: status %d", resp.StatusCode)
	}
	var recurrence struct {
		Taux int `json:"taux_recurrence"`
	}
	if err := json.Unmarshal(raw, &recurrence); err != nil || recurrence.Taux != 100 {
		t.Fatalf("recurrence: body %s err %v", raw, err)
	}

	resp, raw = env.do(t, http.MethodGet, "/api/export/csv", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export: status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("export: content type %q", ct)
	}
	if !strings.Contains(resp.Header.Get("Content-Disposition"), "asmabeauty_export_") {
		t.Fatalf("export: missing dated filename")
	}
	if !strings.HasPrefix(string(raw), `"type",`) {
		t.Fatalf("export: unexpected body prefix %q", string(raw[:16]))
	}

	resp, _ = env.do(t, http.MethodDelete, "/api/prestations/"+created.ID, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete prestation: status %d", resp.StatusCode)
	}

	resp, raw = env.do(t, http.MethodGet, "/api/prestations?vue=mois&date=2024-03-15", nil)
	var list struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(raw, &list); err != nil || list.Total != 1 {
		t.Fatalf("list after delete: body %s err %v", raw, err)
	}

	resp, _ = env.do(t, http.MethodPost, "/api/prestations", map[string]any{
		"categorie": "manucure",
		"montant":   10,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown categorie: status %d", resp.StatusCode)
	}
}

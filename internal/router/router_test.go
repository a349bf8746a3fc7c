package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"med-reminder/internal/config"
	"med-reminder/internal/router"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	if mutate != nil {
		mutate(cfg)
	}

	h, err := router.New(router.Options{Cfg: cfg, Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("router.New error: %v", err)
	}

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func TestHTTP_EndToEnd_UsersAndPrescriptions(t *testing.T) {
	ts := newTestServer(t, nil)

	alice := map[string]any{
		"name":          "Alice",
		"branchName":    "Main St",
		"branchAddress": "123 Rd",
		"ailments":      "none",
		"phoneNumber":   "555-1234",
	}

	// 1) alta de usuario
	var aliceUUID string
	{
		st, body := doReq(t, ts.URL, "POST", "/data/users", alice)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating user, got %d body=%s", st, body)
		}
		var out struct {
			Success bool `json:"success"`
			User    struct {
				UUID string `json:"uuid"`
				Name string `json:"name"`
			} `json:"user"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode create response: %v", err)
		}
		if !out.Success || out.User.UUID == "" || out.User.Name != "Alice" {
			t.Fatalf("unexpected create response: %s", body)
		}
		aliceUUID = out.User.UUID
	}

	// 2) duplicado por name => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/data/users", alice)
		if st != http.StatusBadRequest || !strings.Contains(string(body), "User already exists") {
			t.Fatalf("expected duplicate rejection, got %d body=%s", st, body)
		}
	}

	// 3) búsqueda por name
	{
		st, body := doReq(t, ts.URL, "GET", "/data/users?name=Alice", nil)
		if st != http.StatusOK || !strings.Contains(string(body), aliceUUID) {
			t.Fatalf("expected 200 with stored user, got %d body=%s", st, body)
		}
	}

	// 4) sin query param => 400; desconocido => 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/data/users", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without name param, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/data/users?name=Ghost", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown user, got %d", st)
		}
	}

	// 5) listado completo
	{
		st, body := doReq(t, ts.URL, "GET", "/data/users/all", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing users, got %d", st)
		}
		var all []map[string]any
		if err := json.Unmarshal(body, &all); err != nil || len(all) != 1 {
			t.Fatalf("expected 1 user, got %s err=%v", body, err)
		}
	}

	// 6) alta de prescripción con fechas sin normalizar
	var medUUID string
	{
		st, body := doReq(t, ts.URL, "POST", "/data/prescriptions", map[string]any{
			"patientName":        "Alice",
			"medicationName":     "Aspirin",
			"consumptionDetails": "with food",
			"prescriptionDate":   "2024-01-01",
			"expDate":            "2025-01-01",
			"interval":           "every 8 hours",
			"amount":             500,
			"dosage":             1,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating medication, got %d body=%s", st, body)
		}
		var out struct {
			Medication struct {
				UUID             string `json:"uuid"`
				PrescriptionDate string `json:"prescriptionDate"`
				HasTaken         bool   `json:"hasTaken"`
				ImgURL           string `json:"img_url"`
			} `json:"medication"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode medication response: %v", err)
		}
		if out.Medication.PrescriptionDate != "2024-01-01T00:00:00Z" {
			t.Fatalf("expected normalized date, got %q", out.Medication.PrescriptionDate)
		}
		if out.Medication.HasTaken {
			t.Fatalf("expected hasTaken=false without lastTakenDate")
		}
		if out.Medication.ImgURL == "" {
			t.Fatalf("expected server-assigned img_url")
		}
		medUUID = out.Medication.UUID
	}

	// 7) amount como texto => 400 identificando el campo
	{
		st, body := doReq(t, ts.URL, "POST", "/data/prescriptions", map[string]any{
			"patientName":        "Alice",
			"medicationName":     "Aspirin",
			"consumptionDetails": "with food",
			"prescriptionDate":   "2024-01-01",
			"expDate":            "2025-01-01",
			"interval":           "every 8 hours",
			"amount":             "500",
			"dosage":             1,
		})
		if st != http.StatusBadRequest || !strings.Contains(string(body), "amount") {
			t.Fatalf("expected field-identifying 400, got %d body=%s", st, body)
		}
	}

	// 8) prescripciones del paciente
	{
		st, body := doReq(t, ts.URL, "GET", "/data/prescriptions?name=Alice", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing prescriptions, got %d", st)
		}
		var meds []map[string]any
		if err := json.Unmarshal(body, &meds); err != nil || len(meds) != 1 {
			t.Fatalf("expected 1 medication, got %s err=%v", body, err)
		}
	}

	// 9) registrar toma
	{
		st, body := doReq(t, ts.URL, "PUT", "/data/prescriptions", map[string]any{
			"uuid":    medUUID,
			"newDate": "2024-02-01",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 recording dose, got %d body=%s", st, body)
		}
		var out struct {
			UpdatedMedication struct {
				LastTakenDate string `json:"lastTakenDate"`
				HasTaken      bool   `json:"hasTaken"`
			} `json:"updatedMedication"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode update response: %v", err)
		}
		if out.UpdatedMedication.LastTakenDate != "2024-02-01T00:00:00Z" || !out.UpdatedMedication.HasTaken {
			t.Fatalf("unexpected update: %s", body)
		}
	}

	// 10) uuid desconocido => 404; body incompleto => 400
	{
		st, _ := doReq(t, ts.URL, "PUT", "/data/prescriptions", map[string]any{
			"uuid":    "ghost",
			"newDate": "2024-02-01",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown medication, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "PUT", "/data/prescriptions", map[string]any{"uuid": medUUID})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without newDate, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t, nil)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health response: %d %q", st, body)
	}
}

func TestHTTP_AllowList_DeniesUnlistedClient(t *testing.T) {
	ts := newTestServer(t, func(cfg *config.Config) {
		cfg.AllowedIPs = []string{"10.9.9.9"} // el test corre desde loopback
	})

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusForbidden || !strings.Contains(string(body), "Access denied") {
		t.Fatalf("expected 403 Access denied, got %d body=%s", st, body)
	}
}

func TestHTTP_AllowList_EmptyListIsDisabled(t *testing.T) {
	ts := newTestServer(t, func(cfg *config.Config) {
		cfg.AllowedIPs = nil
	})

	st, _ := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected allow-list disabled, got %d", st)
	}
}

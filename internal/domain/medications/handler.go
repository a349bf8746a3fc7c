package medications

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/data/prescriptions", func(pr chi.Router) {
		pr.Get("/", listByPatientHandler(svc))
		pr.Post("/", createMedicationHandler(svc))
		pr.Put("/", recordDoseTakenHandler(svc))
	})
}

type createMedicationResponse struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Medication Medication `json:"medication"`
}

type updateMedicationRequest struct {
	UUID    *string `json:"uuid"`
	NewDate *string `json:"newDate"`
}

type updateMedicationResponse struct {
	Success           bool       `json:"success"`
	Message           string     `json:"message"`
	UpdatedMedication Medication `json:"updatedMedication"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// @Summary Listar prescripciones de un paciente
// @Param name query string true "nombre del paciente"
// @Success 200 {array} Medication
// @Failure 400 {object} errorResponse
// @Router /data/prescriptions [get]
func listByPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, "Missing 'name' query parameter")
			return
		}

		items, err := svc.ListByPatient(r.Context(), name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to read medication data")
			return
		}
		if items == nil {
			items = []Medication{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// @Summary Crear prescripción
// @Accept json
// @Success 201 {object} createMedicationResponse
// @Failure 400 {object} errorResponse
// @Router /data/prescriptions [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := DecodeCreateRequest(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		m, err := svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to write medication data")
			return
		}

		writeJSON(w, http.StatusCreated, createMedicationResponse{
			Success:    true,
			Message:    "Medication added successfully",
			Medication: m,
		})
	}
}

// recordDoseTakenHandler registra una toma: body {uuid, newDate}.
// @Summary Registrar toma de medicación
// @Accept json
// @Success 200 {object} updateMedicationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /data/prescriptions [put]
func recordDoseTakenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}
		if req.UUID == nil || req.NewDate == nil || *req.UUID == "" || *req.NewDate == "" {
			writeError(w, http.StatusBadRequest, "Missing 'uuid' or 'newDate' in request body")
			return
		}

		m, err := svc.RecordDoseTaken(r.Context(), *req.UUID, *req.NewDate)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Medication not found")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "Failed to update medication data")
			}
			return
		}

		writeJSON(w, http.StatusOK, updateMedicationResponse{
			Success:           true,
			Message:           "Medication updated successfully",
			UpdatedMedication: m,
		})
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (users/medications) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

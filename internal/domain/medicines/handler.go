package medicines

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"medication-adherence/internal/domain/schedule"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/patients/{patientID}/medicines", func(mr chi.Router) {
		mr.Post("/", createMedicineHandler(svc))
		mr.Get("/", listMedicinesHandler(svc))
		mr.Get("/{medicineID}", getMedicineHandler(svc))
	})
}

// medicineResponse aplana el registro canónico junto con los metadatos.
type medicineResponse struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	schedule.MedicineRecord
	CreatedAt time.Time `json:"createdAt"`
}

type createMedicineResponse struct {
	Medicine  medicineResponse `json:"medicine"`
	Outcome   schedule.Outcome `json:"outcome"`
	Defaulted []schedule.Field `json:"defaulted,omitempty"`
}

// createMedicineHandler godoc
// @Summary Guardar medicamento de un paciente
// @Description Normaliza el payload (mismas reglas que la extracción: defaults, intake times canónicos, redondeo de dosis) y lo guarda. Sin nombre => 400.
// @Tags medicines
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body schedule.MedicineRecord true "Medicamento (campos sueltos aceptados)"
// @Success 201 {object} createMedicineResponse
// @Failure 400 {string} string "invalid json / name required"
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/medicines [post]
func createMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID := chi.URLParam(r, "patientID")

		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, res, err := svc.Create(r.Context(), patientID, schedule.Candidate(raw))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, createMedicineResponse{
			Medicine:  toMedicineResponse(m),
			Outcome:   res.Outcome,
			Defaulted: res.Defaulted,
		})
	}
}

// listMedicinesHandler godoc
// @Summary Listar medicamentos de un paciente
// @Tags medicines
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {array} medicineResponse
// @Failure 400 {string} string "invalid patient id"
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/medicines [get]
func listMedicinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByPatient(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid patient id", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicineResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicineResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicineHandler godoc
// @Summary Obtener un medicamento
// @Tags medicines
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param medicineID path string true "ID del medicamento"
// @Success 200 {object} medicineResponse
// @Failure 404 {string} string "medicine not found"
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/medicines/{medicineID} [get]
func getMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID := chi.URLParam(r, "patientID")

		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicineID"))
		if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidInput) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err != nil || m.PatientID != patientID {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toMedicineResponse(m))
	}
}

func toMedicineResponse(m Medicine) medicineResponse {
	return medicineResponse{
		ID:             m.ID,
		PatientID:      m.PatientID,
		MedicineRecord: m.MedicineRecord,
		CreatedAt:      m.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package adherence

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/analyze-adherence", analyzeHandler(svc))
	r.Post("/generate-adherence-report/{patientID}", patientReportHandler(svc))

	r.Route("/patients/{patientID}/logs", func(lr chi.Router) {
		lr.Post("/", appendLogHandler(svc))
		lr.Get("/", listLogsHandler(svc))
	})
}

// Location expone la zona del timeline (los handlers la usan para parsear fechas).
func (s *Service) Location() *time.Location {
	return s.loc
}

// analyzeRequest es el payload stateless: medicamentos + logs del paciente.
type analyzeRequest struct {
	PatientID string            `json:"patientId"`
	Medicines []medicineInput   `json:"medicines"`
	Logs      []logEntryPayload `json:"logs"`
}

type medicineInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type logEntryPayload struct {
	Date     string `json:"date" example:"2026-01-18"`
	Medicine string `json:"medicine"`
	Time     string `json:"time" enums:"morning,afternoon,night"`
	Status   string `json:"status" enums:"taken,missed,delayed,pending"`
}

type logEntryResponse struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patientId"`
	Date       string    `json:"date"`
	Medicine   string    `json:"medicine"`
	Time       Slot      `json:"time"`
	Status     Status    `json:"status"`
	RecordedAt time.Time `json:"recordedAt"`
}

// analyzeHandler godoc
// @Summary Analizar adherencia (stateless)
// @Description Recibe medicamentos y logs, devuelve el timeline de 7 días (más viejo primero), el porcentaje de adherencia por medicamento y un resumen en texto.
// @Tags adherence
// @Accept json
// @Produce json
// @Param payload body analyzeRequest true "Medicamentos y logs del paciente"
// @Success 200 {object} Report
// @Failure 400 {string} string "invalid json"
// @Router /analyze-adherence [post]
func analyzeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		meds := make([]Medicine, 0, len(req.Medicines))
		for _, m := range req.Medicines {
			meds = append(meds, Medicine{ID: m.ID, Name: m.Name})
		}

		logs := make([]LogEntry, 0, len(req.Logs))
		for _, l := range req.Logs {
			logs = append(logs, toLogEntry(l, svc.Location()))
		}

		report := svc.Analyze(r.Context(), AnalyzeInput{
			PatientID: req.PatientID,
			Medicines: meds,
			Logs:      logs,
		})
		writeJSON(w, http.StatusOK, report)
	}
}

// patientReportHandler godoc
// @Summary Generar reporte de adherencia de un paciente
// @Description Carga los medicamentos y logs guardados del paciente y devuelve el mismo reporte que /analyze-adherence.
// @Tags adherence
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} Report
// @Failure 400 {string} string "invalid patient id"
// @Failure 500 {string} string "Failed to generate report"
// @Router /generate-adherence-report/{patientID} [post]
func patientReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID := chi.URLParam(r, "patientID")

		report, err := svc.ReportForPatient(r.Context(), patientID)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid patient id", http.StatusBadRequest)
				return
			}
			svc.log.Error("generate report failed", map[string]any{
				"patient_id": patientID,
				"error":      err.Error(),
			})
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate report"})
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// appendLogHandler godoc
// @Summary Registrar una toma
// @Description Registra un log inmutable (fecha YYYY-MM-DD o RFC3339, franja y estado).
// @Tags adherence
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body logEntryPayload true "Log de toma"
// @Success 201 {object} logEntryResponse
// @Failure 400 {string} string "invalid json / fecha inválida / reglas de negocio"
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/logs [post]
func appendLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID := chi.URLParam(r, "patientID")

		var req logEntryPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, ok := ParseLogDate(req.Date, svc.Location())
		if !ok {
			http.Error(w, "date must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
			return
		}

		e, err := svc.AppendLog(r.Context(), patientID, AppendInput{
			Date:     d,
			Medicine: req.Medicine,
			Time:     req.Time,
			Status:   req.Status,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toLogEntryResponse(e))
	}
}

// listLogsHandler godoc
// @Summary Listar logs de un paciente
// @Tags adherence
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param medicine query string false "Filtrar por nombre exacto"
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Param limit query int false "Máximo de logs (1-500). Por defecto 100"
// @Success 200 {array} logEntryResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/logs [get]
func listLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID := chi.URLParam(r, "patientID")

		filter, err := parseListFilter(r, svc.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListLogs(r.Context(), patientID, filter)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]logEntryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toLogEntryResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request, loc *time.Location) (ListFilter, error) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	filter := ListFilter{Limit: limit}

	if v := strings.TrimSpace(r.URL.Query().Get("medicine")); v != "" {
		filter.Medicine = v
	}
	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, ok := ParseLogDate(v, loc)
		if !ok {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, ok := ParseLogDate(v, loc)
		if !ok {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.To = &t
	}
	return filter, nil
}

// toLogEntry no rechaza nada: una fecha ilegible deja Date en cero (no entra
// en ningún día del timeline pero sí cuenta para adherencia).
func toLogEntry(p logEntryPayload, loc *time.Location) LogEntry {
	d, _ := ParseLogDate(p.Date, loc)
	slot, _ := ParseSlot(p.Time)
	status, _ := ParseStatus(p.Status)
	return LogEntry{
		Date:     d,
		Medicine: p.Medicine,
		Time:     slot,
		Status:   status,
	}
}

func toLogEntryResponse(e LogEntry) logEntryResponse {
	return logEntryResponse{
		ID:         e.ID,
		PatientID:  e.PatientID,
		Date:       FormatLogDate(e.Date),
		Medicine:   e.Medicine,
		Time:       e.Time,
		Status:     e.Status,
		RecordedAt: e.RecordedAt,
	}
}

// writeJSON está duplicado en handlers de distintos módulos para no crear
// un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

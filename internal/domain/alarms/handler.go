package alarms

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"medication-adherence/internal/domain/adherence"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/patients/{patientID}/meal-times", getMealTimesHandler(svc))
	r.Put("/patients/{patientID}/meal-times", putMealTimesHandler(svc))

	r.Get("/patients/{patientID}/alarms", listAlarmsHandler(svc))
	r.Get("/patients/{patientID}/alarms/upcoming", upcomingAlarmsHandler(svc))
	r.Post("/patients/{patientID}/alarms/{alarmCode}/{status}", markAlarmHandler(svc))
}

type upcomingResponse struct {
	Success     bool    `json:"success"`
	Date        string  `json:"date" example:"2026-01-20"`
	CurrentTime string  `json:"currentTime" example:"13:05"`
	Count       int     `json:"count"`
	Alarms      []Alarm `json:"alarms"`
}

type markedLog struct {
	ID       string           `json:"id"`
	Date     string           `json:"date"`
	Medicine string           `json:"medicine"`
	Time     adherence.Slot   `json:"time"`
	Status   adherence.Status `json:"status"`

	RecordedAt time.Time `json:"recordedAt"`
}

type markResponse struct {
	Success   bool        `json:"success"`
	AlarmCode int         `json:"alarmCode"`
	Logs      []markedLog `json:"logs"`
}

// getMealTimesHandler godoc
// @Summary Horas de comida del paciente
// @Description Si el paciente no las cargó devuelve los defaults (09:00, 14:00, 21:00).
// @Tags alarms
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} MealTimes
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/meal-times [get]
func getMealTimesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.MealTimes(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}

// putMealTimesHandler godoc
// @Summary Guardar horas de comida
// @Description Acepta "HH:MM" o "HH:MM AM/PM". Las alarmas de intake se recalculan con estas horas.
// @Tags alarms
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body MealTimes true "Horas de comida"
// @Success 200 {object} MealTimes
// @Failure 400 {string} string "invalid json / hora inválida"
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/meal-times [put]
func putMealTimesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MealTimes
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		m, err := svc.SetMealTimes(r.Context(), chi.URLParam(r, "patientID"), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}

// listAlarmsHandler godoc
// @Summary Listar alarmas del paciente
// @Description Una alarma por hora con todos sus medicamentos, ordenadas por hora.
// @Tags alarms
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {array} Alarm
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/alarms [get]
func listAlarmsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// upcomingAlarmsHandler godoc
// @Summary Próximas alarmas de hoy
// @Description Alarmas de medicamentos vigentes hoy cuya hora todavía no pasó.
// @Tags alarms
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} upcomingResponse
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/alarms/upcoming [get]
func upcomingAlarmsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today, err := svc.Upcoming(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, upcomingResponse{
			Success:     true,
			Date:        today.Date,
			CurrentTime: today.CurrentTime,
			Count:       len(today.Alarms),
			Alarms:      today.Alarms,
		})
	}
}

// markAlarmHandler godoc
// @Summary Marcar una alarma de hoy
// @Description Registra un log por cada medicamento de la alarma, con la franja de la alarma.
// @Tags alarms
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param alarmCode path int true "Código de alarma"
// @Param status path string true "taken | missed | delayed"
// @Success 201 {object} markResponse
// @Failure 400 {string} string "código o estado inválido"
// @Failure 404 {string} string "alarm not found"
// @Failure 500 {string} string "internal error"
// @Router /patients/{patientID}/alarms/{alarmCode}/{status} [post]
func markAlarmHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, err := strconv.Atoi(chi.URLParam(r, "alarmCode"))
		if err != nil {
			http.Error(w, "alarmCode must be an integer", http.StatusBadRequest)
			return
		}

		logs, err := svc.Mark(r.Context(), chi.URLParam(r, "patientID"), code, chi.URLParam(r, "status"))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]markedLog, 0, len(logs))
		for _, e := range logs {
			out = append(out, markedLog{
				ID:         e.ID,
				Date:       adherence.FormatLogDate(e.Date),
				Medicine:   e.Medicine,
				Time:       e.Time,
				Status:     e.Status,
				RecordedAt: e.RecordedAt,
			})
		}
		writeJSON(w, http.StatusCreated, markResponse{Success: true, AlarmCode: code, Logs: out})
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

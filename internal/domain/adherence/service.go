package adherence

import (
	"context"
	"errors"
	"strings"
	"time"

	"medication-adherence/internal/platform/logger"
	"medication-adherence/internal/platform/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Tope de logs por reporte. Los más viejos quedan afuera; se avisa en el log
// cuando se alcanza.
const defaultReportLogLimit = 10000

type ServiceOptions struct {
	Repo       Repository
	Medicines  MedicineSource
	Summarizer Summarizer // nil => TemplateSummarizer
	Logger     logger.Logger
	Location   *time.Location // zona para el timeline (default UTC)

	ReportLogLimit int // 0 => defaultReportLogLimit
}

type Service struct {
	repo       Repository
	medicines  MedicineSource
	summarizer Summarizer
	log        logger.Logger
	loc        *time.Location
	now        func() time.Time

	reportLimit int
}

func NewService(opts ServiceOptions) *Service {
	s := &Service{
		repo:       opts.Repo,
		medicines:  opts.Medicines,
		summarizer: opts.Summarizer,
		log:        opts.Logger,
		loc:        opts.Location,
		now:        time.Now,

		reportLimit: opts.ReportLogLimit,
	}
	if s.reportLimit <= 0 {
		s.reportLimit = defaultReportLogLimit
	}
	if s.summarizer == nil {
		s.summarizer = TemplateSummarizer{}
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	return s
}

type AnalyzeInput struct {
	PatientID string
	Medicines []Medicine
	Logs      []LogEntry
}

// Analyze calcula el reporte para los últimos 7 días y pide el resumen.
// Si el resumen externo falla se usa el template; el reporte nunca falla.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) Report {
	now := s.now().In(s.loc)
	r := Analyze(in.Medicines, in.Logs, LastSevenDays(now), now)

	for _, d := range r.TimelineData {
		if d.DateFallback {
			metrics.TimelineDateFallbacks.Inc()
		}
	}

	summary, err := s.summarizer.Summarize(ctx, in.PatientID, r.Stats)
	if err != nil || strings.TrimSpace(summary) == "" {
		if err != nil {
			s.log.Warn("summary generation failed, using template", map[string]any{
				"patient_id": in.PatientID,
				"error":      err.Error(),
			})
		}
		summary = TemplateSummary(r.Stats)
	}
	r.Summary = strings.TrimSpace(summary)
	return r
}

// ReportForPatient carga medicamentos y logs guardados y analiza.
func (s *Service) ReportForPatient(ctx context.Context, patientID string) (Report, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return Report{}, ErrInvalidInput
	}
	if s.repo == nil || s.medicines == nil {
		return Report{}, errors.New("adherence: storage not configured")
	}

	meds, err := s.medicines.AnalyticsMedicines(ctx, patientID)
	if err != nil {
		return Report{}, err
	}
	logs, err := s.repo.ListByPatient(ctx, patientID, ListFilter{Limit: s.reportLimit})
	if err != nil {
		return Report{}, err
	}
	if len(logs) >= s.reportLimit {
		s.log.Warn("report log limit reached, older logs left out", map[string]any{
			"patient_id": patientID,
			"limit":      s.reportLimit,
		})
	}

	return s.Analyze(ctx, AnalyzeInput{
		PatientID: patientID,
		Medicines: meds,
		Logs:      logs,
	}), nil
}

type AppendInput struct {
	Date     time.Time
	Medicine string
	Time     string
	Status   string
}

// AppendLog registra una toma. Los logs son inmutables: no hay update.
func (s *Service) AppendLog(ctx context.Context, patientID string, in AppendInput) (LogEntry, error) {
	patientID = strings.TrimSpace(patientID)
	name := strings.TrimSpace(in.Medicine)
	if patientID == "" || name == "" || in.Date.IsZero() {
		return LogEntry{}, ErrInvalidInput
	}
	slot, ok := ParseSlot(in.Time)
	if !ok {
		return LogEntry{}, ErrInvalidInput
	}
	status, ok := ParseStatus(in.Status)
	if !ok {
		return LogEntry{}, ErrInvalidInput
	}

	e := LogEntry{
		ID:         uuid.NewString(),
		PatientID:  patientID,
		Date:       in.Date,
		Medicine:   name,
		Time:       slot,
		Status:     status,
		RecordedAt: s.now(),
	}
	if err := s.repo.Append(ctx, e); err != nil {
		return LogEntry{}, err
	}
	return e, nil
}

func (s *Service) ListLogs(ctx context.Context, patientID string, filter ListFilter) ([]LogEntry, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPatient(ctx, patientID, filter)
}

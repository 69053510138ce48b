package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "medication-adherence/docs"
	mem "medication-adherence/internal/adapters/storage/memory"
	pg "medication-adherence/internal/adapters/storage/postgres"
	"medication-adherence/internal/domain/adherence"
	"medication-adherence/internal/domain/alarms"
	"medication-adherence/internal/domain/medicines"
	"medication-adherence/internal/domain/schedule"
	"medication-adherence/internal/middleware"
	"medication-adherence/internal/platform/logger"
	"medication-adherence/internal/platform/metrics"
	"medication-adherence/internal/ports/extraction"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Zona del paciente para fechas de logs y timeline (nil => UTC).
	Location *time.Location

	// Proveedores externos. Todos opcionales: sin extractor/transcriber los
	// endpoints de extracción responden 503; sin summarizer se usa el template.
	Extractor   extraction.Extractor
	Transcriber extraction.Transcriber
	Summarizer  adherence.Summarizer

	MaxUploadBytes int64
	ReportLogLimit int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		medicineRepo medicines.Repository
		logRepo      adherence.Repository
		mealRepo     alarms.Repository
	)
	if opts.DB != nil {
		medicineRepo = pg.NewMedicinesRepo(opts.DB)
		logRepo = pg.NewLogsRepo(opts.DB, opts.Location)
		mealRepo = pg.NewMealTimesRepo(opts.DB)
	} else {
		medicineRepo = mem.NewMedicineRepo()
		logRepo = mem.NewLogRepo()
		mealRepo = mem.NewMealTimesRepo()
	}

	// Services por módulo
	scheduleSvc := schedule.NewService(schedule.ServiceOptions{
		Extractor:      opts.Extractor,
		Transcriber:    opts.Transcriber,
		Logger:         log,
		MaxUploadBytes: opts.MaxUploadBytes,
	})
	medicinesSvc := medicines.NewService(medicineRepo)
	adherenceSvc := adherence.NewService(adherence.ServiceOptions{
		Repo:       logRepo,
		Medicines:  medicinesSvc,
		Summarizer: opts.Summarizer,
		Logger:     log,
		Location:   opts.Location,

		ReportLogLimit: opts.ReportLogLimit,
	})
	alarmsSvc := alarms.NewService(alarms.ServiceOptions{
		Repo:      mealRepo,
		Medicines: medicinesSvc,
		Doses:     adherenceSvc,
		Logger:    log,
		Location:  opts.Location,
	})

	// Rutas por módulo
	schedule.RegisterRoutes(r, scheduleSvc)
	medicines.RegisterRoutes(r, medicinesSvc)
	adherence.RegisterRoutes(r, adherenceSvc)
	alarms.RegisterRoutes(r, alarmsSvc)

	return r
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"medication-adherence/internal/platform/logger"
	"medication-adherence/internal/platform/metrics"
	"medication-adherence/internal/ports/extraction"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedFile     = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrEmptyFile           = errors.New("empty file uploaded")
	ErrProviderUnavailable = errors.New("provider unavailable")
)

const DefaultMaxUploadBytes int64 = 10 << 20 // 10MB

var fileMIMETypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"pdf":  "application/pdf",
}

type ServiceOptions struct {
	Extractor   extraction.Extractor   // puede ser nil (sin proveedor configurado)
	Transcriber extraction.Transcriber // puede ser nil
	Logger      logger.Logger

	MaxUploadBytes int64
}

// Service orquesta proveedor externo -> normalizador -> deduplicador.
type Service struct {
	extractor   extraction.Extractor
	transcriber extraction.Transcriber
	log         logger.Logger
	maxUpload   int64
}

func NewService(opts ServiceOptions) *Service {
	limit := opts.MaxUploadBytes
	if limit <= 0 {
		limit = DefaultMaxUploadBytes
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		extractor:   opts.Extractor,
		transcriber: opts.Transcriber,
		log:         log.With(map[string]any{"component": "schedule"}),
		maxUpload:   limit,
	}
}

// FromPages normaliza todos los candidatos de todas las páginas y deduplica.
func (s *Service) FromPages(pages [][]Candidate) Extraction {
	var (
		records []MedicineRecord
		results []Result
	)
	for _, p := range pages {
		recs, res := NormalizeAll(p)
		records = append(records, recs...)
		results = append(results, res...)
	}

	for _, r := range results {
		metrics.CandidatesTotal.WithLabelValues(string(r.Outcome)).Inc()
		if n := len(r.DroppedIntakeLabels); n > 0 {
			metrics.IntakeLabelsDropped.Add(float64(n))
		}
	}

	return Extraction{
		Medicines: Deduplicate(records),
		Results:   results,
	}
}

// ExtractFile valida el archivo y lo manda al extractor. Si el proveedor
// falla o devuelve basura, el resultado es "sin candidatos", no un error.
func (s *Service) ExtractFile(ctx context.Context, name string, data []byte) (Extraction, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(strings.TrimSpace(name))), ".")
	mime, ok := fileMIMETypes[ext]
	if !ok {
		return Extraction{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, ext)
	}
	if int64(len(data)) > s.maxUpload {
		return Extraction{}, ErrFileTooLarge
	}
	if len(data) == 0 {
		return Extraction{}, ErrEmptyFile
	}
	if s.extractor == nil {
		return Extraction{}, ErrProviderUnavailable
	}

	pages, err := s.extractor.ExtractFile(ctx, extraction.File{
		Name:     name,
		MIMEType: mime,
		Data:     data,
	})
	if err != nil {
		s.log.Warn("extract file failed", map[string]any{"file": name, "error": err.Error()})
		return s.FromPages(nil), nil
	}

	return s.FromPages(toCandidatePages(pages)), nil
}

// ExtractText procesa texto libre (transcripción de voz o texto dictado).
func (s *Service) ExtractText(ctx context.Context, text string) (Extraction, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Extraction{}, ErrInvalidInput
	}
	if s.extractor == nil {
		return Extraction{}, ErrProviderUnavailable
	}

	page, err := s.extractor.ExtractText(ctx, text)
	if err != nil {
		s.log.Warn("extract text failed", map[string]any{"error": err.Error()})
		return s.FromPages(nil), nil
	}
	return s.FromPages(toCandidatePages([]extraction.Page{page})), nil
}

// ExtractVoice transcribe y luego extrae. Sin transcripción no hay nada que
// normalizar, así que ese fallo sí se propaga.
func (s *Service) ExtractVoice(ctx context.Context, name string, data []byte) (Extraction, string, error) {
	if len(data) == 0 {
		return Extraction{}, "", ErrEmptyFile
	}
	if int64(len(data)) > s.maxUpload {
		return Extraction{}, "", ErrFileTooLarge
	}
	if s.transcriber == nil {
		return Extraction{}, "", ErrProviderUnavailable
	}

	text, err := s.transcriber.Transcribe(ctx, extraction.Audio{Name: name, Data: data})
	if err != nil {
		return Extraction{}, "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if strings.TrimSpace(text) == "" {
		return s.FromPages(nil), "", nil
	}

	out, err := s.ExtractText(ctx, text)
	return out, text, err
}

func toCandidatePages(pages []extraction.Page) [][]Candidate {
	out := make([][]Candidate, 0, len(pages))
	for _, p := range pages {
		cs := make([]Candidate, 0, len(p))
		for _, m := range p {
			cs = append(cs, Candidate(m))
		}
		out = append(out, cs)
	}
	return out
}

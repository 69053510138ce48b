package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	noMedicinesMessage = "No valid medicines detected. Please ensure the image/PDF is clear and contains a prescription."

	// margen para headers y boundaries del multipart
	multipartOverhead int64 = 1 << 20
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/medicine/normalize", normalizeHandler(svc))
	r.Post("/api/medicine/extract-file", extractFileHandler(svc))
	r.Post("/api/medicine/process-voice", processVoiceHandler(svc))
	r.Post("/api/medicine/parse-text", parseTextHandler(svc))
}

// normalizeRequest acepta candidatos sueltos o agrupados por página.
type normalizeRequest struct {
	Medicines []map[string]any   `json:"medicines"`
	Pages     [][]map[string]any `json:"pages"`
}

type parseTextRequest struct {
	Text string `json:"text"`
}

type extractionResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	Medicines  []MedicineRecord `json:"medicines"`
	Transcript string           `json:"transcript,omitempty"`
	Discarded  int              `json:"discarded"`
}

// normalizeHandler godoc
// @Summary Normalizar candidatos
// @Description Aplica el normalizador y el deduplicador a candidatos ya extraídos (sin llamar a ningún proveedor).
// @Tags schedule
// @Accept json
// @Produce json
// @Param payload body normalizeRequest true "Candidatos crudos (medicines) o páginas de candidatos (pages)"
// @Success 200 {object} extractionResponse
// @Failure 400 {string} string "invalid json"
// @Router /api/medicine/normalize [post]
func normalizeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req normalizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		pages := make([][]Candidate, 0, len(req.Pages)+1)
		if len(req.Medicines) > 0 {
			pages = append(pages, toCandidates(req.Medicines))
		}
		for _, p := range req.Pages {
			pages = append(pages, toCandidates(p))
		}

		writeJSON(w, http.StatusOK, toExtractionResponse(svc.FromPages(pages), ""))
	}
}

// extractFileHandler godoc
// @Summary Extraer medicamentos de una receta
// @Description Sube una imagen (JPG/PNG) o PDF de receta. Sin medicamentos válidos responde 200 con success=false.
// @Tags schedule
// @Accept mpfd
// @Produce json
// @Param file formData file true "Receta (jpg, jpeg, png, pdf; máx 10MB)"
// @Success 200 {object} extractionResponse
// @Failure 400 {string} string "tipo no soportado / archivo vacío / demasiado grande"
// @Failure 503 {string} string "extraction provider not configured"
// @Router /api/medicine/extract-file [post]
func extractFileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, data, err := readUpload(w, r, "file", svc.maxUpload)
		if err != nil {
			writeUploadError(w, err)
			return
		}

		out, err := svc.ExtractFile(r.Context(), name, data)
		if err != nil {
			writeUploadError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toExtractionResponse(out, ""))
	}
}

// processVoiceHandler godoc
// @Summary Extraer medicamentos de una nota de voz
// @Description Transcribe el audio y extrae los medicamentos mencionados.
// @Tags schedule
// @Accept mpfd
// @Produce json
// @Param audio formData file true "Grabación de voz"
// @Success 200 {object} extractionResponse
// @Failure 400 {string} string "archivo vacío / demasiado grande"
// @Failure 503 {string} string "transcription provider unavailable"
// @Router /api/medicine/process-voice [post]
func processVoiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, data, err := readUpload(w, r, "audio", svc.maxUpload)
		if err != nil {
			writeUploadError(w, err)
			return
		}

		out, transcript, err := svc.ExtractVoice(r.Context(), name, data)
		if err != nil {
			writeUploadError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toExtractionResponse(out, transcript))
	}
}

// parseTextHandler godoc
// @Summary Extraer medicamentos de texto libre
// @Tags schedule
// @Accept json
// @Produce json
// @Param payload body parseTextRequest true "Texto dictado o escrito"
// @Success 200 {object} extractionResponse
// @Failure 400 {string} string "text required"
// @Failure 503 {string} string "extraction provider not configured"
// @Router /api/medicine/parse-text [post]
func parseTextHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req parseTextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		out, err := svc.ExtractText(r.Context(), req.Text)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "text required", http.StatusBadRequest)
				return
			}
			writeUploadError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toExtractionResponse(out, ""))
	}
}

// readUpload lee un campo multipart completo en memoria.
func readUpload(w http.ResponseWriter, r *http.Request, field string, limit int64) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	if err := r.ParseMultipartForm(limit + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, ErrFileTooLarge
		}
		return "", nil, fmt.Errorf("%w: multipart form required", ErrInvalidInput)
	}

	f, hdr, err := r.FormFile(field)
	if err != nil {
		return "", nil, fmt.Errorf("%w: missing %q field", ErrInvalidInput, field)
	}
	defer f.Close()

	name := strings.TrimSpace(hdr.Filename)
	if name == "" {
		return "", nil, fmt.Errorf("%w: no filename provided", ErrInvalidInput)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return "", nil, err
	}
	return name, data, nil
}

func writeUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnsupportedFile):
		http.Error(w, err.Error()+". Only JPG, PNG, and PDF are supported.", http.StatusBadRequest)
	case errors.Is(err, ErrFileTooLarge):
		http.Error(w, "File too large. Maximum size is 10MB.", http.StatusBadRequest)
	case errors.Is(err, ErrEmptyFile):
		http.Error(w, "Empty file uploaded", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrProviderUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toCandidates(in []map[string]any) []Candidate {
	out := make([]Candidate, 0, len(in))
	for _, m := range in {
		out = append(out, Candidate(m))
	}
	return out
}

func toExtractionResponse(e Extraction, transcript string) extractionResponse {
	meds := e.Medicines
	if meds == nil {
		meds = []MedicineRecord{}
	}
	resp := extractionResponse{
		Medicines:  meds,
		Transcript: transcript,
		Discarded:  e.Discarded(),
	}
	if len(meds) == 0 {
		resp.Message = noMedicinesMessage
		return resp
	}
	resp.Success = true
	resp.Message = fmt.Sprintf("Successfully extracted %d medicine(s)", len(meds))
	return resp
}

// writeJSON está duplicado en handlers de distintos módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package medicines

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medication-adherence/internal/domain/schedule"

	"github.com/go-chi/chi/v5"
)

func serveGet(t *testing.T, svc *Service, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGetMedicineHandler_StatusMapping(t *testing.T) {
	svc, _ := newTestService()
	m, _, err := svc.Create(context.Background(), "p1", schedule.Candidate{"name": "Aspirin"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if rec := serveGet(t, svc, "/patients/p1/medicines/"+m.ID); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := serveGet(t, svc, "/patients/p2/medicines/"+m.ID); rec.Code != http.StatusNotFound {
		t.Fatalf("other patient: expected 404, got %d", rec.Code)
	}
	if rec := serveGet(t, svc, "/patients/p1/medicines/unknown"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", rec.Code)
	}

	broken := NewService(brokenRepo{newTestRepo()})
	if rec := serveGet(t, broken, "/patients/p1/medicines/m1"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("storage failure: expected 500, got %d", rec.Code)
	}
}

package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medication-adherence/internal/ports/extraction"
	"medication-adherence/internal/router"
)

type report struct {
	Summary      string `json:"summary"`
	TimelineData []struct {
		Date      string `json:"date"`
		Morning   string `json:"morning"`
		Afternoon string `json:"afternoon"`
		Night     string `json:"night"`
	} `json:"timelineData"`
	MedicineData []struct {
		Name      string `json:"name"`
		Adherence int    `json:"adherence"`
	} `json:"medicineData"`
}

type extractionResp struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Discarded int    `json:"discarded"`
	Medicines []struct {
		Name        string   `json:"name"`
		Type        string   `json:"type"`
		IntakeTimes []string `json:"intakeTimes"`
		DoseCount   int      `json:"doseCount"`
		Frequency   string   `json:"frequency"`
	} `json:"medicines"`
}

func TestHTTP_AnalyzeAdherence_Stateless(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	today := time.Now().UTC().Format("2006-01-02")

	st, body := doReq(t, ts.URL, "POST", "/analyze-adherence", map[string]any{
		"patientId": "p-1",
		"medicines": []map[string]any{{"id": "m1", "name": "Aspirin"}},
		"logs": []map[string]any{
			{"date": today, "medicine": "Aspirin", "time": "morning", "status": "taken"},
			{"date": today, "medicine": "Aspirin", "time": "night", "status": "missed"},
		},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 analyze, got %d body=%s", st, string(body))
	}

	var rep report
	if err := json.Unmarshal(body, &rep); err != nil {
		t.Fatalf("decode report: %v body=%s", err, string(body))
	}

	if len(rep.TimelineData) != 7 {
		t.Fatalf("expected 7 timeline days, got %d", len(rep.TimelineData))
	}
	last := rep.TimelineData[6]
	if last.Morning != "taken" || last.Afternoon != "pending" || last.Night != "missed" {
		t.Fatalf("unexpected today row: %+v", last)
	}
	for _, d := range rep.TimelineData[:6] {
		if d.Morning != "pending" || d.Afternoon != "pending" || d.Night != "pending" {
			t.Fatalf("expected empty day to be pending, got %+v", d)
		}
	}

	if len(rep.MedicineData) != 1 || rep.MedicineData[0].Name != "Aspirin" || rep.MedicineData[0].Adherence != 50 {
		t.Fatalf("unexpected medicineData: %+v", rep.MedicineData)
	}
	if rep.Summary == "" {
		t.Fatalf("expected template summary")
	}
}

func TestHTTP_AnalyzeAdherence_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	res, err := http.Post(ts.URL+"/analyze-adherence", "application/json", bytes.NewBufferString("{"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestHTTP_PatientFlow_MedicinesLogsReport(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	patientID := "patient-1"
	today := time.Now().UTC().Format("2006-01-02")

	// 1) Alta de medicamento con payload suelto (se normaliza)
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/medicines", map[string]any{
			"name":        "Aspirin",
			"intakeTimes": []string{"morning", "night"},
			"doseCount":   1.4,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create medicine, got %d body=%s", st, string(body))
		}

		var resp struct {
			Medicine struct {
				ID          string   `json:"id"`
				IntakeTimes []string `json:"intakeTimes"`
				DoseCount   int      `json:"doseCount"`
				Type        string   `json:"type"`
			} `json:"medicine"`
			Outcome string `json:"outcome"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Medicine.ID == "" {
			t.Fatalf("create medicine: missing id body=%s", string(body))
		}
		if resp.Medicine.DoseCount != 1 || resp.Medicine.Type != "tablet" || resp.Outcome != "defaulted" {
			t.Fatalf("unexpected normalization: %s", string(body))
		}
		if len(resp.Medicine.IntakeTimes) != 2 || resp.Medicine.IntakeTimes[0] != "After Breakfast" || resp.Medicine.IntakeTimes[1] != "After Dinner" {
			t.Fatalf("unexpected intake times: %v", resp.Medicine.IntakeTimes)
		}
	}

	// 2) Sin nombre => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/medicines", map[string]any{"type": "tablet"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for nameless medicine, got %d", st)
		}
	}

	// 3) Logs del día
	for _, l := range []map[string]any{
		{"date": today, "medicine": "Aspirin", "time": "morning", "status": "taken"},
		{"date": today, "medicine": "Aspirin", "time": "night", "status": "missed"},
	} {
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/logs", l)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 append log, got %d body=%s", st, string(body))
		}
	}

	// 4) Status inválido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/logs", map[string]any{
			"date": today, "medicine": "Aspirin", "time": "morning", "status": "forgot",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown status, got %d", st)
		}
	}

	// 5) Listado de logs
	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID+"/logs?medicine=Aspirin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list logs, got %d body=%s", st, string(body))
		}
		var logs []map[string]any
		_ = json.Unmarshal(body, &logs)
		if len(logs) != 2 {
			t.Fatalf("expected 2 logs, got %d body=%s", len(logs), string(body))
		}
	}

	// 6) Reporte desde lo guardado
	{
		st, body := doReq(t, ts.URL, "POST", "/generate-adherence-report/"+patientID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 report, got %d body=%s", st, string(body))
		}
		var rep report
		_ = json.Unmarshal(body, &rep)
		if len(rep.MedicineData) != 1 || rep.MedicineData[0].Adherence != 50 {
			t.Fatalf("unexpected report: %s", string(body))
		}
	}
}

func TestHTTP_Normalize_DedupAndDiscard(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/api/medicine/normalize", map[string]any{
		"pages": [][]map[string]any{
			{
				{"name": "Paracetamol", "type": "tablet", "doseCount": 1},
				{"type": "syrup"},
			},
			{
				{"name": "paracetamol", "type": "syrup", "doseCount": 8},
			},
		},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 normalize, got %d body=%s", st, string(body))
	}

	var resp extractionResp
	_ = json.Unmarshal(body, &resp)
	if !resp.Success || resp.Discarded != 1 || len(resp.Medicines) != 1 {
		t.Fatalf("unexpected normalize response: %s", string(body))
	}
	if resp.Medicines[0].Type != "syrup" || resp.Medicines[0].DoseCount != 10 {
		t.Fatalf("expected last duplicate to win, got %+v", resp.Medicines[0])
	}
}

func TestHTTP_Normalize_NothingUsable(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/api/medicine/normalize", map[string]any{
		"medicines": []map[string]any{{"name": ""}},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var resp extractionResp
	_ = json.Unmarshal(body, &resp)
	if resp.Success || len(resp.Medicines) != 0 || resp.Message == "" {
		t.Fatalf("expected success=false with message, got %s", string(body))
	}
}

type fakeExtractor struct {
	page extraction.Page
	err  error
}

func (f fakeExtractor) ExtractFile(_ context.Context, _ extraction.File) ([]extraction.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []extraction.Page{f.page}, nil
}

func (f fakeExtractor) ExtractText(_ context.Context, _ string) (extraction.Page, error) {
	return f.page, f.err
}

func TestHTTP_ExtractFile(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Extractor: fakeExtractor{page: extraction.Page{
			{"name": "Amoxicillin 500mg", "type": "tablet", "intakeTimes": []any{"1-0-1", "After Breakfast", "After Dinner"}, "doseCount": 1},
		}},
	}))
	defer ts.Close()

	st, body := uploadFile(t, ts.URL+"/api/medicine/extract-file", "file", "rx.png", []byte("png-bytes"))
	if st != http.StatusOK {
		t.Fatalf("expected 200 extract, got %d body=%s", st, string(body))
	}
	var resp extractionResp
	_ = json.Unmarshal(body, &resp)
	if !resp.Success || len(resp.Medicines) != 1 {
		t.Fatalf("unexpected extraction: %s", string(body))
	}
	if got := resp.Medicines[0].IntakeTimes; len(got) != 2 {
		t.Fatalf("expected noise label dropped, got %v", got)
	}

	// tipo no soportado
	st, _ = uploadFile(t, ts.URL+"/api/medicine/extract-file", "file", "rx.gif", []byte("gif"))
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for gif, got %d", st)
	}

	// archivo vacío
	st, _ = uploadFile(t, ts.URL+"/api/medicine/extract-file", "file", "rx.pdf", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty file, got %d", st)
	}
}

func TestHTTP_ExtractFile_ProviderFailureIsNoCandidates(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Extractor: fakeExtractor{err: errors.New("model timeout")},
	}))
	defer ts.Close()

	st, body := uploadFile(t, ts.URL+"/api/medicine/extract-file", "file", "rx.jpg", []byte("jpg"))
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	var resp extractionResp
	_ = json.Unmarshal(body, &resp)
	if resp.Success {
		t.Fatalf("expected success=false, got %s", string(body))
	}
}

func TestHTTP_Extraction_WithoutProvider(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := uploadFile(t, ts.URL+"/api/medicine/extract-file", "file", "rx.jpg", []byte("jpg"))
	if st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without extractor, got %d", st)
	}

	st, _ = uploadFile(t, ts.URL+"/api/medicine/process-voice", "audio", "note.m4a", []byte("audio"))
	if st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without transcriber, got %d", st)
	}
}

func TestHTTP_Alarms_MealTimesAndMark(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	patientID := "patient-alarms"

	// Defaults antes de cargar nada
	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID+"/meal-times", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 meal times, got %d body=%s", st, string(body))
		}
		var m map[string]string
		_ = json.Unmarshal(body, &m)
		if m["breakfast"] != "09:00" || m["lunch"] != "14:00" || m["dinner"] != "21:00" {
			t.Fatalf("unexpected defaults: %s", string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "PUT", "/patients/"+patientID+"/meal-times", map[string]any{
			"breakfast": "8:00 AM", "lunch": "13:00", "dinner": "20:00",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put meal times, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "PUT", "/patients/"+patientID+"/meal-times", map[string]any{
			"breakfast": "whenever", "lunch": "13:00", "dinner": "20:00",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad meal time, got %d", st)
		}
	}

	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/medicines", map[string]any{
			"name":        "Metformin",
			"intakeTimes": []string{"After Breakfast", "Before Dinner"},
			"customTimes": []string{"22:30"},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create medicine, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID+"/alarms", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 alarms, got %d body=%s", st, string(body))
		}
		var alarms []struct {
			Code      int    `json:"alarmCode"`
			Time      string `json:"time"`
			IsCustom  bool   `json:"isCustom"`
			Slot      string `json:"slot"`
			Medicines []struct {
				Name string `json:"name"`
			} `json:"medicines"`
		}
		if err := json.Unmarshal(body, &alarms); err != nil {
			t.Fatalf("decode alarms: %v body=%s", err, string(body))
		}
		if len(alarms) != 3 {
			t.Fatalf("expected 3 alarms, got %s", string(body))
		}
		if alarms[0].Code != 2 || alarms[0].Time != "08:30" || alarms[0].Slot != "morning" {
			t.Fatalf("unexpected breakfast alarm: %+v", alarms[0])
		}
		if alarms[1].Code != 5 || alarms[1].Time != "19:45" || alarms[1].Slot != "night" {
			t.Fatalf("unexpected dinner alarm: %+v", alarms[1])
		}
		if !alarms[2].IsCustom || alarms[2].Time != "22:30" {
			t.Fatalf("unexpected custom alarm: %+v", alarms[2])
		}
		if len(alarms[0].Medicines) != 1 || alarms[0].Medicines[0].Name != "Metformin" {
			t.Fatalf("unexpected alarm medicines: %+v", alarms[0].Medicines)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID+"/alarms/upcoming", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 upcoming, got %d body=%s", st, string(body))
		}
	}

	// Marcar la alarma de desayuno deja un log en la franja mañana
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/alarms/2/taken", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 mark, got %d body=%s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "POST", "/patients/"+patientID+"/alarms/2/pending", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for pending, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/patients/"+patientID+"/alarms/3/taken", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unused alarm, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/patients/"+patientID+"/alarms/abc/taken", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad code, got %d", st)
		}

		st, body = doReq(t, ts.URL, "GET", "/patients/"+patientID+"/logs?medicine=Metformin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list logs, got %d body=%s", st, string(body))
		}
		var logs []map[string]any
		_ = json.Unmarshal(body, &logs)
		if len(logs) != 1 || logs[0]["time"] != "morning" || logs[0]["status"] != "taken" {
			t.Fatalf("unexpected logs after mark: %s", string(body))
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health: %d %s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK || !bytes.Contains(body, []byte("medibuddy_http_request_duration_seconds")) {
		t.Fatalf("expected metrics exposition, got %d", st)
	}
}

func uploadFile(t *testing.T, url, field, name string, data []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write(data)
	_ = mw.Close()

	res, err := http.Post(url, mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("post multipart: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

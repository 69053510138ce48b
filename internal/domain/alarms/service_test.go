package alarms

import (
	"context"
	"errors"
	"testing"
	"time"

	"medication-adherence/internal/domain/adherence"
	"medication-adherence/internal/domain/medicines"
	"medication-adherence/internal/domain/schedule"
)

type testMeals struct {
	byPatient map[string]MealTimes
}

func (r *testMeals) GetMealTimes(_ context.Context, patientID string) (MealTimes, bool, error) {
	m, ok := r.byPatient[patientID]
	return m, ok, nil
}

func (r *testMeals) SaveMealTimes(_ context.Context, patientID string, m MealTimes) error {
	r.byPatient[patientID] = m
	return nil
}

type testMedicines struct {
	items []medicines.Medicine
}

func (l *testMedicines) ListByPatient(_ context.Context, patientID string) ([]medicines.Medicine, error) {
	var out []medicines.Medicine
	for _, m := range l.items {
		if m.PatientID == patientID {
			out = append(out, m)
		}
	}
	return out, nil
}

type testDoses struct {
	patientID string
	inputs    []adherence.AppendInput
	fail      error
}

func (d *testDoses) AppendLog(_ context.Context, patientID string, in adherence.AppendInput) (adherence.LogEntry, error) {
	if d.fail != nil {
		return adherence.LogEntry{}, d.fail
	}
	d.patientID = patientID
	d.inputs = append(d.inputs, in)
	slot, _ := adherence.ParseSlot(in.Time)
	st, _ := adherence.ParseStatus(in.Status)
	return adherence.LogEntry{
		ID:        "log-" + in.Medicine,
		PatientID: patientID,
		Date:      in.Date,
		Medicine:  in.Medicine,
		Time:      slot,
		Status:    st,
	}, nil
}

// lunes 2026-01-12 13:00 UTC
var testNow = time.Date(2026, 1, 12, 13, 0, 0, 0, time.UTC)

func newTestService(meds ...medicines.Medicine) (*Service, *testMeals, *testDoses) {
	repo := &testMeals{byPatient: map[string]MealTimes{}}
	doses := &testDoses{}
	svc := NewService(ServiceOptions{
		Repo:      repo,
		Medicines: &testMedicines{items: meds},
		Doses:     doses,
	})
	svc.now = func() time.Time { return testNow }
	return svc, repo, doses
}

func TestMealTimes_DefaultsUntilSet(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	got, err := svc.MealTimes(ctx, "p1")
	if err != nil {
		t.Fatalf("MealTimes: %v", err)
	}
	if got != DefaultMealTimes() {
		t.Fatalf("expected defaults, got %+v", got)
	}

	saved, err := svc.SetMealTimes(ctx, " p1 ", MealTimes{Breakfast: "7:30 AM", Lunch: "13:00", Dinner: "8:00 PM"})
	if err != nil {
		t.Fatalf("SetMealTimes: %v", err)
	}
	want := MealTimes{Breakfast: "07:30", Lunch: "13:00", Dinner: "20:00"}
	if saved != want {
		t.Fatalf("expected %+v, got %+v", want, saved)
	}
	if repo.byPatient["p1"] != want {
		t.Fatalf("expected stored %+v, got %+v", want, repo.byPatient["p1"])
	}

	got, _ = svc.MealTimes(ctx, "p1")
	if got != want {
		t.Fatalf("expected %+v after set, got %+v", want, got)
	}
}

func TestSetMealTimes_Invalid(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.SetMealTimes(context.Background(), "p1", MealTimes{Breakfast: "soon", Lunch: "13:00", Dinner: "20:00"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.byPatient) != 0 {
		t.Fatalf("nothing should be stored")
	}

	if _, err := svc.SetMealTimes(context.Background(), "  ", DefaultMealTimes()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty patient, got %v", err)
	}
}

func TestUpcoming_OnlyDueAndLater(t *testing.T) {
	active := med("a", "Aspirin", []schedule.IntakeTime{schedule.AfterBreakfast, schedule.AfterDinner}, nil)
	expired := med("b", "Biotin", []schedule.IntakeTime{schedule.BeforeDinner}, nil)
	expired.DurationDays = 2

	svc, _, _ := newTestService(active, expired)

	got, err := svc.Upcoming(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if got.Date != "2026-01-12" || got.CurrentTime != "13:00" {
		t.Fatalf("unexpected header %s %s", got.Date, got.CurrentTime)
	}
	if len(got.Alarms) != 1 || got.Alarms[0].Code != 6 {
		t.Fatalf("expected only the after-dinner alarm, got %+v", got.Alarms)
	}
	if got.Alarms[0].Time != "21:30" {
		t.Fatalf("expected 21:30, got %s", got.Alarms[0].Time)
	}
}

func TestMark_AppendsOneLogPerMedicine(t *testing.T) {
	a := med("a", "Aspirin", []schedule.IntakeTime{schedule.AfterDinner}, nil)
	b := med("b", "Biotin", []schedule.IntakeTime{schedule.AfterDinner}, nil)
	svc, _, doses := newTestService(a, b)

	logs, err := svc.Mark(context.Background(), "p1", 6, "Taken")
	if err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if len(logs) != 2 || len(doses.inputs) != 2 {
		t.Fatalf("expected 2 logs, got %d (%d appended)", len(logs), len(doses.inputs))
	}
	for _, in := range doses.inputs {
		if in.Time != string(adherence.SlotNight) {
			t.Fatalf("expected night slot, got %q", in.Time)
		}
		if in.Status != string(adherence.StatusTaken) {
			t.Fatalf("expected taken, got %q", in.Status)
		}
		if adherence.FormatLogDate(in.Date) != "2026-01-12" {
			t.Fatalf("expected today's date, got %s", in.Date)
		}
	}
	if doses.inputs[0].Medicine != "Aspirin" || doses.inputs[1].Medicine != "Biotin" {
		t.Fatalf("unexpected medicines %+v", doses.inputs)
	}
	if doses.patientID != "p1" {
		t.Fatalf("expected p1, got %q", doses.patientID)
	}
}

func TestMark_PastAlarmsCanStillBeMarked(t *testing.T) {
	svc, _, doses := newTestService(med("a", "Aspirin", []schedule.IntakeTime{schedule.AfterBreakfast}, nil))

	if _, err := svc.Mark(context.Background(), "p1", 2, "missed"); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if len(doses.inputs) != 1 || doses.inputs[0].Time != string(adherence.SlotMorning) {
		t.Fatalf("expected one morning log, got %+v", doses.inputs)
	}
}

func TestMark_Errors(t *testing.T) {
	alternate := med("a", "Aspirin", []schedule.IntakeTime{schedule.AfterLunch}, nil)
	alternate.Frequency = schedule.FrequencyAlternateDays
	alternate.CreatedAt = time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC)

	svc, _, doses := newTestService(alternate)
	ctx := context.Background()

	if _, err := svc.Mark(ctx, "p1", 4, "taken"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a medicine not due today, got %v", err)
	}
	if _, err := svc.Mark(ctx, "p1", 99, "taken"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown code, got %v", err)
	}
	if _, err := svc.Mark(ctx, "p1", 4, "pending"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pending, got %v", err)
	}
	if _, err := svc.Mark(ctx, "p1", 4, "snoozed"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
	if len(doses.inputs) != 0 {
		t.Fatalf("nothing should be appended, got %+v", doses.inputs)
	}
}

func TestMark_RecorderFailure(t *testing.T) {
	svc, _, doses := newTestService(med("a", "Aspirin", []schedule.IntakeTime{schedule.AfterDinner}, nil))
	doses.fail = errors.New("db down")

	if _, err := svc.Mark(context.Background(), "p1", 6, "delayed"); !errors.Is(err, doses.fail) {
		t.Fatalf("expected recorder error, got %v", err)
	}
}

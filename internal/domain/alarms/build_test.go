package alarms

import (
	"testing"
	"time"

	"medication-adherence/internal/domain/adherence"
	"medication-adherence/internal/domain/medicines"
	"medication-adherence/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func med(id, name string, intake []schedule.IntakeTime, custom []string) medicines.Medicine {
	return medicines.Medicine{
		ID:        id,
		PatientID: "p1",
		MedicineRecord: schedule.MedicineRecord{
			Name:         name,
			Type:         schedule.TypeTablet,
			IntakeTimes:  intake,
			CustomTimes:  custom,
			Frequency:    schedule.FrequencyDaily,
			DoseCount:    1,
			DurationDays: 7,
		},
		CreatedAt: time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC),
	}
}

func codes(in []Alarm) []int {
	out := make([]int, 0, len(in))
	for _, a := range in {
		out = append(out, a.Code)
	}
	return out
}

func names(a Alarm) []string {
	out := make([]string, 0, len(a.Medicines))
	for _, m := range a.Medicines {
		out = append(out, m.Name)
	}
	return out
}

func TestBuild_GroupsMedicinesPerAlarm(t *testing.T) {
	meds := []medicines.Medicine{
		med("a", "Aspirin", []schedule.IntakeTime{schedule.AfterBreakfast, schedule.AfterDinner}, []string{"22:30"}),
		med("b", "Biotin", []schedule.IntakeTime{schedule.AfterBreakfast}, []string{"22:30", "07:00", "22:30"}),
	}

	got := Build(meds, DefaultMealTimes())

	seven := customCodeBase + 7*60
	late := customCodeBase + 22*60 + 30
	require.Equal(t, []int{seven, 2, 6, late}, codes(got))

	assert.Equal(t, "07:00", got[0].Time)
	assert.True(t, got[0].IsCustom)
	assert.Equal(t, adherence.SlotMorning, got[0].Slot)
	assert.Equal(t, []string{"Biotin"}, names(got[0]))

	assert.Equal(t, "09:30", got[1].Time)
	assert.False(t, got[1].IsCustom)
	assert.Equal(t, adherence.SlotMorning, got[1].Slot)
	assert.Equal(t, []string{"Aspirin", "Biotin"}, names(got[1]))

	assert.Equal(t, "21:30", got[2].Time)
	assert.Equal(t, adherence.SlotNight, got[2].Slot)

	assert.Equal(t, adherence.SlotNight, got[3].Slot)
	assert.Equal(t, []string{"Aspirin", "Biotin"}, names(got[3]))
}

func TestBuild_FollowsMealTimes(t *testing.T) {
	meds := []medicines.Medicine{med("a", "Aspirin", []schedule.IntakeTime{schedule.BeforeLunch}, nil)}

	got := Build(meds, MealTimes{Breakfast: "07:00", Lunch: "12:30", Dinner: "19:00"})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Code)
	assert.Equal(t, "12:15", got[0].Time)
	assert.Equal(t, adherence.SlotAfternoon, got[0].Slot)
}

func TestUpcoming_StrictlyAfterNow(t *testing.T) {
	meds := []medicines.Medicine{
		med("a", "Aspirin", []schedule.IntakeTime{schedule.AfterBreakfast, schedule.AfterDinner}, []string{"22:30"}),
	}
	all := Build(meds, DefaultMealTimes())

	got := Upcoming(all, time.Date(2026, 1, 12, 21, 30, 0, 0, time.UTC))
	assert.Equal(t, []int{customCodeBase + 22*60 + 30}, codes(got))

	got = Upcoming(all, time.Date(2026, 1, 12, 9, 29, 59, 0, time.UTC))
	assert.Equal(t, []int{2, 6, customCodeBase + 22*60 + 30}, codes(got))

	assert.Empty(t, Upcoming(all, time.Date(2026, 1, 12, 23, 59, 0, 0, time.UTC)))
}

func TestDueOn(t *testing.T) {
	m := med("a", "Aspirin", nil, nil)
	m.DurationDays = 5
	day := func(d int) time.Time { return time.Date(2026, 1, d, 8, 0, 0, 0, time.UTC) }

	assert.False(t, DueOn(m, day(9)))
	assert.True(t, DueOn(m, day(10)))
	assert.True(t, DueOn(m, day(14)))
	assert.False(t, DueOn(m, day(15)))

	m.Frequency = schedule.FrequencyAlternateDays
	assert.True(t, DueOn(m, day(10)))
	assert.False(t, DueOn(m, day(11)))
	assert.True(t, DueOn(m, day(12)))
}

func TestDueOn_UsesPatientCalendar(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	m := med("a", "Aspirin", nil, nil)
	// 23:30 UTC del 10 ya es 11 en IST
	m.CreatedAt = time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC)
	m.DurationDays = 1

	assert.False(t, DueOn(m, time.Date(2026, 1, 10, 22, 0, 0, 0, ist)))
	assert.True(t, DueOn(m, time.Date(2026, 1, 11, 9, 0, 0, 0, ist)))
	assert.False(t, DueOn(m, time.Date(2026, 1, 12, 9, 0, 0, 0, ist)))
}

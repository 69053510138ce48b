package memory

import (
	"context"
	"testing"

	"medication-adherence/internal/domain/alarms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealTimesRepo_SaveOverwrites(t *testing.T) {
	repo := NewMealTimesRepo()
	ctx := context.Background()

	_, ok, err := repo.GetMealTimes(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SaveMealTimes(ctx, "p1", alarms.DefaultMealTimes()))
	later := alarms.MealTimes{Breakfast: "10:00", Lunch: "15:00", Dinner: "22:00"}
	require.NoError(t, repo.SaveMealTimes(ctx, "p1", later))

	got, ok, err := repo.GetMealTimes(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, later, got)

	_, ok, _ = repo.GetMealTimes(ctx, "p2")
	assert.False(t, ok)
}

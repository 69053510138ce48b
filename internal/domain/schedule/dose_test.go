package schedule

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDose(t *testing.T) {
	cases := []struct {
		in   float64
		typ  MedicineType
		want int
	}{
		{0.4, TypeTablet, 1},
		{0.5, TypeTablet, 1},
		{1.5, TypeTablet, 2},
		{2.3, TypeTablet, 2},
		{2.5, TypeTablet, 3},
		{2.7, TypeTablet, 3},
		{0, TypeTablet, 1},
		{-3, TypeTablet, 1},
		{1.6, TypeOther, 2},
		{0, TypeOther, 1},

		{3, TypeSyrup, 5},
		{7, TypeSyrup, 5},
		{7.5, TypeSyrup, 10},
		{8, TypeSyrup, 10},
		{12, TypeSyrup, 10},
		{12.5, TypeSyrup, 15},
		{13, TypeSyrup, 15},
		{0, TypeSyrup, 5},
		{-10, TypeSyrup, 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RoundDose(c.in, c.typ), "%v %s", c.in, c.typ)
	}
}

func TestRoundDose_NotANumber(t *testing.T) {
	assert.Equal(t, 1, RoundDose(math.NaN(), TypeTablet))
	assert.Equal(t, 5, RoundDose(math.Inf(1), TypeSyrup))
}

func TestRoundDose_Invariants(t *testing.T) {
	for v := -5.0; v <= 40; v += 0.25 {
		tab := RoundDose(v, TypeTablet)
		assert.GreaterOrEqual(t, tab, 1)

		syr := RoundDose(v, TypeSyrup)
		assert.GreaterOrEqual(t, syr, 5)
		assert.Zero(t, syr%5, "syrup %v -> %d", v, syr)
	}
}

func TestRoundDose_HugeValues(t *testing.T) {
	assert.Equal(t, 1, RoundDose(1e20, TypeTablet))
	assert.Equal(t, 5, RoundDose(1e20, TypeSyrup))
	assert.Equal(t, 1, RoundDose(-1e20, TypeOther))
}

package irr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meenmo/tvm/irr"
)

func TestModifiedInternalRateOfReturn(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name              string
		flows             []float64
		finance, reinvest float64
		want              float64
	}{
		{"mixed outflows", []float64{-4500, -800, 800, 800, 600, 600, 800, 800, 700, 3000}, 0.08, 0.055, 0.06659717503155349},
		{"single outlay", []float64{-120000, 39000, 30000, 21000, 37000, 46000}, 0.10, 0.12, 0.1260941303659051},
		{"inflow first", []float64{100, 200, -50, 300, -200}, 0.05, 0.06, 0.3428233878421769},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := irr.ModifiedInternalRateOfReturn(tc.flows, tc.finance, tc.reinvest)
			assert.InDelta(t, tc.want, got, 1e-10)
		})
	}
}

func TestModifiedInternalRateOfReturn_NoOutflows(t *testing.T) {
	t.Parallel()

	got := irr.ModifiedInternalRateOfReturn([]float64{100, 200, 300}, 0.1, 0.1)
	assert.True(t, math.IsInf(got, 0) || math.IsNaN(got), "got %v", got)
}

func TestModifiedInternalRateOfReturn_NoInflows(t *testing.T) {
	t.Parallel()

	got := irr.ModifiedInternalRateOfReturn([]float64{-100, -200}, 0.1, 0.1)
	assert.InDelta(t, -1.0, got, 1e-12)
}

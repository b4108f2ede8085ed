package annuity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meenmo/tvm/annuity"
)

func TestNetPresentValue(t *testing.T) {
	t.Parallel()

	flows := []float64{-40000, 5000, 8000, 12000, 30000}
	got := annuity.NetPresentValue(0.08, flows, 0)
	assert.InDelta(t, 3065.22267, got, 1e-5)
}

func TestNetPresentValue_ZeroRateIsSum(t *testing.T) {
	t.Parallel()

	flows := []float64{-100, 30, 30, 30, 30}
	assert.InDelta(t, 20.0, annuity.NetPresentValue(0, flows, 0), 1e-12)
}

func TestNetPresentValue_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, annuity.NetPresentValue(0.05, nil, 0))
	assert.Equal(t, 250.0, annuity.NetPresentValue(0.05, nil, 250))
}

func TestNetPresentValue_LinearInInitialInvestment(t *testing.T) {
	t.Parallel()

	flows := []float64{-1000, 300, 400, 500}
	base := annuity.NetPresentValue(0.06, flows, 0)
	for _, initial := range []float64{-500, 0, 125.5, 10000} {
		got := annuity.NetPresentValue(0.06, flows, initial)
		assert.InDelta(t, base+initial, got, 1e-9, "initial=%v", initial)
	}
}

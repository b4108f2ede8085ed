package irr

import (
	"math"

	"github.com/meenmo/tvm/annuity"
)

// ModifiedInternalRateOfReturn returns the MIRR of cashFlows: outflows are
// discounted at financeRate and inflows at reinvestRate.
//
// cashFlows should hold at least one positive and one negative value. Zero
// outflows, or rates that flip the sign of a discounted leg, come back as
// ±Inf or NaN.
func ModifiedInternalRateOfReturn(cashFlows []float64, financeRate, reinvestRate float64) float64 {
	n := len(cashFlows)
	positive, negative := splitBySign(cashFlows)

	numerator := annuity.NetPresentValue(reinvestRate, positive, 0)
	denominator := annuity.NetPresentValue(financeRate, negative, 0)

	return math.Pow(numerator/-denominator, 1/float64(n-1))*(1+reinvestRate) - 1
}

// splitBySign returns two series of the same length as flows: the inflows
// with outflows zeroed, and the outflows with inflows zeroed.
func splitBySign(flows []float64) (positive, negative []float64) {
	positive = make([]float64, len(flows))
	negative = make([]float64, len(flows))
	for i, c := range flows {
		if c > 0 {
			positive[i] = c
		} else if c < 0 {
			negative[i] = c
		}
	}
	return positive, negative
}

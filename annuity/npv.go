package annuity

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NetPresentValue discounts cashFlows at rate and adds initialInvestment:
//
//	initialInvestment + Σ cashFlows[i] / (1+rate)^i
//
// cashFlows[0] is taken at time zero and is not discounted.
func NetPresentValue(rate float64, cashFlows []float64, initialInvestment float64) float64 {
	return initialInvestment + floats.Sum(discount(cashFlows, discountFactors(rate, len(cashFlows))))
}

// discountFactors returns (1+rate)^i for i in [0, n).
func discountFactors(rate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(1+rate, float64(i))
	}
	return out
}

// discount divides flows element-wise by factors. It panics if the lengths differ.
func discount(flows, factors []float64) []float64 {
	out := make([]float64, len(flows))
	floats.DivTo(out, flows, factors)
	return out
}

// Package annuity solves the time-value-of-money identity
//
//	FV + PV·(1+r)^n + PMT·(1 + r·w)·((1+r)^n − 1)/r = 0
//
// for one of its variables, where w is the PaymentTiming adjustment. When
// r = 0 the annuity factor ((1+r)^n − 1)/r is replaced by its limit n.
//
// Sign convention: money received is positive, money paid is negative. A
// 15 000 loan (PV = +15000) is repaid with negative payments.
//
// All functions are pure and return IEEE results unchanged; a degenerate
// input yields NaN or ±Inf rather than an error.
package annuity

import "math"

// Payment returns the fixed per-period payment (principal plus interest)
// that takes presentValue to futureValue over periods at rate.
//
// periods must be non-zero; it is not checked.
func Payment(rate, periods, presentValue, futureValue float64, when PaymentTiming) float64 {
	growth := math.Pow(1+rate, periods)

	var fact float64
	if rate == 0 {
		fact = periods
	} else {
		fact = (1 + rate*when.Adjustment()) * (growth - 1) / rate
	}

	return -(futureValue + presentValue*growth) / fact
}

// FutureValue returns the balance after periods at rate, given a fixed
// payment and a starting presentValue.
func FutureValue(rate, periods, payment, presentValue float64, when PaymentTiming) float64 {
	if rate == 0 {
		return -(presentValue + payment*periods)
	}

	growth := math.Pow(1+rate, periods)
	return -presentValue*growth - payment*(1+rate*when.Adjustment())/rate*(growth-1)
}

// PresentValue returns the value today of a payment stream plus a final
// futureValue.
func PresentValue(rate, periods, payment, futureValue float64, when PaymentTiming) float64 {
	growth := math.Pow(1+rate, periods)

	var fact float64
	if rate == 0 {
		fact = periods
	} else {
		fact = (1 + rate*when.Adjustment()) * (growth - 1) / rate
	}

	return -(futureValue + payment*fact) / growth
}

// NumberOfPeriods returns how many payments take presentValue to futureValue.
//
// A balance that never moves gives +Inf; an unreachable target gives NaN.
func NumberOfPeriods(rate, payment, presentValue, futureValue float64, when PaymentTiming) float64 {
	if rate == 0 {
		return -(futureValue + presentValue) / payment
	}

	z := payment * (1 + rate*when.Adjustment()) / rate
	return math.Log((-futureValue+z)/(presentValue+z)) / math.Log(1+rate)
}

package annuity

import "math"

// Installment is one row of an amortization schedule.
//
// Payment, Interest and Principal follow the sign convention of Payment;
// Balance carries the sign of the present value and reaches the negated
// future value after the last period.
type Installment struct {
	Period    int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64
}

// InterestPayment returns the interest portion of the payment due in period
// per (1-based). With Begin timing the first payment carries no interest.
//
// per outside [1, periods] gives NaN.
func InterestPayment(rate, per, periods, presentValue, futureValue float64, when PaymentTiming) float64 {
	if per < 1 || per > periods {
		return math.NaN()
	}
	pmt := Payment(rate, periods, presentValue, futureValue, when)
	return interestPart(rate, per, pmt, presentValue, when)
}

// PrincipalPayment returns the principal portion of the payment due in period per.
func PrincipalPayment(rate, per, periods, presentValue, futureValue float64, when PaymentTiming) float64 {
	pmt := Payment(rate, periods, presentValue, futureValue, when)
	return pmt - InterestPayment(rate, per, periods, presentValue, futureValue, when)
}

// Schedule breaks every payment of a fixed-payment loan or savings plan into
// interest and principal. periods < 1 gives an empty schedule.
func Schedule(rate float64, periods int, presentValue, futureValue float64, when PaymentTiming) []Installment {
	if periods < 1 {
		return nil
	}

	n := float64(periods)
	pmt := Payment(rate, n, presentValue, futureValue, when)

	rows := make([]Installment, 0, periods)
	for p := 1; p <= periods; p++ {
		per := float64(p)
		interest := interestPart(rate, per, pmt, presentValue, when)
		rows = append(rows, Installment{
			Period:    p,
			Payment:   pmt,
			Interest:  interest,
			Principal: pmt - interest,
			Balance:   -FutureValue(rate, per, pmt, presentValue, when),
		})
	}
	return rows
}

// interestPart is the interest on the balance left after per-1 payments.
func interestPart(rate, per, pmt, presentValue float64, when PaymentTiming) float64 {
	if when == Begin {
		if per == 1 {
			return 0
		}
		return FutureValue(rate, per-1, pmt, presentValue, when) * rate / (1 + rate)
	}
	return FutureValue(rate, per-1, pmt, presentValue, when) * rate
}

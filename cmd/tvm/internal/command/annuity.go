package command

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/meenmo/tvm/annuity"
)

// Rates are per period in decimal (0.005 is 0.5% per period). Money follows
// the annuity sign convention: received positive, paid negative.

type paymentInput struct {
	task
	Rate         float64               `json:"rate"`
	Periods      float64               `json:"periods"`
	PresentValue float64               `json:"present_value"`
	FutureValue  float64               `json:"future_value"`
	When         annuity.PaymentTiming `json:"when"`
}

type paymentOutput struct {
	task
	Payment Number `json:"payment"`
}

type futureValueInput struct {
	task
	Rate         float64               `json:"rate"`
	Periods      float64               `json:"periods"`
	Payment      float64               `json:"payment"`
	PresentValue float64               `json:"present_value"`
	When         annuity.PaymentTiming `json:"when"`
}

type futureValueOutput struct {
	task
	FutureValue Number `json:"future_value"`
}

type presentValueInput struct {
	task
	Rate        float64               `json:"rate"`
	Periods     float64               `json:"periods"`
	Payment     float64               `json:"payment"`
	FutureValue float64               `json:"future_value"`
	When        annuity.PaymentTiming `json:"when"`
}

type presentValueOutput struct {
	task
	PresentValue Number `json:"present_value"`
}

type periodsInput struct {
	task
	Rate         float64               `json:"rate"`
	Payment      float64               `json:"payment"`
	PresentValue float64               `json:"present_value"`
	FutureValue  float64               `json:"future_value"`
	When         annuity.PaymentTiming `json:"when"`
}

type periodsOutput struct {
	task
	Periods Number `json:"periods"`
}

type scheduleInput struct {
	task
	Rate         float64               `json:"rate"`
	Periods      int                   `json:"periods"`
	PresentValue float64               `json:"present_value"`
	FutureValue  float64               `json:"future_value"`
	When         annuity.PaymentTiming `json:"when"`
}

type scheduleRow struct {
	Period    int    `json:"period"`
	Payment   Number `json:"payment"`
	Interest  Number `json:"interest"`
	Principal Number `json:"principal"`
	Balance   Number `json:"balance"`
}

type scheduleOutput struct {
	task
	Payment Number        `json:"payment"`
	Rows    []scheduleRow `json:"rows"`
}

// maxSchedulePeriods bounds the number of rows a single schedule may emit.
const maxSchedulePeriods = 1200

func newPaymentCmd() *jsonCommand[paymentInput, paymentOutput] {
	return &jsonCommand[paymentInput, paymentOutput]{
		name:     "pmt",
		synopsis: "fixed payment per period for a loan or savings plan",
		fields:   "rate, periods, present_value, future_value, when (end|begin)",
		compute: func(_ *Env, log *zap.Logger, in paymentInput) (paymentOutput, error) {
			pmt := Number(annuity.Payment(in.Rate, in.Periods, in.PresentValue, in.FutureValue, in.When))
			warnIfNotFinite(log, "payment", pmt, in)
			return paymentOutput{task: in.task, Payment: pmt}, nil
		},
	}
}

func newFutureValueCmd() *jsonCommand[futureValueInput, futureValueOutput] {
	return &jsonCommand[futureValueInput, futureValueOutput]{
		name:     "fv",
		synopsis: "balance after a number of periods",
		fields:   "rate, periods, payment, present_value, when (end|begin)",
		compute: func(_ *Env, log *zap.Logger, in futureValueInput) (futureValueOutput, error) {
			fv := Number(annuity.FutureValue(in.Rate, in.Periods, in.Payment, in.PresentValue, in.When))
			warnIfNotFinite(log, "future_value", fv, in)
			return futureValueOutput{task: in.task, FutureValue: fv}, nil
		},
	}
}

func newPresentValueCmd() *jsonCommand[presentValueInput, presentValueOutput] {
	return &jsonCommand[presentValueInput, presentValueOutput]{
		name:     "pv",
		synopsis: "value today of a payment stream and a final balance",
		fields:   "rate, periods, payment, future_value, when (end|begin)",
		compute: func(_ *Env, log *zap.Logger, in presentValueInput) (presentValueOutput, error) {
			pv := Number(annuity.PresentValue(in.Rate, in.Periods, in.Payment, in.FutureValue, in.When))
			warnIfNotFinite(log, "present_value", pv, in)
			return presentValueOutput{task: in.task, PresentValue: pv}, nil
		},
	}
}

func newPeriodsCmd() *jsonCommand[periodsInput, periodsOutput] {
	return &jsonCommand[periodsInput, periodsOutput]{
		name:     "nper",
		synopsis: "number of payments needed to reach a balance",
		fields:   "rate, payment, present_value, future_value, when (end|begin)",
		compute: func(_ *Env, log *zap.Logger, in periodsInput) (periodsOutput, error) {
			n := Number(annuity.NumberOfPeriods(in.Rate, in.Payment, in.PresentValue, in.FutureValue, in.When))
			warnIfNotFinite(log, "periods", n, in)
			return periodsOutput{task: in.task, Periods: n}, nil
		},
	}
}

func newScheduleCmd() *jsonCommand[scheduleInput, scheduleOutput] {
	return &jsonCommand[scheduleInput, scheduleOutput]{
		name:     "schedule",
		synopsis: "amortization table split into interest and principal",
		fields:   "rate, periods (integer), present_value, future_value, when (end|begin)",
		compute: func(_ *Env, _ *zap.Logger, in scheduleInput) (scheduleOutput, error) {
			if in.Periods < 1 || in.Periods > maxSchedulePeriods {
				return scheduleOutput{}, fmt.Errorf("periods must be between 1 and %d, got %d", maxSchedulePeriods, in.Periods)
			}

			installments := annuity.Schedule(in.Rate, in.Periods, in.PresentValue, in.FutureValue, in.When)
			rows := make([]scheduleRow, 0, len(installments))
			for _, inst := range installments {
				rows = append(rows, scheduleRow{
					Period:    inst.Period,
					Payment:   Number(inst.Payment),
					Interest:  Number(inst.Interest),
					Principal: Number(inst.Principal),
					Balance:   Number(inst.Balance),
				})
			}
			return scheduleOutput{
				task:    in.task,
				Payment: Number(installments[0].Payment),
				Rows:    rows,
			}, nil
		},
	}
}

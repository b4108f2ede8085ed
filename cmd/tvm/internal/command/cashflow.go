package command

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/meenmo/tvm/annuity"
	"github.com/meenmo/tvm/irr"
)

type npvInput struct {
	task
	Rate              float64   `json:"rate"`
	CashFlows         []float64 `json:"cash_flows"`
	InitialInvestment float64   `json:"initial_investment"`
}

type npvOutput struct {
	task
	NPV Number `json:"npv"`
}

type irrInput struct {
	task
	CashFlows []float64 `json:"cash_flows"`
	// Guess defaults to solver.guess from the configuration.
	Guess *float64 `json:"guess,omitempty"`
}

type irrOutput struct {
	task
	IRR        Number `json:"irr"`
	Iterations int    `json:"iterations"`
	Converged  bool   `json:"converged"`
}

type mirrInput struct {
	task
	CashFlows    []float64 `json:"cash_flows"`
	FinanceRate  float64   `json:"finance_rate"`
	ReinvestRate float64   `json:"reinvest_rate"`
}

type mirrOutput struct {
	task
	MIRR Number `json:"mirr"`
}

func newNPVCmd() *jsonCommand[npvInput, npvOutput] {
	return &jsonCommand[npvInput, npvOutput]{
		name:     "npv",
		synopsis: "net present value of a periodic cash-flow series",
		fields:   "rate, cash_flows (first value at time zero), initial_investment",
		compute: func(_ *Env, log *zap.Logger, in npvInput) (npvOutput, error) {
			v := Number(annuity.NetPresentValue(in.Rate, in.CashFlows, in.InitialInvestment))
			warnIfNotFinite(log, "npv", v, in)
			return npvOutput{task: in.task, NPV: v}, nil
		},
	}
}

func newIRRCmd() *jsonCommand[irrInput, irrOutput] {
	return &jsonCommand[irrInput, irrOutput]{
		name:     "irr",
		synopsis: "internal rate of return by Newton-Raphson",
		fields:   "cash_flows (at least 2 values), guess",
		compute: func(env *Env, log *zap.Logger, in irrInput) (irrOutput, error) {
			if len(in.CashFlows) < 2 {
				return irrOutput{}, fmt.Errorf("cash_flows must have at least 2 values, got %d", len(in.CashFlows))
			}

			guess := env.Config.Solver.Guess
			if in.Guess != nil {
				guess = *in.Guess
			}

			res := irr.Solve(in.CashFlows, guess, env.Config.Solver.IRR())
			if !res.Converged() {
				log.Warn("irr did not converge",
					zap.String("task_id", in.id()),
					zap.Float64("guess", guess),
					zap.Int("iterations", res.Iterations),
				)
			}
			return irrOutput{
				task:       in.task,
				IRR:        Number(res.Rate),
				Iterations: res.Iterations,
				Converged:  res.Converged(),
			}, nil
		},
	}
}

func newMIRRCmd() *jsonCommand[mirrInput, mirrOutput] {
	return &jsonCommand[mirrInput, mirrOutput]{
		name:     "mirr",
		synopsis: "modified internal rate of return",
		fields:   "cash_flows (at least 2 values), finance_rate, reinvest_rate",
		compute: func(_ *Env, log *zap.Logger, in mirrInput) (mirrOutput, error) {
			if len(in.CashFlows) < 2 {
				return mirrOutput{}, fmt.Errorf("cash_flows must have at least 2 values, got %d", len(in.CashFlows))
			}

			v := Number(irr.ModifiedInternalRateOfReturn(in.CashFlows, in.FinanceRate, in.ReinvestRate))
			warnIfNotFinite(log, "mirr", v, in)
			return mirrOutput{task: in.task, MIRR: v}, nil
		},
	}
}

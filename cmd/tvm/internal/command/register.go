// Package command implements the tvm subcommands. Each reads JSON input and
// writes JSON output; see Usage on the individual commands.
package command

import "github.com/google/subcommands"

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(newPaymentCmd(), "annuity")
	c.Register(newFutureValueCmd(), "annuity")
	c.Register(newPresentValueCmd(), "annuity")
	c.Register(newPeriodsCmd(), "annuity")
	c.Register(newScheduleCmd(), "annuity")

	c.Register(newNPVCmd(), "cash flows")
	c.Register(newIRRCmd(), "cash flows")
	c.Register(newMIRRCmd(), "cash flows")
}

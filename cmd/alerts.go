package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
	"github.com/Musbi8788/gambia-price-tracker/renderer"
	"github.com/google/subcommands"
)

type alertsCmd struct {
	threshold float64
	top       int
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "display significant price changes" }
func (*alertsCmd) Usage() string {
	return `gptrack alerts [-t <percent>] [-top <n>]

  Compares each record with the previous one for the same item and
  location and reports every change at or above the threshold. Alerts
  are computed from the store on every run, nothing is persisted.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.threshold, "t", 0, "Alert threshold in percent (defaults to the configured threshold)")
	f.IntVar(&c.top, "top", 0, "Show only the N biggest movements instead of the full chronology")
}

func (c *alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.threshold < 0 {
		fmt.Fprintln(os.Stderr, "Error: the threshold cannot be negative.")
		return subcommands.ExitUsageError
	}

	snap, cfg, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	threshold := c.threshold
	if threshold == 0 {
		threshold = cfg.AlertThreshold
	}

	alerts := pricetracker.Alerts(snap.Set, threshold)
	if c.top > 0 {
		alerts = pricetracker.TopAlerts(alerts, c.top)
	}
	printMarkdown(renderer.AlertsMarkdown(alerts, threshold, cfg.DefaultCurrency))
	return subcommands.ExitSuccess
}

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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	noAlerts bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display an overview of the whole dataset" }
func (*summaryCmd) Usage() string {
	return `gptrack summary [-no-alerts]

  Displays the dataset at a glance: totals, date span, price extremes,
  the most tracked item and location, and the biggest recent price
  movements.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noAlerts, "no-alerts", false, "Leave out the price-alert section")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, cfg, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out := renderer.SummaryMarkdown(pricetracker.Overview(snap.Set), cfg.DefaultCurrency)

	if !c.noAlerts {
		alerts := pricetracker.Alerts(snap.Set, cfg.AlertThreshold)
		if len(alerts) > 0 {
			top := pricetracker.TopAlerts(alerts, cfg.MaxAlerts)
			out += "\n" + renderer.AlertsMarkdown(top, cfg.AlertThreshold, cfg.DefaultCurrency)
		}
	}

	printMarkdown(out)
	return subcommands.ExitSuccess
}

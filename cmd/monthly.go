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

type monthlyCmd struct {
	item string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display an item's month-by-month average prices" }
func (*monthlyCmd) Usage() string {
	return `gptrack monthly -i <item>

  Buckets the item's records by calendar month and displays each month's
  average price, oldest month first.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item to summarize by month")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	snap, cfg, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	points := pricetracker.MonthlySeries(snap.Set, c.item)
	printMarkdown(renderer.MonthlyMarkdown(c.item, points, cfg.DefaultCurrency))
	return subcommands.ExitSuccess
}

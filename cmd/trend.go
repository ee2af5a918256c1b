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

type trendCmd struct {
	item     string
	location string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display an item's price history over time" }
func (*trendCmd) Usage() string {
	return `gptrack trend -i <item> [-l <location>]

  Displays the price history of one item, oldest first, with 7 and 30
  record rolling averages and the overall change.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item to chart")
	f.StringVar(&c.location, "l", "", "Only records from this location")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	snap, cfg, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	set := snap.Set
	if c.location != "" {
		set = pricetracker.Filter{Location: c.location}.Apply(set)
	}
	series := pricetracker.TrendSeries(set, c.item)
	printMarkdown(renderer.TrendMarkdown(c.item, series, cfg.DefaultCurrency))
	return subcommands.ExitSuccess
}

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

type statsCmd struct {
	item     string
	location string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display price statistics" }
func (*statsCmd) Usage() string {
	return `gptrack stats [-i <item>] [-l <location>]

  Displays count, average, median, lowest, highest and standard deviation
  of the recorded prices. Without flags it covers every record.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Only records of this item")
	f.StringVar(&c.location, "l", "", "Only records from this location")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, cfg, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter := pricetracker.Filter{Item: c.item, Location: c.location}
	stats := pricetracker.Summarize(filter.Apply(snap.Set))

	title := c.item
	if title == "" {
		title = "All Items"
	}
	if c.location != "" {
		title += " in " + c.location
	}
	printMarkdown(renderer.StatsMarkdown(title, stats, cfg.DefaultCurrency))
	return subcommands.ExitSuccess
}

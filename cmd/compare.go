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

type compareCmd struct {
	item string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare an item's prices across locations" }
func (*compareCmd) Usage() string {
	return `gptrack compare -i <item>

  Displays per-location price statistics for one item, cheapest average
  first, to show where it pays to shop.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item to compare across locations")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	snap, cfg, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	byItem := pricetracker.Filter{Item: c.item}.Apply(snap.Set)
	printMarkdown(renderer.CompareMarkdown(c.item, pricetracker.GroupByLocation(byItem), cfg.DefaultCurrency))
	return subcommands.ExitSuccess
}

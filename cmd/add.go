package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
	"github.com/google/subcommands"
)

type addCmd struct {
	item     string
	price    string
	location string
	date     string
	currency string
	unit     string
	tidy     bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record one price observation" }
func (*addCmd) Usage() string {
	return `gptrack add -i <item> -p <price> -l <location> [-d <date>] [-c <currency>] [-u <unit>]

  Validates the entry and appends it to the price store. The record is on
  disk before the command returns.

Usage Examples:
# Record today's rice price at the Banjul market.
$ gptrack add -i "Rice (1kg)" -p 35.50 -l Banjul

# Record last Saturday's bread price.
$ gptrack add -i Bread -p 10 -l Serekunda -d 2025-08-16 -u loaf
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item that was priced (see 'gptrack items' for suggestions)")
	f.StringVar(&c.price, "p", "", "Price paid, in currency units")
	f.StringVar(&c.location, "l", "", "Market or town where the price was seen")
	f.StringVar(&c.date, "d", "", "Day the price was seen (defaults to today)")
	f.StringVar(&c.currency, "c", "", "Currency code (defaults to the configured currency)")
	f.StringVar(&c.unit, "u", "", "Measurement unit, e.g. kg or loaf (defaults to the configured unit)")
	f.BoolVar(&c.tidy, "tidy", false, "Tidy the item name (collapse spaces, title-case) before saving")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" || c.price == "" || c.location == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.tidy {
		c.item = pricetracker.NormalizeItem(c.item)
	}

	store, cfg, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	snap, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	validator := pricetracker.NewValidator(cfg)
	if last, ok := snap.Set.LastRecordedAt(); ok {
		// Keep recording timestamps increasing across restarts.
		validator.AdvancePast(last)
	}
	observation, err := validator.Validate(pricetracker.Candidate{
		Item:     c.item,
		Price:    c.price,
		Location: c.location,
		Date:     c.date,
		Currency: c.currency,
		Unit:     c.unit,
	})
	if errors.Is(err, pricetracker.ErrValidation) {
		fmt.Fprintf(os.Stderr, "Invalid entry: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := store.Append(observation); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving entry: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Saved: %s at %s in %s (%s)\n",
		observation.Item, observation.Price.Display(observation.Currency), observation.Location, observation.Date)
	return subcommands.ExitSuccess
}

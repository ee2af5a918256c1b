// Package cmd implements the CLI application to track market prices.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register registers every subcommand on the commander.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&addCmd{}, "recording")
	c.Register(&listCmd{}, "recording")
	c.Register(&fmtCmd{}, "recording")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")
	c.Register(&compareCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&alertsCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&backupCmd{}, "data")

	c.Register(&itemsCmd{}, "reference")
	c.Register(&locationsCmd{}, "reference")
	c.Register(&topicCmd{}, "reference")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", filepath.Join("data", "prices.csv"), "Path to the price store file (CSV)")
var configFile = flag.String("config", "", "Path to the configuration file (YAML); defaults to config.yaml next to the store")
var Verbose = flag.Bool("v", false, "Log diagnostics (skipped rows, backup rotation) to stderr")

// LoadAppConfig loads the tracker configuration from -config, or from
// config.yaml next to the store file. A missing file means defaults.
func LoadAppConfig() (pricetracker.Config, error) {
	path := *configFile
	if path == "" {
		path = filepath.Join(filepath.Dir(*storeFile), "config.yaml")
	}
	return pricetracker.LoadConfig(path)
}

// OpenStore is the central function to get a handle on the app store.
func OpenStore() (*pricetracker.Store, pricetracker.Config, error) {
	cfg, err := LoadAppConfig()
	if err != nil {
		return nil, pricetracker.Config{}, err
	}
	return pricetracker.NewStore(*storeFile, cfg), cfg, nil
}

// LoadSnapshot opens the app store and loads it. Skipped-row counts are
// reported on stderr so damaged files never go unnoticed.
func LoadSnapshot() (*pricetracker.Snapshot, pricetracker.Config, error) {
	store, cfg, err := OpenStore()
	if err != nil {
		return nil, cfg, err
	}
	snap, err := store.Load()
	if err != nil {
		return nil, cfg, err
	}
	if snap.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d malformed rows in %s were skipped; run 'gptrack fmt' to repair the file.\n", snap.Skipped, store.Path())
	}
	return snap, cfg, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(110))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// filterFlags are the record-selection flags shared by the listing and
// export commands. Unset flags select everything.
type filterFlags struct {
	item     string
	location string
	from     string
	to       string
	minPrice string
	maxPrice string
}

func (ff *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&ff.item, "i", "", "Only records of this item")
	f.StringVar(&ff.location, "l", "", "Only records from this location")
	f.StringVar(&ff.from, "s", "", "Start of the date range. See 'gptrack topic readme' for date formats.")
	f.StringVar(&ff.to, "d", "", "End of the date range (defaults to today when -s is set)")
	f.StringVar(&ff.minPrice, "min", "", "Lowest price to include")
	f.StringVar(&ff.maxPrice, "max", "", "Highest price to include")
}

// Filter builds the record filter the flags describe.
func (ff *filterFlags) Filter() (pricetracker.Filter, error) {
	filter := pricetracker.Filter{Item: ff.item, Location: ff.location}

	if ff.from != "" || ff.to != "" {
		var from pricetracker.Date // zero: open lower bound
		to := pricetracker.Today()
		if ff.from != "" {
			d, err := pricetracker.ParseDate(ff.from)
			if err != nil {
				return filter, fmt.Errorf("invalid -s: %w", err)
			}
			from = d
		}
		if ff.to != "" {
			d, err := pricetracker.ParseDate(ff.to)
			if err != nil {
				return filter, fmt.Errorf("invalid -d: %w", err)
			}
			to = d
		}
		r := pricetracker.NewRange(from, to)
		filter.Dates = &r
	}

	if ff.minPrice != "" {
		p, err := pricetracker.ParsePrice(ff.minPrice)
		if err != nil {
			return filter, fmt.Errorf("invalid -min: %w", err)
		}
		filter.MinPrice = &p
	}
	if ff.maxPrice != "" {
		p, err := pricetracker.ParsePrice(ff.maxPrice)
		if err != nil {
			return filter, fmt.Errorf("invalid -max: %w", err)
		}
		filter.MaxPrice = &p
	}
	return filter, nil
}

// Command migrate upgrades price data from earlier tracker versions to the
// current storage schema.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
	"github.com/google/subcommands"
)

func main() {
	// The migrate tool needs its own set of flags, independent of the main gptrack tool.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&legacyCmd{}, "")
	commander.Register(&checkCmd{}, "")
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// --- legacyCmd ---

// legacyHeader is the storage schema of the first tracker version: no
// timestamp, currency or unit.
var legacyHeader = []string{"Item", "Price", "Location", "Date"}

type legacyCmd struct {
	in       string
	out      string
	currency string
	unit     string
}

func (*legacyCmd) Name() string { return "legacy" }
func (*legacyCmd) Synopsis() string {
	return "upgrades a 4-column price file to the current 7-column schema"
}
func (*legacyCmd) Usage() string {
	return `migrate legacy -in <old_prices.csv> -out <new_prices.csv>

  Reads a price file in the original 4-column format (Item, Price,
  Location, Date) and writes it in the current 7-column schema. The
  missing fields are filled in: currency and unit from the flags, and a
  recording timestamp synthesized from each row's date plus the row
  index, so the audit order matches the row order. The input and output
  must be different files; the input is never modified.
`
}

func (c *legacyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The old 4-column prices.csv to read")
	f.StringVar(&c.out, "out", "", "Where to write the upgraded file")
	f.StringVar(&c.currency, "currency", "GMD", "Currency code for the migrated rows")
	f.StringVar(&c.unit, "unit", "piece", "Measurement unit for the migrated rows")
}

func (c *legacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -in and -out flags are required.")
		return subcommands.ExitUsageError
	}
	abs := func(p string) string {
		a, err := filepath.Abs(p)
		if err != nil {
			return p
		}
		return a
	}
	if abs(c.in) == abs(c.out) {
		fmt.Fprintln(os.Stderr, "Error: -in and -out must be different files; the old data is kept as-is.")
		return subcommands.ExitUsageError
	}

	set, skipped, err := readLegacy(c.in, c.currency, c.unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", c.in, err)
		return subcommands.ExitFailure
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d malformed rows.\n", skipped)
	}

	if err := os.MkdirAll(filepath.Dir(c.out), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := os.Create(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := pricetracker.EncodeObservations(out, set); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Migrated %d records from %s to %s.\n", set.Len(), c.in, c.out)
	return subcommands.ExitSuccess
}

// readLegacy parses a 4-column legacy file. Recording timestamps do not
// exist in that format; each row gets its date at midnight UTC plus the row
// index in seconds, which keeps the audit order identical to the row order.
func readLegacy(path, currency, unit string) (*pricetracker.ObservationSet, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("could not read header: %w", err)
	}
	if len(header) >= 7 {
		return nil, 0, errors.New("file already has 7 columns or more, it does not need migrating")
	}
	if len(header) < len(legacyHeader) {
		return nil, 0, fmt.Errorf("header has %d columns, want %d", len(header), len(legacyHeader))
	}
	for i, want := range legacyHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, 0, fmt.Errorf("column %d is %q, want %q", i+1, header[i], want)
		}
	}

	set := pricetracker.NewObservationSet()
	skipped := 0
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			skipped++
			continue
		}
		if len(rec) < len(legacyHeader) {
			skipped++
			continue
		}
		price, err := pricetracker.ParsePrice(strings.TrimSpace(rec[1]))
		if err != nil || !price.IsPositive() {
			skipped++
			continue
		}
		day, err := pricetracker.ParseDate(strings.TrimSpace(rec[3]))
		if err != nil {
			skipped++
			continue
		}
		item := strings.TrimSpace(rec[0])
		location := strings.TrimSpace(rec[2])
		if item == "" || location == "" {
			skipped++
			continue
		}
		set.Append(pricetracker.Observation{
			Item:       item,
			Price:      price,
			Location:   location,
			Date:       day,
			RecordedAt: midnightUTC(day).Add(time.Duration(row) * time.Second),
			Currency:   currency,
			Unit:       unit,
		})
	}
	return set, skipped, nil
}

func midnightUTC(d pricetracker.Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// --- checkCmd ---

type checkCmd struct {
	store string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verifies a price store and reports its shape" }
func (*checkCmd) Usage() string {
	return `migrate check -store <prices.csv>

  Loads the store the same way the tracker does and reports what it
  finds: record count, items, locations, date span, and how many rows
  had to be skipped. Use it after a migration to confirm the result.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.store, "store", filepath.Join("data", "prices.csv"), "The store file to verify")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := pricetracker.NewStore(c.store, pricetracker.DefaultConfig())
	snap, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", c.store, err)
		return subcommands.ExitFailure
	}

	set := snap.Set
	fmt.Printf("Store:     %s\n", c.store)
	fmt.Printf("Records:   %d\n", set.Len())
	fmt.Printf("Items:     %d\n", len(set.Items()))
	fmt.Printf("Locations: %d\n", len(set.Locations()))
	if dates, ok := set.Dates(); ok {
		fmt.Printf("Dates:     %s\n", dates)
	}
	if snap.Skipped > 0 {
		fmt.Printf("Skipped:   %d malformed rows (run 'gptrack fmt' to repair)\n", snap.Skipped)
		return subcommands.ExitFailure
	}
	fmt.Println("The store is healthy.")
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
	"github.com/google/subcommands"
)

type importCmd struct {
	format   string
	jsonPath string
	dryRun   bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge records from a CSV or JSON export" }
func (*importCmd) Usage() string {
	return `gptrack import [-f <format>] [-path <jsonpath>] [-dry-run] <file>

  Reads records from an exported file and merges them into the store. The
  merged store is sorted by recording time and rewritten atomically; the
  previous version is backed up first.

  For JSON documents that wrap the record array, -path selects it, e.g.
  -path '$.records'.

Usage Examples:
# Merge a colleague's survey.
$ gptrack import survey.csv

# Ingest a dump from another tool.
$ gptrack import -f json -path '$.records' dump.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "f", "", "Input format: csv or json (guessed from the file name when empty)")
	f.StringVar(&c.jsonPath, "path", "", "JSONPath expression locating the record array inside the document")
	f.BoolVar(&c.dryRun, "dry-run", false, "Parse and report, but do not touch the store")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	format := c.format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(input)), ".")
	}

	in, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var incoming *pricetracker.ObservationSet
	switch format {
	case "csv":
		var skipped int
		incoming, skipped, err = pricetracker.ImportCSV(in)
		if err == nil && skipped > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %d malformed rows in %s were skipped.\n", skipped, input)
		}
	case "json":
		incoming, err = pricetracker.ImportJSON(in, c.jsonPath)
	default:
		fmt.Fprintf(os.Stderr, "Error: cannot import format %q (csv or json).\n", format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", input, err)
		return subcommands.ExitFailure
	}
	if incoming.Len() == 0 {
		fmt.Println("Nothing to import.")
		return subcommands.ExitSuccess
	}
	if c.dryRun {
		fmt.Printf("Would import %d records from %s.\n", incoming.Len(), input)
		return subcommands.ExitSuccess
	}

	store, _, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	snap, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	merged := pricetracker.NewObservationSet()
	for _, o := range snap.Set.All() {
		merged.Append(o)
	}
	for _, o := range incoming.All() {
		merged.Append(o)
	}

	if err := store.Save(merged.Sorted()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d records from %s; the store now holds %d.\n", incoming.Len(), input, merged.Len())
	return subcommands.ExitSuccess
}

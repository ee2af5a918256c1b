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

type exportCmd struct {
	filters filterFlags
	format  string
	out     string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export records to CSV, JSON or XLSX" }
func (*exportCmd) Usage() string {
	return `gptrack export [-f <format>] [-o <file>] [selection flags]

  Serializes the selected records and writes them to a file, or to stdout
  with '-o -'. The CSV export uses the storage schema and reimports
  losslessly. Formats: csv, json, xlsx.

Usage Examples:
# Everything, as JSON, on stdout.
$ gptrack export -f json -o -

# June's rice prices as a spreadsheet.
$ gptrack export -i "Rice (1kg)" -s 2025-06-01 -d 2025-06-30 -o rice.xlsx
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	f.StringVar(&c.format, "f", "", "Export format: csv, json or xlsx (guessed from -o when empty)")
	f.StringVar(&c.out, "o", "", "Output file, or '-' for stdout (default: prices.<format>)")
}

// pickFormat resolves the export format from -f, or from the -o extension.
func (c *exportCmd) pickFormat() (pricetracker.ExportFormat, error) {
	name := c.format
	if name == "" {
		name = "csv"
		if c.out != "" && c.out != "-" {
			if ext := strings.ToLower(filepath.Ext(c.out)); ext != "" {
				name = strings.TrimPrefix(ext, ".")
			}
		}
	}
	return pricetracker.ParseExportFormat(name)
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := c.pickFormat()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	filter, err := c.filters.Filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	snap, _, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	selected := filter.Apply(snap.Set)

	content, err := pricetracker.Export(selected, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}

	// The core returns content; writing it is this command's job.
	out := c.out
	if out == "-" {
		if _, err := os.Stdout.Write(content); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to stdout: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	if out == "" {
		out = "prices" + format.Ext()
	}
	if err := os.WriteFile(out, content, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d records to %s\n", selected.Len(), out)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Musbi8788/gambia-price-tracker/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	filters filterFlags
	tail    int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list recorded prices" }
func (*listCmd) Usage() string {
	return `gptrack list [-i <item>] [-l <location>] [-s <start>] [-d <end>] [-min <price>] [-max <price>] [-n <count>]

  Lists price records in recorded order. All selection flags are optional
  and combine: a record must match every one that is set.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.filters.SetFlags(f)
	f.IntVar(&c.tail, "n", 0, "Show only the last N matching records")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.ObservationsMarkdown(filter.Apply(snap.Set), c.tail))
	return subcommands.ExitSuccess
}

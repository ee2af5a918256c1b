package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
	"github.com/google/subcommands"
)

type itemsCmd struct {
	all bool
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list item names" }
func (*itemsCmd) Usage() string {
	return `gptrack items [-all]

  Lists the item names present in the store, one per line, for scripting
  and shell completion. With -all the commonly surveyed goods are listed
  too, so a fresh store still offers suggestions.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Include the common Gambian market goods")
}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, _, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, name := range mergeNames(snap.Set.Items(), c.all, pricetracker.CommonItems) {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
	"github.com/google/subcommands"
)

type locationsCmd struct {
	all bool
}

func (*locationsCmd) Name() string     { return "locations" }
func (*locationsCmd) Synopsis() string { return "list location names" }
func (*locationsCmd) Usage() string {
	return `gptrack locations [-all]

  Lists the location names present in the store, one per line. With -all
  the known Gambian towns and markets are listed too.
`
}

func (c *locationsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Include the known Gambian towns and markets")
}

func (c *locationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, _, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, name := range mergeNames(snap.Set.Locations(), c.all, pricetracker.GambianLocations) {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}

// mergeNames combines the recorded names with the reference list when asked,
// sorted and without duplicates.
func mergeNames(recorded []string, withReference bool, reference []string) []string {
	if !withReference {
		return recorded
	}
	merged := slices.Clone(recorded)
	for _, name := range reference {
		if !slices.Contains(merged, name) {
			merged = append(merged, name)
		}
	}
	slices.Sort(merged)
	return merged
}

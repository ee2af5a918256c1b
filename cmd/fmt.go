package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the store file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `gptrack fmt

  Loads the store tolerantly, skipping rows that no longer parse, sorts
  the records by recording time and rewrites the file atomically. This is
  the repair path for a store with damaged rows: what can be read is
  kept, the damage is dropped, and the previous file is backed up first.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := store.Save(snap.Set.Sorted()); err != nil {
		fmt.Fprintf(os.Stderr, "Error rewriting store: %v\n", err)
		return subcommands.ExitFailure
	}

	if snap.Skipped > 0 {
		fmt.Printf("Rewrote %s: kept %d records, dropped %d damaged rows (the old file is in the backups).\n",
			store.Path(), snap.Set.Len(), snap.Skipped)
	} else {
		fmt.Printf("Rewrote %s: %d records, nothing to repair.\n", store.Path(), snap.Set.Len())
	}
	return subcommands.ExitSuccess
}

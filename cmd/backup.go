package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
)

type backupCmd struct {
	list bool
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "back up the price store" }
func (*backupCmd) Usage() string {
	return `gptrack backup [-list]

  Copies the store file into its backup directory under a timestamped
  name and deletes the oldest copies beyond the retention bound. The
  store itself is never touched. Backups also happen automatically
  before every rewrite (import, fmt).

Usage Examples:
# Take a backup now.
$ gptrack backup

# See what copies exist.
$ gptrack backup -list
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the current backup copies instead of taking one")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.list {
		backups, err := store.Backups()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing backups: %v\n", err)
			return subcommands.ExitFailure
		}
		if len(backups) == 0 {
			fmt.Printf("No backups in %s yet.\n", store.BackupDir())
			return subcommands.ExitSuccess
		}
		for _, path := range backups {
			fmt.Println(filepath.Base(path))
		}
		return subcommands.ExitSuccess
	}

	dst, err := store.Backup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error backing up: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Backed up %s to %s\n", store.Path(), dst)
	return subcommands.ExitSuccess
}

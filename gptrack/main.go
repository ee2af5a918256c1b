// Command gptrack tracks commodity prices across Gambian markets.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
	"github.com/Musbi8788/gambia-price-tracker/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// When the shell asks for completions, this prints them and exits;
	// otherwise it is a no-op and the normal run proceeds.
	completer().Complete("gptrack")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	if !*cmd.Verbose {
		// The core logs diagnostics (skipped rows, backup rotation)
		// through the standard logger; quiet by default.
		log.SetOutput(io.Discard)
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// completer describes the CLI to the shell: subcommands, their flags, and
// value suggestions fed from the reference lists.
func completer() *complete.Command {
	items := predict.Set(pricetracker.CommonItems)
	locations := predict.Set(pricetracker.GambianLocations)
	selection := map[string]complete.Predictor{
		"i":   items,
		"l":   locations,
		"s":   predict.Nothing,
		"d":   predict.Nothing,
		"min": predict.Nothing,
		"max": predict.Nothing,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store":  predict.Files("*.csv"),
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"i": items,
				"l": locations,
				"p": predict.Nothing,
				"d": predict.Nothing,
				"c": predict.Set{"GMD", "USD", "EUR", "GBP", "XOF"},
				"u": predict.Set{"piece", "kg", "loaf", "L", "dozen"},
			}},
			"list":    {Flags: selection},
			"fmt":     {},
			"summary": {},
			"stats": {Flags: map[string]complete.Predictor{
				"i": items,
				"l": locations,
			}},
			"compare": {Flags: map[string]complete.Predictor{"i": items}},
			"trend": {Flags: map[string]complete.Predictor{
				"i": items,
				"l": locations,
			}},
			"monthly": {Flags: map[string]complete.Predictor{"i": items}},
			"alerts":  {},
			"export": {Flags: func() map[string]complete.Predictor {
				flags := map[string]complete.Predictor{
					"f": predict.Set{"csv", "json", "xlsx"},
					"o": predict.Files("*"),
				}
				for name, p := range selection {
					flags[name] = p
				}
				return flags
			}()},
			"import": {Flags: map[string]complete.Predictor{
				"f":    predict.Set{"csv", "json"},
				"path": predict.Nothing,
			}, Args: predict.Files("*")},
			"backup":    {},
			"items":     {},
			"locations": {},
			"topic": {Args: predict.Set{
				"readme", "storage", "alerts", "export", "configuration",
			}},
			"help": {},
		},
	}
}

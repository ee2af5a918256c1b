package renderer

import (
	pricetracker "github.com/Musbi8788/gambia-price-tracker"
)

// ObservationsMarkdown renders price records as a table, in recorded order. A
// positive limit keeps only the most recent records.
func ObservationsMarkdown(set *pricetracker.ObservationSet, limit int) string {
	r := newReport("")
	r.Printf("## Price Records\n\n")
	if set.Len() == 0 {
		r.Printf("No price records yet.\n")
		return r.String()
	}

	start := 0
	if limit > 0 && set.Len() > limit {
		start = set.Len() - limit
	}

	r.Printf("| Date | Item | Price | Location | Unit |\n")
	r.Printf("|:---|:---|---:|:---|:---|\n")
	for i := start; i < set.Len(); i++ {
		o := set.At(i)
		r.Printf("| %s | %s | %s | %s | %s |\n", o.Date, o.Item, o.Price.Display(o.Currency), o.Location, o.Unit)
	}
	r.Printf("\n")
	if start > 0 {
		r.Printf("Showing the last %d of %d records.\n", set.Len()-start, set.Len())
	} else {
		r.Printf("%d records.\n", set.Len())
	}
	return r.String()
}

package renderer

import (
	"sort"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
)

// StatsMarkdown renders the price statistics of one item.
func StatsMarkdown(item string, s pricetracker.Stats, currency string) string {
	r := newReport(currency)
	r.Printf("## Price Statistics for %s\n\n", item)
	if s.Count == 0 {
		r.Printf("No records for %s.\n", item)
		return r.String()
	}
	r.Printf("| Metric | Value |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Records | %d |\n", s.Count)
	r.Printf("| Average | %s |\n", r.money(s.Mean))
	r.Printf("| Median | %s |\n", r.money(s.Median))
	r.Printf("| Lowest | %s |\n", r.money(s.Min))
	r.Printf("| Highest | %s |\n", r.money(s.Max))
	r.Printf("| Std. deviation | %.2f |\n", s.StdDev)
	return r.String()
}

// CompareMarkdown renders per-location statistics of one item, cheapest
// average first.
func CompareMarkdown(item string, groups map[string]pricetracker.Stats, currency string) string {
	r := newReport(currency)
	r.Printf("## %s by Location\n\n", item)
	if len(groups) == 0 {
		r.Printf("No records for %s.\n", item)
		return r.String()
	}

	locations := make([]string, 0, len(groups))
	for location := range groups {
		locations = append(locations, location)
	}
	sort.Slice(locations, func(i, j int) bool {
		a, b := groups[locations[i]], groups[locations[j]]
		if !a.Mean.Equal(b.Mean) {
			return a.Mean.LessThan(b.Mean)
		}
		return locations[i] < locations[j]
	})

	r.Printf("| Location | Records | Average | Lowest | Highest |\n")
	r.Printf("|:---|---:|---:|---:|---:|\n")
	for _, location := range locations {
		s := groups[location]
		r.Printf("| %s | %d | %s | %s | %s |\n", location, s.Count, r.money(s.Mean), r.money(s.Min), r.money(s.Max))
	}
	r.Printf("\n")
	if len(locations) > 1 {
		r.Printf("Cheapest on average in %s.\n", locations[0])
	}
	return r.String()
}

package renderer

import (
	"fmt"
	"io"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
)

// SummaryMarkdown renders the dashboard overview of the whole dataset.
func SummaryMarkdown(s *pricetracker.DataSummary, currency string) string {
	r := newReport(currency)
	r.Printf("# Market Data Overview\n\n")

	r.Printf("| Metric | Value |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Records | %d |\n", s.Total)
	r.Printf("| Items tracked | %d |\n", s.UniqueItems)
	r.Printf("| Locations | %d |\n", s.Locations)
	if s.Dates != nil {
		r.Printf("| Date range | %s |\n", s.Dates)
	}
	r.Printf("| Recorded this week | %d |\n", s.RecentCount)
	r.Printf("\n")

	ConditionalBlock(r, func(w io.Writer) bool {
		if s.Total == 0 {
			return false
		}
		fmt.Fprintf(w, "## Prices\n\n")
		fmt.Fprintf(w, "| | |\n")
		fmt.Fprintf(w, "|:---|---:|\n")
		fmt.Fprintf(w, "| Average | %s |\n", r.money(s.AvgPrice))
		if s.Cheapest != nil {
			fmt.Fprintf(w, "| Lowest | %s (%s at %s, %s) |\n",
				r.money(s.MinPrice), s.Cheapest.Item, s.Cheapest.Location, s.Cheapest.Date)
		}
		if s.MostExpensive != nil {
			fmt.Fprintf(w, "| Highest | %s (%s at %s, %s) |\n",
				r.money(s.MaxPrice), s.MostExpensive.Item, s.MostExpensive.Location, s.MostExpensive.Date)
		}
		fmt.Fprintf(w, "\nMost tracked item: %s. Busiest market: %s.\n",
			s.MostTrackedItem, s.MostTrackedLocation)
		return true
	})
	return r.String()
}

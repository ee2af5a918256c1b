package renderer

import (
	pricetracker "github.com/Musbi8788/gambia-price-tracker"
)

// TrendMarkdown renders the price history of one item, oldest first, with
// rolling averages over the last 7 and 30 records alongside the raw prices.
func TrendMarkdown(item string, series []pricetracker.TrendPoint, currency string) string {
	r := newReport(currency)
	r.Printf("## Price Trend for %s\n\n", item)
	if len(series) == 0 {
		r.Printf("No records for %s.\n", item)
		return r.String()
	}

	week := pricetracker.RollingAverage(series, 7)
	month := pricetracker.RollingAverage(series, 30)

	r.Printf("| Date | Price | Location | 7-rec avg | 30-rec avg |\n")
	r.Printf("|:---|---:|:---|---:|---:|\n")
	for i, pt := range series {
		r.Printf("| %s | %s | %s | %s | %s |\n", pt.Date, r.money(pt.Price), pt.Location, r.money(week[i]), r.money(month[i]))
	}
	r.Printf("\n")

	if len(series) > 1 {
		first, last := series[0], series[len(series)-1]
		change := last.Price.ChangeFrom(first.Price)
		r.Printf("Overall change: %s over %d records (%s to %s).\n",
			change.SignedString(), len(series), first.Date, last.Date)
	}
	return r.String()
}

// MonthlyMarkdown renders the month-by-month averages of one item.
func MonthlyMarkdown(item string, points []pricetracker.MonthlyPoint, currency string) string {
	r := newReport(currency)
	r.Printf("## Monthly Averages for %s\n\n", item)
	if len(points) == 0 {
		r.Printf("No records for %s.\n", item)
		return r.String()
	}
	r.Printf("| Month | Average | Records |\n")
	r.Printf("|:---|---:|---:|\n")
	for _, pt := range points {
		r.Printf("| %s | %s | %d |\n", pt.Month, r.money(pt.Mean), pt.Count)
	}
	return r.String()
}

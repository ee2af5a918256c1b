package renderer

import (
	pricetracker "github.com/Musbi8788/gambia-price-tracker"
)

// AlertsMarkdown renders price alerts in the order given, one row per alert.
func AlertsMarkdown(alerts []pricetracker.Alert, threshold float64, currency string) string {
	r := newReport(currency)
	r.Printf("## Price Alerts\n\n")
	if len(alerts) == 0 {
		r.Printf("No price changes of %.0f%% or more.\n", threshold)
		return r.String()
	}
	r.Printf("| | Item | Location | Change | From | To | When |\n")
	r.Printf("|:---|:---|:---|---:|---:|---:|:---|\n")
	for _, a := range alerts {
		arrow := "↑"
		if a.Change < 0 {
			arrow = "↓"
		}
		r.Printf("| %s | %s | %s | %s | %s | %s | %s to %s |\n",
			arrow, a.Item, a.Location, a.Change.SignedString(),
			r.money(a.FromPrice), r.money(a.ToPrice), a.FromDate, a.ToDate)
	}
	return r.String()
}

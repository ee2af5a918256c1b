package pricetracker

import (
	"fmt"
	"slices"
	"sort"
)

// Alert flags a significant price movement: two time-adjacent observations
// of the same item in the same location whose relative change reaches the
// threshold.
type Alert struct {
	Item      string
	Location  string
	FromPrice Price
	ToPrice   Price
	Change    Percent
	FromDate  Date
	ToDate    Date
}

// Trend reports the direction of the movement.
func (a Alert) Trend() string {
	if a.Change > 0 {
		return "increase"
	}
	return "decrease"
}

func (a Alert) String() string {
	return fmt.Sprintf("%s at %s: %s from %s to %s (%s)",
		a.Item, a.Location, a.Trend(), a.FromPrice, a.ToPrice, a.Change.SignedString())
}

// Alerts derives the price-change alerts of the set.
//
// For every (item, location) pair it walks the pair's trend series and
// compares each observation with the one before it; a relative change of at
// least threshold percent, in either direction, becomes an alert. A pair
// with a single observation yields nothing. Prices in the store are always
// positive, so the division is safe.
//
// Alerts are derived on demand, never persisted. The result is ordered by
// item, then location, then time; TopAlerts reorders by magnitude for
// display.
func Alerts(set *ObservationSet, threshold float64) []Alert {
	var alerts []Alert
	for _, item := range set.Items() {
		byItem := Filter{Item: item}.Apply(set)
		for _, location := range byItem.Locations() {
			series := TrendSeries(Filter{Location: location}.Apply(byItem), item)
			for i := 1; i < len(series); i++ {
				prev, curr := series[i-1], series[i]
				change := curr.Price.ChangeFrom(prev.Price)
				if change.Abs() < Percent(threshold) {
					continue
				}
				alerts = append(alerts, Alert{
					Item:      item,
					Location:  location,
					FromPrice: prev.Price,
					ToPrice:   curr.Price,
					Change:    change,
					FromDate:  prev.Date,
					ToDate:    curr.Date,
				})
			}
		}
	}
	return alerts
}

// TopAlerts returns the n biggest movements, largest magnitude first; ties
// keep their original order. The input is not modified. A negative n means
// no cap.
func TopAlerts(alerts []Alert, n int) []Alert {
	sorted := slices.Clone(alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Change.Abs() > sorted[j].Change.Abs()
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

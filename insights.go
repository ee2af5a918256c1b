package pricetracker

// ObservationRef points at a notable observation.
type ObservationRef struct {
	Item     string
	Price    Price
	Location string
	Date     Date
}

// DataSummary is the dashboard overview of a whole dataset.
type DataSummary struct {
	Total       int
	UniqueItems int
	Locations   int
	// Dates spans the observed market dates; nil when the set is empty.
	Dates    *Range
	AvgPrice Price
	MinPrice Price
	MaxPrice Price
	// MostExpensive and Cheapest are nil when the set is empty.
	MostExpensive *ObservationRef
	Cheapest      *ObservationRef
	// Mode of the item and location columns. Ties go to the
	// lexicographically smallest name, so the result is deterministic.
	MostTrackedItem     string
	MostTrackedLocation string
	// RecentCount is how many observations were made in the last 7 days.
	RecentCount int
}

// Overview computes the dashboard summary of the set.
func Overview(set *ObservationSet) *DataSummary {
	summary := &DataSummary{
		Total:       set.Len(),
		UniqueItems: len(set.Items()),
		Locations:   len(set.Locations()),
	}
	if set.Len() == 0 {
		return summary
	}

	if dates, ok := set.Dates(); ok {
		summary.Dates = &dates
	}

	stats := Summarize(set)
	summary.AvgPrice = stats.Mean
	summary.MinPrice = stats.Min
	summary.MaxPrice = stats.Max

	itemCounts := make(map[string]int)
	locationCounts := make(map[string]int)
	cheapest, dearest := set.At(0), set.At(0)
	recentSince := Today().Add(-7)
	for _, o := range set.All() {
		itemCounts[o.Item]++
		locationCounts[o.Location]++
		if o.Price.LessThan(cheapest.Price) {
			cheapest = o
		}
		if o.Price.GreaterThan(dearest.Price) {
			dearest = o
		}
		if !o.Date.Before(recentSince) {
			summary.RecentCount++
		}
	}
	summary.Cheapest = ref(cheapest)
	summary.MostExpensive = ref(dearest)
	summary.MostTrackedItem = mode(itemCounts)
	summary.MostTrackedLocation = mode(locationCounts)
	return summary
}

func ref(o Observation) *ObservationRef {
	return &ObservationRef{Item: o.Item, Price: o.Price, Location: o.Location, Date: o.Date}
}

// mode returns the most frequent key, smallest name first on ties.
func mode(counts map[string]int) string {
	var best string
	bestCount := 0
	for name, count := range counts {
		if count > bestCount || (count == bestCount && name < best) {
			best, bestCount = name, count
		}
	}
	return best
}

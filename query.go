package pricetracker

import (
	"maps"
	"math"
	"slices"
	"sort"
	"time"
)

// Stats summarizes the prices of a set of observations.
//
// The zero value is the "no data" result: count 0 and zero prices, never
// NaN. Mean and median are exact decimals; the standard deviation is the
// population deviation, computed in float64 since it has no exact decimal
// form (a single observation deviates by 0, not NaN).
type Stats struct {
	Count  int
	Mean   Price
	Median Price
	Min    Price
	Max    Price
	StdDev float64
}

// Summarize computes price statistics over the whole set.
func Summarize(set *ObservationSet) Stats {
	n := set.Len()
	if n == 0 {
		return Stats{}
	}

	prices := make([]Price, 0, n)
	sum := P(0)
	min, max := set.At(0).Price, set.At(0).Price
	for _, o := range set.All() {
		prices = append(prices, o.Price)
		sum = sum.Add(o.Price)
		if o.Price.LessThan(min) {
			min = o.Price
		}
		if o.Price.GreaterThan(max) {
			max = o.Price
		}
	}
	mean := sum.Div(n)

	sort.Slice(prices, func(i, j int) bool { return prices[i].LessThan(prices[j]) })
	var median Price
	if n%2 == 1 {
		median = prices[n/2]
	} else {
		median = prices[n/2-1].Add(prices[n/2]).Div(2)
	}

	m := mean.InexactFloat64()
	var ss float64
	for _, p := range prices {
		d := p.InexactFloat64() - m
		ss += d * d
	}

	return Stats{
		Count:  n,
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
		StdDev: math.Sqrt(ss / float64(n)),
	}
}

// GroupByLocation partitions the set by location and summarizes each group.
// Every observation lands in exactly one group, so the group counts sum to
// the set's count.
func GroupByLocation(set *ObservationSet) map[string]Stats {
	groups := make(map[string]Stats)
	for _, location := range set.Locations() {
		groups[location] = Summarize(Filter{Location: location}.Apply(set))
	}
	return groups
}

// TrendPoint is one point of a trend series.
type TrendPoint struct {
	Date       Date
	Price      Price
	Location   string
	RecordedAt time.Time
}

// TrendSeries returns every observation of the item, sorted ascending by
// market date, ties broken by recording time ascending. Change detection and
// charting rely on this ordering.
func TrendSeries(set *ObservationSet, item string) []TrendPoint {
	var series []TrendPoint
	for _, o := range set.Observations(ByItem(item)) {
		series = append(series, TrendPoint{
			Date:       o.Date,
			Price:      o.Price,
			Location:   o.Location,
			RecordedAt: o.RecordedAt,
		})
	}
	sort.SliceStable(series, func(i, j int) bool {
		if series[i].Date != series[j].Date {
			return series[i].Date.Before(series[j].Date)
		}
		return series[i].RecordedAt.Before(series[j].RecordedAt)
	})
	return series
}

// RollingAverage computes the trailing mean over up to window points for
// each point of the series. The first points average over what exists so
// far, so the result has the same length as the series.
func RollingAverage(series []TrendPoint, window int) []Price {
	if window < 1 || len(series) == 0 {
		return nil
	}
	out := make([]Price, len(series))
	sum := P(0)
	for i, pt := range series {
		sum = sum.Add(pt.Price)
		if i >= window {
			sum = sum.Sub(series[i-window].Price)
		}
		out[i] = sum.Div(min(i+1, window))
	}
	return out
}

// MonthlyPoint is the price summary of one calendar month.
type MonthlyPoint struct {
	Month string // "2006-01"
	Mean  Price
	Count int
}

// MonthlySeries buckets the item's observations by calendar month and
// averages each bucket, oldest month first.
func MonthlySeries(set *ObservationSet, item string) []MonthlyPoint {
	sums := make(map[string]Price)
	counts := make(map[string]int)
	for _, o := range set.Observations(ByItem(item)) {
		month := o.Date.Format(MonthFormat)
		sums[month] = sums[month].Add(o.Price)
		counts[month]++
	}

	months := slices.Collect(maps.Keys(sums))
	slices.Sort(months)
	out := make([]MonthlyPoint, 0, len(months))
	for _, month := range months {
		out = append(out, MonthlyPoint{
			Month: month,
			Mean:  sums[month].Div(counts[month]),
			Count: counts[month],
		})
	}
	return out
}

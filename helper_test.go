package pricetracker

import "time"

var testEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// ob is a helper for tests to build an observation from consts. seq spaces
// recording timestamps one second apart so insertion order is unambiguous.
func ob(seq int, item string, price float64, location, day string) Observation {
	return Observation{
		Item:       item,
		Price:      P(price),
		Location:   location,
		Date:       MustParse(day),
		RecordedAt: testEpoch.Add(time.Duration(seq) * time.Second),
		Currency:   "GMD",
		Unit:       "piece",
	}
}

// setOf is a helper for tests to build a set in recorded order.
func setOf(obs ...Observation) *ObservationSet {
	s := NewObservationSet()
	s.Append(obs...)
	return s
}

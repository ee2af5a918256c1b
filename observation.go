package pricetracker

import (
	"iter"
	"maps"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Observation is one recorded price: an item seen at a price, in a location,
// on a market date.
//
// Date is the day the price was seen at the market; RecordedAt is the instant
// the record entered the tracker. RecordedAt never changes after validation,
// it is the tie-breaker that keeps same-day observations ordered.
type Observation struct {
	Item       string
	Price      Price
	Location   string
	Date       Date
	RecordedAt time.Time
	Currency   string
	Unit       string
}

// Equal reports whether two observations carry the same data. Prices compare
// by value ("5" equals "5.00"), timestamps by instant.
func (o Observation) Equal(p Observation) bool {
	return o.Item == p.Item &&
		o.Price.Equal(p.Price) &&
		o.Location == p.Location &&
		o.Date == p.Date &&
		o.RecordedAt.Equal(p.RecordedAt) &&
		o.Currency == p.Currency &&
		o.Unit == p.Unit
}

var titleCaser = cases.Title(language.English)

// NormalizeItem tidies a hand-typed item name for display: trimmed, inner
// whitespace collapsed, title-cased ("  red   onions " -> "Red Onions").
// Validation does not apply it; entry forms call it before validating so
// that what the user confirmed is what gets stored.
func NormalizeItem(s string) string {
	return titleCaser.String(strings.Join(strings.Fields(s), " "))
}

// ObservationSet holds observations in recorded order, the order rows appear
// in the store file.
type ObservationSet struct {
	records []Observation
}

// NewObservationSet creates an empty set.
func NewObservationSet() *ObservationSet {
	return &ObservationSet{records: make([]Observation, 0)}
}

// Append adds observations at the end, preserving recorded order.
func (s *ObservationSet) Append(obs ...Observation) {
	s.records = append(s.records, obs...)
}

// Len returns the number of observations in the set.
func (s *ObservationSet) Len() int { return len(s.records) }

// At returns the i-th observation in recorded order.
func (s *ObservationSet) At(i int) Observation { return s.records[i] }

// All returns an iterator over every observation in recorded order.
func (s *ObservationSet) All() iter.Seq2[int, Observation] {
	return func(yield func(int, Observation) bool) {
		for i, o := range s.records {
			if !yield(i, o) {
				return
			}
		}
	}
}

// Observations returns an iterator over the observations matching every
// given predicate, in recorded order. With no predicates it yields the whole
// set.
func (s *ObservationSet) Observations(filters ...func(Observation) bool) iter.Seq2[int, Observation] {
	return func(yield func(int, Observation) bool) {
		for i, o := range s.records {
			accept := true
			for _, filter := range filters {
				if !filter(o) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, o) {
				return
			}
		}
	}
}

// ByItem returns a predicate that keeps observations of the given item.
func ByItem(name string) func(Observation) bool {
	return func(o Observation) bool { return o.Item == name }
}

// ByLocation returns a predicate that keeps observations from the given location.
func ByLocation(name string) func(Observation) bool {
	return func(o Observation) bool { return o.Location == name }
}

// ByDateRange returns a predicate that keeps observations whose market date
// falls within r, boundaries included.
func ByDateRange(r Range) func(Observation) bool {
	return func(o Observation) bool { return r.Contains(o.Date) }
}

// ByMinPrice returns a predicate that keeps observations priced at least min.
func ByMinPrice(min Price) func(Observation) bool {
	return func(o Observation) bool { return o.Price.GreaterThanOrEqual(min) }
}

// ByMaxPrice returns a predicate that keeps observations priced at most max.
func ByMaxPrice(max Price) func(Observation) bool {
	return func(o Observation) bool { return o.Price.LessThanOrEqual(max) }
}

// Filter is the explicit query surface: every field is optional, set fields
// combine as a conjunction. The zero Filter selects everything.
type Filter struct {
	Item     string
	Location string
	Dates    *Range
	MinPrice *Price
	MaxPrice *Price
}

// Predicates expands the set fields into their predicate functions.
func (f Filter) Predicates() []func(Observation) bool {
	var preds []func(Observation) bool
	if f.Item != "" {
		preds = append(preds, ByItem(f.Item))
	}
	if f.Location != "" {
		preds = append(preds, ByLocation(f.Location))
	}
	if f.Dates != nil {
		preds = append(preds, ByDateRange(*f.Dates))
	}
	if f.MinPrice != nil {
		preds = append(preds, ByMinPrice(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		preds = append(preds, ByMaxPrice(*f.MaxPrice))
	}
	return preds
}

// Apply returns a new set holding the matching observations in recorded
// order. The input set is never modified.
func (f Filter) Apply(s *ObservationSet) *ObservationSet {
	out := NewObservationSet()
	for _, o := range s.Observations(f.Predicates()...) {
		out.Append(o)
	}
	return out
}

// Sorted returns a copy of the set in audit order: recording timestamp
// ascending, stable for equal instants. Rewriting a store from a sorted set
// restores row order == audit order after merging records from elsewhere.
func (s *ObservationSet) Sorted() *ObservationSet {
	out := &ObservationSet{records: slices.Clone(s.records)}
	sort.SliceStable(out.records, func(i, j int) bool {
		return out.records[i].RecordedAt.Before(out.records[j].RecordedAt)
	})
	return out
}

// Items returns the sorted unique item names present in the set.
func (s *ObservationSet) Items() []string {
	visited := make(map[string]struct{})
	for _, o := range s.records {
		visited[o.Item] = struct{}{}
	}
	items := slices.Collect(maps.Keys(visited))
	slices.Sort(items)
	return items
}

// Locations returns the sorted unique location names present in the set.
func (s *ObservationSet) Locations() []string {
	visited := make(map[string]struct{})
	for _, o := range s.records {
		visited[o.Location] = struct{}{}
	}
	locations := slices.Collect(maps.Keys(visited))
	slices.Sort(locations)
	return locations
}

// Dates returns the range spanned by the observed market dates, and false
// when the set is empty.
func (s *ObservationSet) Dates() (Range, bool) {
	if len(s.records) == 0 {
		return Range{}, false
	}
	min, max := s.records[0].Date, s.records[0].Date
	for _, o := range s.records[1:] {
		if o.Date.Before(min) {
			min = o.Date
		}
		if o.Date.After(max) {
			max = o.Date
		}
	}
	return Range{From: min, To: max}, true
}

// LastRecordedAt returns the latest recording timestamp in the set, and
// false when the set is empty. New validators seed their clock floor from it
// so that timestamps keep increasing across restarts.
func (s *ObservationSet) LastRecordedAt() (time.Time, bool) {
	var last time.Time
	for _, o := range s.records {
		if o.RecordedAt.After(last) {
			last = o.RecordedAt
		}
	}
	return last, !last.IsZero()
}

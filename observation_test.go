package pricetracker

import (
	"reflect"
	"testing"
	"time"
)

func sample() *ObservationSet {
	return setOf(
		ob(0, "Rice (1kg)", 35, "Banjul", "2024-06-01"),
		ob(1, "Rice (1kg)", 38, "Serekunda", "2024-06-02"),
		ob(2, "Bread", 10, "Banjul", "2024-06-03"),
		ob(3, "Rice (1kg)", 36, "Banjul", "2024-06-05"),
		ob(4, "Fish (Bonga)", 25, "Tanji", "2024-06-05"),
	)
}

func collect(s *ObservationSet, filters ...func(Observation) bool) []Observation {
	var out []Observation
	for _, o := range s.Observations(filters...) {
		out = append(out, o)
	}
	return out
}

func TestObservationSet_Observations(t *testing.T) {
	s := sample()

	testCases := []struct {
		name    string
		filters []func(Observation) bool
		want    int
	}{
		{"no filter returns everything", nil, 5},
		{"by item", []func(Observation) bool{ByItem("Rice (1kg)")}, 3},
		{"by location", []func(Observation) bool{ByLocation("Banjul")}, 3},
		{"filters are a conjunction", []func(Observation) bool{ByItem("Rice (1kg)"), ByLocation("Banjul")}, 2},
		{"by date range", []func(Observation) bool{ByDateRange(NewRange(NewDate(2024, 6, 2), NewDate(2024, 6, 5)))}, 3},
		{"by min price", []func(Observation) bool{ByMinPrice(P(35.0))}, 3},
		{"by max price", []func(Observation) bool{ByMaxPrice(P(25.0))}, 2},
		{"contradictory filters match nothing", []func(Observation) bool{ByItem("Bread"), ByLocation("Tanji")}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := collect(s, tc.filters...); len(got) != tc.want {
				t.Errorf("got %d observations, want %d", len(got), tc.want)
			}
		})
	}
}

func TestObservationSet_PreservesOrder(t *testing.T) {
	s := sample()
	prev := -1
	for i := range s.Observations() {
		if i <= prev {
			t.Fatalf("index %d after %d, iteration is not in append order", i, prev)
		}
		prev = i
	}
}

func TestObservationSet_Items(t *testing.T) {
	got := sample().Items()
	want := []string{"Bread", "Fish (Bonga)", "Rice (1kg)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
}

func TestObservationSet_Locations(t *testing.T) {
	got := sample().Locations()
	want := []string{"Banjul", "Serekunda", "Tanji"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Locations() = %v, want %v", got, want)
	}
}

func TestObservationSet_Dates(t *testing.T) {
	r, ok := sample().Dates()
	if !ok {
		t.Fatal("Dates() reported no data on a non-empty set")
	}
	want := NewRange(NewDate(2024, 6, 1), NewDate(2024, 6, 5))
	if r != want {
		t.Errorf("Dates() = %v, want %v", r, want)
	}

	if _, ok := NewObservationSet().Dates(); ok {
		t.Error("Dates() reported data on an empty set")
	}
}

func TestObservationSet_LastRecordedAt(t *testing.T) {
	s := sample()
	last, ok := s.LastRecordedAt()
	if !ok {
		t.Fatal("LastRecordedAt() reported no data on a non-empty set")
	}
	if want := testEpoch.Add(4 * time.Second); !last.Equal(want) {
		t.Errorf("LastRecordedAt() = %v, want %v", last, want)
	}

	if _, ok := NewObservationSet().LastRecordedAt(); ok {
		t.Error("LastRecordedAt() reported data on an empty set")
	}
}

func TestFilter_Apply(t *testing.T) {
	from, to := NewDate(2024, 6, 1), NewDate(2024, 6, 3)
	r := NewRange(from, to)
	min := P(30.0)

	testCases := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"zero filter keeps everything", Filter{}, 5},
		{"item only", Filter{Item: "Rice (1kg)"}, 3},
		{"item and dates", Filter{Item: "Rice (1kg)", Dates: &r}, 2},
		{"item, dates and min price", Filter{Item: "Rice (1kg)", Dates: &r, MinPrice: &min}, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Apply(sample()); got.Len() != tc.want {
				t.Errorf("Apply() kept %d observations, want %d", got.Len(), tc.want)
			}
		})
	}
}

func TestObservationSet_Sorted(t *testing.T) {
	s := setOf(
		ob(2, "Bread", 12, "Banjul", "2024-06-03"),
		ob(0, "Bread", 10, "Banjul", "2024-06-01"),
		ob(1, "Bread", 11, "Banjul", "2024-06-02"),
	)

	got := s.Sorted()
	for i := 1; i < got.Len(); i++ {
		if got.At(i).RecordedAt.Before(got.At(i - 1).RecordedAt) {
			t.Fatalf("record %d is out of audit order", i)
		}
	}
	if s.At(0).Price.Equal(got.At(0).Price) {
		t.Error("Sorted() left the first record in place, or modified its input")
	}
	if first := s.At(0); !first.Equal(ob(2, "Bread", 12, "Banjul", "2024-06-03")) {
		t.Error("Sorted() modified its input")
	}
}

func TestNormalizeItem(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		// "1kg" is a single word, so its first cased letter is titled.
		{"rice (1kg)", "Rice (1Kg)"},
		{"  fish   (bonga)  ", "Fish (Bonga)"},
		{"BREAD", "Bread"},
		{"palm oil", "Palm Oil"},
		{"", ""},
	}
	for _, tc := range testCases {
		if got := NormalizeItem(tc.in); got != tc.want {
			t.Errorf("NormalizeItem(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

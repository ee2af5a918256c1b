package pricetracker

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(DefaultConfig())

	testCases := []struct {
		name      string
		candidate Candidate
		wantErr   error // nil means the candidate is valid
	}{
		{
			name:      "valid record",
			candidate: Candidate{Item: "Rice (1kg)", Price: "35.50", Location: "Banjul", Date: "2024-06-01"},
		},
		{
			name:      "fields are trimmed",
			candidate: Candidate{Item: "  Bread ", Price: "10", Location: " Serekunda  ", Date: "2024-06-01"},
		},
		{
			name:      "empty date means today",
			candidate: Candidate{Item: "Bread", Price: "10", Location: "Banjul"},
		},
		{
			name:      "empty item",
			candidate: Candidate{Item: "   ", Price: "10", Location: "Banjul"},
			wantErr:   &EmptyFieldError{Field: "item"},
		},
		{
			name:      "empty location",
			candidate: Candidate{Item: "Bread", Price: "10", Location: ""},
			wantErr:   &EmptyFieldError{Field: "location"},
		},
		{
			name:      "item too long",
			candidate: Candidate{Item: strings.Repeat("x", 101), Price: "10", Location: "Banjul"},
			wantErr:   &FieldTooLongError{Field: "item", Len: 101, Max: 100},
		},
		{
			name:      "location too long",
			candidate: Candidate{Item: "Bread", Price: "10", Location: strings.Repeat("x", 51)},
			wantErr:   &FieldTooLongError{Field: "location", Len: 51, Max: 50},
		},
		{
			name:      "price not a number",
			candidate: Candidate{Item: "Bread", Price: "ten", Location: "Banjul"},
			wantErr:   &InvalidPriceError{},
		},
		{
			name:      "price zero",
			candidate: Candidate{Item: "Bread", Price: "0", Location: "Banjul"},
			wantErr:   &InvalidPriceError{},
		},
		{
			name:      "price negative",
			candidate: Candidate{Item: "Bread", Price: "-5", Location: "Banjul"},
			wantErr:   &InvalidPriceError{},
		},
		{
			name:      "price too high",
			candidate: Candidate{Item: "Bread", Price: "10001", Location: "Banjul"},
			wantErr:   &InvalidPriceError{},
		},
		{
			name:      "price below the plausibility floor",
			candidate: Candidate{Item: "Bread", Price: "0.001", Location: "Banjul"},
			wantErr:   &InvalidPriceError{},
		},
		{
			name:      "date unparsable",
			candidate: Candidate{Item: "Bread", Price: "10", Location: "Banjul", Date: "not-a-date"},
			wantErr:   &InvalidDateError{},
		},
		{
			name:      "date too far in the future",
			candidate: Candidate{Item: "Bread", Price: "10", Location: "Banjul", Date: "+2d"},
			wantErr:   &InvalidDateError{},
		},
		{
			name:      "tomorrow is within tolerance",
			candidate: Candidate{Item: "Bread", Price: "10", Location: "Banjul", Date: "+1d"},
		},
		{
			name:      "unknown currency",
			candidate: Candidate{Item: "Bread", Price: "10", Location: "Banjul", Currency: "DALASI"},
			wantErr:   &InvalidCurrencyError{Code: "DALASI"},
		},
		{
			name:      "item checked before price",
			candidate: Candidate{Item: "", Price: "not a number", Location: ""},
			wantErr:   &EmptyFieldError{Field: "item"},
		},
		{
			name:      "location checked before price",
			candidate: Candidate{Item: "Bread", Price: "not a number", Location: " "},
			wantErr:   &EmptyFieldError{Field: "location"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.Validate(tc.candidate)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate(%+v) error = %v, want none", tc.candidate, err)
				}
				if got.Item != strings.TrimSpace(tc.candidate.Item) {
					t.Errorf("Item = %q, want trimmed input %q", got.Item, strings.TrimSpace(tc.candidate.Item))
				}
				if got.Location != strings.TrimSpace(tc.candidate.Location) {
					t.Errorf("Location = %q, want trimmed input %q", got.Location, strings.TrimSpace(tc.candidate.Location))
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate(%+v) = %+v, want error %v", tc.candidate, got, tc.wantErr)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("error %v is not tagged as a validation error", err)
			}
			switch want := tc.wantErr.(type) {
			case *EmptyFieldError:
				var e *EmptyFieldError
				if !errors.As(err, &e) || e.Field != want.Field {
					t.Errorf("error = %v, want EmptyFieldError on %q", err, want.Field)
				}
			case *FieldTooLongError:
				var e *FieldTooLongError
				if !errors.As(err, &e) || *e != *want {
					t.Errorf("error = %v, want %v", err, want)
				}
			case *InvalidPriceError:
				var e *InvalidPriceError
				if !errors.As(err, &e) {
					t.Errorf("error = %v, want InvalidPriceError", err)
				}
			case *InvalidDateError:
				var e *InvalidDateError
				if !errors.As(err, &e) {
					t.Errorf("error = %v, want InvalidDateError", err)
				}
			case *InvalidCurrencyError:
				var e *InvalidCurrencyError
				if !errors.As(err, &e) || e.Code != want.Code {
					t.Errorf("error = %v, want InvalidCurrencyError on %q", err, want.Code)
				}
			}
		})
	}
}

func TestValidator_Defaults(t *testing.T) {
	v := NewValidator(DefaultConfig())
	got, err := v.Validate(Candidate{Item: "Bread", Price: "10", Location: "Banjul"})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got.Currency != "GMD" {
		t.Errorf("Currency = %q, want default GMD", got.Currency)
	}
	if got.Unit != "piece" {
		t.Errorf("Unit = %q, want default piece", got.Unit)
	}
	if !got.Date.IsToday() {
		t.Errorf("Date = %s, want today for an empty date", got.Date)
	}
}

func TestValidator_MonotonicRecordedAt(t *testing.T) {
	// A frozen clock: the wall time never advances, yet every validated
	// observation must still record strictly after the previous one.
	frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	v := NewValidator(DefaultConfig())
	v.now = func() time.Time { return frozen }

	var last time.Time
	for i := 0; i < 5; i++ {
		got, err := v.Validate(Candidate{Item: "Bread", Price: "10", Location: "Banjul"})
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if !got.RecordedAt.After(last) {
			t.Fatalf("RecordedAt %v is not after previous %v", got.RecordedAt, last)
		}
		last = got.RecordedAt
	}
}

func TestValidator_AdvancePast(t *testing.T) {
	floor := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	v := NewValidator(DefaultConfig())
	v.AdvancePast(floor)

	got, err := v.Validate(Candidate{Item: "Bread", Price: "10", Location: "Banjul"})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !got.RecordedAt.After(floor) {
		t.Errorf("RecordedAt %v is not after the floor %v", got.RecordedAt, floor)
	}
}

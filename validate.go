package pricetracker

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Candidate is the raw, untrusted input for one observation, as collected
// from an entry form or command line. All fields are text; Validate parses
// and checks them.
type Candidate struct {
	Item     string
	Price    string
	Location string
	Date     string // empty means today
	Currency string // empty means the configured default
	Unit     string // empty means the configured default
}

// Validator turns candidates into observations.
//
// It is a plain value holding its configuration and clock, so tests and
// tools can run several independent instances. Recording timestamps issued
// by one instance strictly increase, even when the wall clock does not.
type Validator struct {
	cfg  Config
	now  func() time.Time
	last time.Time // floor for the next recording timestamp
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg Config) *Validator {
	return &Validator{cfg: cfg.Normalize(), now: time.Now}
}

// AdvancePast raises the timestamp floor, so that observations validated
// from now on record strictly after t. Call it with the newest timestamp of
// a loaded set to keep the audit order intact across restarts.
func (v *Validator) AdvancePast(t time.Time) {
	if t.After(v.last) {
		v.last = t
	}
}

// Validate checks a candidate and returns the observation it describes.
//
// Checks run in order and stop at the first failure: item, location, price,
// date. Empty currency and unit are not errors, the configured defaults
// apply. On success RecordedAt is set to the current time, strictly after
// any observation this validator returned before. No I/O.
func (v *Validator) Validate(c Candidate) (Observation, error) {
	item := strings.TrimSpace(c.Item)
	if item == "" {
		return Observation{}, &EmptyFieldError{Field: "item"}
	}
	if n := utf8.RuneCountInString(item); n > v.cfg.MaxItemLength {
		return Observation{}, &FieldTooLongError{Field: "item", Len: n, Max: v.cfg.MaxItemLength}
	}

	location := strings.TrimSpace(c.Location)
	if location == "" {
		return Observation{}, &EmptyFieldError{Field: "location"}
	}
	if n := utf8.RuneCountInString(location); n > v.cfg.MaxLocationLength {
		return Observation{}, &FieldTooLongError{Field: "location", Len: n, Max: v.cfg.MaxLocationLength}
	}

	price, err := ParsePrice(strings.TrimSpace(c.Price))
	if err != nil {
		return Observation{}, &InvalidPriceError{Input: c.Price, Reason: "not a number"}
	}
	if !price.IsPositive() {
		return Observation{}, &InvalidPriceError{Input: c.Price, Reason: "must be greater than 0"}
	}
	if price.LessThan(P(v.cfg.MinPrice)) {
		return Observation{}, &InvalidPriceError{Input: c.Price, Reason: "seems too low"}
	}
	if price.GreaterThan(P(v.cfg.MaxPrice)) {
		return Observation{}, &InvalidPriceError{Input: c.Price, Reason: "seems too high"}
	}

	day := Today()
	if s := strings.TrimSpace(c.Date); s != "" {
		day, err = ParseDate(s)
		if err != nil {
			return Observation{}, &InvalidDateError{Input: c.Date, Reason: "not a date"}
		}
	}
	if day.After(Today().Add(v.cfg.MaxFutureDays)) {
		return Observation{}, &InvalidDateError{Input: day.String(), Reason: "in the future"}
	}

	currency := strings.TrimSpace(c.Currency)
	if currency == "" {
		currency = v.cfg.DefaultCurrency
	} else if ValidateCurrency(currency) != nil {
		return Observation{}, &InvalidCurrencyError{Code: currency}
	}
	unit := strings.TrimSpace(c.Unit)
	if unit == "" {
		unit = v.cfg.DefaultUnit
	}

	// Recording timestamps strictly increase, they are the audit order.
	t := v.now()
	if !t.After(v.last) {
		t = v.last.Add(time.Nanosecond)
	}
	v.last = t

	return Observation{
		Item:       item,
		Price:      price,
		Location:   location,
		Date:       day,
		RecordedAt: t,
		Currency:   currency,
		Unit:       unit,
	}, nil
}

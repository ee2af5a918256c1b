package pricetracker

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt32(int32(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Price represents the amount paid for one unit of an item.
//
// It is a decimal value so that prices read from files and entered by hand
// survive round-trips without floating point drift. The currency lives on the
// observation, not on the price: a market survey is single-currency per record
// and mixing currencies in arithmetic is a caller bug.
type Price struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// ParsePrice parses a decimal price from its string form.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{value: d}, nil
}

func (p Price) Equal(q Price) bool              { return p.value.Equal(q.value) }
func (p Price) LessThan(q Price) bool           { return p.value.LessThan(q.value) }
func (p Price) LessThanOrEqual(q Price) bool    { return p.value.LessThanOrEqual(q.value) }
func (p Price) GreaterThan(q Price) bool        { return p.value.GreaterThan(q.value) }
func (p Price) GreaterThanOrEqual(q Price) bool { return p.value.GreaterThanOrEqual(q.value) }
func (p Price) Add(q Price) Price               { return Price{value: p.value.Add(q.value)} }
func (p Price) Sub(q Price) Price               { return Price{value: p.value.Sub(q.value)} }
func (p Price) Div(n int) Price                 { return Price{value: p.value.Div(decimal.NewFromInt(int64(n)))} }
func (p Price) IsZero() bool                    { return p.value.IsZero() }
func (p Price) IsPositive() bool                { return p.value.IsPositive() }
func (p Price) IsNegative() bool                { return p.value.IsNegative() }
func (p Price) IsInteger() bool                 { return p.value.IsInteger() }

// InexactFloat64 returns the nearest float64, for computations that have no
// exact decimal form (standard deviation).
func (p Price) InexactFloat64() float64 { return p.value.InexactFloat64() }

// String returns the plain decimal representation, as persisted.
func (p Price) String() string { return p.value.String() }

// Display formats the price in the given currency for humans, e.g. "D 35.00"
// for GMD.
func (p Price) Display(currency string) string {
	cur := money.New(0, currency).Currency()
	dec := p.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// ChangeFrom returns the relative change from a previous price, in percent.
// The previous price must be positive.
func (p Price) ChangeFrom(prev Price) Percent {
	diff := p.value.Sub(prev.value).Div(prev.value)
	return Percent(diff.InexactFloat64() * 100)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
func (p *Price) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}

// ValidateCurrency reports whether code is an ISO 4217 currency known to the
// formatting tables.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

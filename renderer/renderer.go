// Package renderer turns tracker data into markdown reports.
//
// Every function returns a markdown string; callers decide whether it goes to
// a terminal, usually through glamour, or into a file. Rendering never fails:
// whatever data it is handed, it prints.
package renderer

import (
	"fmt"
	"strings"

	pricetracker "github.com/Musbi8788/gambia-price-tracker"
)

// report accumulates the markdown output of one rendering.
type report struct {
	*strings.Builder
	currency string
}

func newReport(currency string) *report {
	return &report{Builder: &strings.Builder{}, currency: currency}
}

// Printf formats according to a format specifier and writes to the report.
func (r *report) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// money renders a price in the report's currency.
func (r *report) money(p pricetracker.Price) string {
	return p.Display(r.currency)
}

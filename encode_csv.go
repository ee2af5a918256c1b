package pricetracker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Header is the first row of the store file. The column order is part of the
// storage contract: readers tolerate extra trailing columns, but the first
// seven are load-bearing.
var Header = []string{"Item", "Price", "Location", "Date", "Timestamp", "Currency", "Unit"}

// timestampReadFormats lists the accepted timestamp layouts. RFC3339Nano is
// what the tracker writes; the space-separated forms appear in files written
// by earlier spreadsheet tooling.
var timestampReadFormats = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampReadFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// checkHeader verifies that the first seven column names match the storage
// contract, case-insensitively and ignoring surrounding spaces.
func checkHeader(header []string) error {
	if len(header) < len(Header) {
		return &CorruptStoreError{Detail: fmt.Sprintf("header has %d columns, want at least %d", len(header), len(Header))}
	}
	for i, want := range Header {
		got := strings.TrimSpace(header[i])
		if !strings.EqualFold(got, want) {
			return &CorruptStoreError{Detail: fmt.Sprintf("column %d is %q, want %q", i+1, got, want)}
		}
	}
	return nil
}

// decodeRow parses one data row into an observation. The row must carry at
// least the seven contractual columns; trailing extras are ignored.
func decodeRow(rec []string) (Observation, error) {
	if len(rec) < len(Header) {
		return Observation{}, fmt.Errorf("row has %d columns, want at least %d", len(rec), len(Header))
	}
	item := strings.TrimSpace(rec[0])
	if item == "" {
		return Observation{}, errors.New("empty item")
	}
	price, err := ParsePrice(strings.TrimSpace(rec[1]))
	if err != nil {
		return Observation{}, err
	}
	if !price.IsPositive() {
		return Observation{}, fmt.Errorf("non-positive price %q", rec[1])
	}
	location := strings.TrimSpace(rec[2])
	if location == "" {
		return Observation{}, errors.New("empty location")
	}
	on, err := time.Parse(readDateFormat, strings.TrimSpace(rec[3]))
	if err != nil {
		return Observation{}, fmt.Errorf("invalid date %q, want format %q", rec[3], DateFormat)
	}
	recordedAt, err := parseTimestamp(strings.TrimSpace(rec[4]))
	if err != nil {
		return Observation{}, err
	}
	return Observation{
		Item:       item,
		Price:      price,
		Location:   location,
		Date:       NewDate(on.Date()),
		RecordedAt: recordedAt,
		Currency:   strings.TrimSpace(rec[5]),
		Unit:       strings.TrimSpace(rec[6]),
	}, nil
}

// DecodeObservations reads a CSV stream into an observation set, preserving
// row order.
//
// The header is checked strictly: a missing or unrecognized header aborts
// with CorruptStoreError. Individual malformed rows are skipped and counted,
// never silently dropped: the returned int is the number of rows the stream
// contained that the set does not.
func DecodeObservations(r io.Reader) (*ObservationSet, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		// An empty stream holds an empty set; the header appears with
		// the first append.
		return NewObservationSet(), 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("could not read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, 0, err
	}

	set := NewObservationSet()
	skipped := 0
	row := 1 // header was row 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				log.Printf("skipping row %d: %v", row, err)
				skipped++
				continue
			}
			return nil, skipped, fmt.Errorf("error reading from input: %w", err)
		}
		o, err := decodeRow(rec)
		if err != nil {
			log.Printf("skipping row %d: %v", row, err)
			skipped++
			continue
		}
		set.Append(o)
	}
	return set, skipped, nil
}

// EncodeHeader writes the header row alone, for a fresh store file.
func EncodeHeader(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// EncodeObservation writes a single observation as one CSV row.
func EncodeObservation(w io.Writer, o Observation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(encodeRow(o)); err != nil {
		return fmt.Errorf("failed to write observation: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// EncodeObservations writes the header and every observation in recorded
// order, producing the exact storage format.
func EncodeObservations(w io.Writer, set *ObservationSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, o := range set.All() {
		if err := cw.Write(encodeRow(o)); err != nil {
			return fmt.Errorf("failed to write observation: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeRow(o Observation) []string {
	return []string{
		o.Item,
		o.Price.String(),
		o.Location,
		o.Date.String(),
		o.RecordedAt.Format(TimestampFormat),
		o.Currency,
		o.Unit,
	}
}

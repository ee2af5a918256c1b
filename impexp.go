package pricetracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/tealeg/xlsx/v2"
)

// this file contains the import/export formats. Exports return content and
// perform no I/O; callers decide where the bytes go.

// ExportFormat selects the serialization of an observation set.
type ExportFormat int

const (
	// FormatCSV is the storage format itself: header plus one row per
	// observation. It round-trips through ImportCSV field for field.
	FormatCSV ExportFormat = iota
	// FormatJSON is an array of records with named fields; prices are
	// numbers, dates ISO strings. It round-trips through ImportJSON.
	FormatJSON
	// FormatXLSX is a workbook with a single "Prices" sheet.
	FormatXLSX
)

func (f ExportFormat) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// Ext returns the file extension for the format, dot included.
func (f ExportFormat) Ext() string { return "." + f.String() }

// ParseExportFormat parses a format name. An unknown name is an error, never
// a silent fallback: asking for a format that does not exist is a caller bug.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch s {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return 0, fmt.Errorf("unsupported export format %q", s)
	}
}

// jrecord is the JSON shape of one observation. Field names and order follow
// the storage schema.
type jrecord struct {
	Item      string    `json:"item"`
	Price     Price     `json:"price"`
	Location  string    `json:"location"`
	Date      Date      `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Currency  string    `json:"currency"`
	Unit      string    `json:"unit"`
}

// Export serializes the set in the given format and returns the content.
func Export(set *ObservationSet, format ExportFormat) ([]byte, error) {
	switch format {
	case FormatCSV:
		var buf bytes.Buffer
		if err := EncodeObservations(&buf, set); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return exportJSON(set)
	case FormatXLSX:
		return exportXLSX(set)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func exportJSON(set *ObservationSet) ([]byte, error) {
	records := make([]jrecord, 0, set.Len())
	for _, o := range set.All() {
		records = append(records, jrecord{
			Item:      o.Item,
			Price:     o.Price,
			Location:  o.Location,
			Date:      o.Date,
			Timestamp: o.RecordedAt,
			Currency:  o.Currency,
			Unit:      o.Unit,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal observations: %w", err)
	}
	return data, nil
}

func exportXLSX(set *ObservationSet) ([]byte, error) {
	wb := xlsx.NewFile()
	sheet, err := wb.AddSheet("Prices")
	if err != nil {
		return nil, fmt.Errorf("cannot create sheet: %w", err)
	}
	header := sheet.AddRow()
	for _, name := range Header {
		header.AddCell().SetString(name)
	}
	for _, o := range set.All() {
		row := sheet.AddRow()
		row.AddCell().SetString(o.Item)
		row.AddCell().SetFloat(o.Price.InexactFloat64())
		row.AddCell().SetString(o.Location)
		row.AddCell().SetString(o.Date.String())
		row.AddCell().SetString(o.RecordedAt.Format(TimestampFormat))
		row.AddCell().SetString(o.Currency)
		row.AddCell().SetString(o.Unit)
	}
	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, fmt.Errorf("cannot write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportCSV parses content in the storage format, with the same tolerance as
// a store load: bad rows are skipped and counted, a bad header aborts.
func ImportCSV(r io.Reader) (*ObservationSet, int, error) {
	return DecodeObservations(r)
}

// ImportJSON reads observations from a JSON export.
//
// With an empty path the document must be the record array itself. A
// non-empty path is a JSONPath expression locating the array inside a larger
// document (e.g. "$.records"), so dumps from other tools can be ingested
// without editing. Unlike CSV loading, a malformed record aborts the import:
// an export is machine-written, holes in it are not historical damage but a
// broken producer.
func ImportJSON(r io.Reader, path string) (*ObservationSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import data: %w", err)
	}
	if path != "" {
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("cannot parse import data: %w", err)
		}
		sub, err := jsonpath.Get(path, doc)
		if err != nil {
			return nil, fmt.Errorf("cannot evaluate path %q: %w", path, err)
		}
		if data, err = json.Marshal(sub); err != nil {
			return nil, fmt.Errorf("cannot rebuild records at %q: %w", path, err)
		}
	}
	var records []jrecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("cannot parse records: %w", err)
	}

	set := NewObservationSet()
	for i, rec := range records {
		switch {
		case rec.Item == "":
			return nil, fmt.Errorf("record %d: item is required", i)
		case rec.Location == "":
			return nil, fmt.Errorf("record %d: location is required", i)
		case !rec.Price.IsPositive():
			return nil, fmt.Errorf("record %d: price must be greater than 0", i)
		case rec.Date.IsZero():
			return nil, fmt.Errorf("record %d: date is required", i)
		}
		set.Append(Observation{
			Item:       rec.Item,
			Price:      rec.Price,
			Location:   rec.Location,
			Date:       rec.Date,
			RecordedAt: rec.Timestamp,
			Currency:   rec.Currency,
			Unit:       rec.Unit,
		})
	}
	return set, nil
}

package pricetracker

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := setOf(
		ob(0, "Rice (1kg)", 35.5, "Banjul", "2024-06-01"),
		ob(1, "Fish, smoked", 120, "Tanji", "2024-06-02"), // comma forces quoting
		ob(2, "Bread", 10, "Serekunda", "2024-06-03"),
	)

	var buf bytes.Buffer
	if err := EncodeObservations(&buf, in); err != nil {
		t.Fatalf("EncodeObservations() error = %v", err)
	}

	out, skipped, err := DecodeObservations(&buf)
	if err != nil {
		t.Fatalf("DecodeObservations() error = %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if out.Len() != in.Len() {
		t.Fatalf("decoded %d observations, want %d", out.Len(), in.Len())
	}
	for i, want := range in.All() {
		if got := out.At(i); !got.Equal(want) {
			t.Errorf("observation %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestDecodeObservations_EmptyStream(t *testing.T) {
	set, skipped, err := DecodeObservations(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeObservations() error = %v", err)
	}
	if set.Len() != 0 || skipped != 0 {
		t.Errorf("got %d observations and %d skipped, want an empty set", set.Len(), skipped)
	}
}

func TestDecodeObservations_HeaderCheck(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		corrupt bool
	}{
		{
			name:  "canonical header",
			input: "Item,Price,Location,Date,Timestamp,Currency,Unit\n",
		},
		{
			name:  "case and spacing are forgiven",
			input: "item, PRICE ,location,date,timestamp,currency,unit\n",
		},
		{
			name:  "extra trailing columns are tolerated",
			input: "Item,Price,Location,Date,Timestamp,Currency,Unit,Notes\n",
		},
		{
			name:    "legacy four column file",
			input:   "Item,Price,Location,Date\n",
			corrupt: true,
		},
		{
			name:    "wrong column name",
			input:   "Item,Cost,Location,Date,Timestamp,Currency,Unit\n",
			corrupt: true,
		},
		{
			name:    "columns out of order",
			input:   "Price,Item,Location,Date,Timestamp,Currency,Unit\n",
			corrupt: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeObservations(strings.NewReader(tc.input))
			var corrupt *CorruptStoreError
			if got := errors.As(err, &corrupt); got != tc.corrupt {
				t.Errorf("DecodeObservations() error = %v, corrupt = %v, want %v", err, got, tc.corrupt)
			}
		})
	}
}

func TestDecodeObservations_SkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"Item,Price,Location,Date,Timestamp,Currency,Unit",
		"Rice (1kg),35.5,Banjul,2024-06-01,2024-06-01T08:00:00Z,GMD,kg",
		",10,Banjul,2024-06-01,2024-06-01T08:00:01Z,GMD,piece",       // empty item
		"Bread,free,Banjul,2024-06-01,2024-06-01T08:00:02Z,GMD,piece", // bad price
		"Bread,0,Banjul,2024-06-01,2024-06-01T08:00:03Z,GMD,piece",   // non-positive price
		"Bread,10,,2024-06-01,2024-06-01T08:00:04Z,GMD,piece",        // empty location
		"Bread,10,Banjul,junk,2024-06-01T08:00:05Z,GMD,piece",        // bad date
		"Bread,10,Banjul,2024-06-01,junk,GMD,piece",                  // bad timestamp
		"Bread,10,Banjul",                                            // short row
		`Bread,10,Ban"jul,2024-06-01,2024-06-01T08:00:06Z,GMD,piece`, // bare quote
		"Bread,12,Serekunda,2024-06-02,2024-06-02T08:00:00Z,GMD,piece",
	}, "\n")

	set, skipped, err := DecodeObservations(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeObservations() error = %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("decoded %d observations, want 2", set.Len())
	}
	if skipped != 8 {
		t.Errorf("skipped = %d, want 8", skipped)
	}
	if got := set.At(0).Item; got != "Rice (1kg)" {
		t.Errorf("first observation is %q, want the valid first row", got)
	}
	if got := set.At(1).Location; got != "Serekunda" {
		t.Errorf("second observation location is %q, want Serekunda", got)
	}
}

func TestDecodeObservations_LegacyTimestamps(t *testing.T) {
	input := strings.Join([]string{
		"Item,Price,Location,Date,Timestamp,Currency,Unit",
		"Bread,10,Banjul,2024-06-01,2024-06-01 08:30:00,GMD,piece",
		"Bread,11,Banjul,2024-06-02,2024-06-02 08:30:00.123456,GMD,piece",
	}, "\n")

	set, skipped, err := DecodeObservations(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeObservations() error = %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0: spreadsheet era timestamps must load", skipped)
	}
	if set.Len() != 2 {
		t.Fatalf("decoded %d observations, want 2", set.Len())
	}
	if got := set.At(0).RecordedAt; got.Hour() != 8 || got.Minute() != 30 {
		t.Errorf("RecordedAt = %v, want 08:30", got)
	}
}

func TestDecodeObservations_ExtraColumns(t *testing.T) {
	input := strings.Join([]string{
		"Item,Price,Location,Date,Timestamp,Currency,Unit,Notes",
		"Bread,10,Banjul,2024-06-01,2024-06-01T08:00:00Z,GMD,piece,from the corner shop",
	}, "\n")

	set, skipped, err := DecodeObservations(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeObservations() error = %v", err)
	}
	if set.Len() != 1 || skipped != 0 {
		t.Fatalf("decoded %d observations with %d skipped, want 1 and 0", set.Len(), skipped)
	}
	if got := set.At(0).Unit; got != "piece" {
		t.Errorf("Unit = %q, want the seventh column", got)
	}
}

func TestEncodeObservation_AppendShape(t *testing.T) {
	// The append path writes a header once, then one row at a time. The
	// result must decode exactly like a bulk encode.
	var buf bytes.Buffer
	if err := EncodeHeader(&buf); err != nil {
		t.Fatalf("EncodeHeader() error = %v", err)
	}
	first := ob(0, "Bread", 10, "Banjul", "2024-06-01")
	second := ob(1, "Bread", 12, "Banjul", "2024-06-02")
	for _, o := range []Observation{first, second} {
		if err := EncodeObservation(&buf, o); err != nil {
			t.Fatalf("EncodeObservation() error = %v", err)
		}
	}

	set, skipped, err := DecodeObservations(&buf)
	if err != nil {
		t.Fatalf("DecodeObservations() error = %v", err)
	}
	if set.Len() != 2 || skipped != 0 {
		t.Fatalf("decoded %d observations with %d skipped, want 2 and 0", set.Len(), skipped)
	}
	if !set.At(0).Equal(first) || !set.At(1).Equal(second) {
		t.Error("decoded observations differ from the appended ones")
	}
}

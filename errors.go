package pricetracker

import (
	"errors"
	"fmt"
)

// ErrValidation tags every record validation failure. Callers that only need
// the category test errors.Is(err, ErrValidation); the subtypes below carry
// the field-level detail for errors.As.
var ErrValidation = errors.New("invalid record")

// EmptyFieldError reports a required field that was blank after trimming.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string { return fmt.Sprintf("%s is required", e.Field) }
func (e *EmptyFieldError) Unwrap() error { return ErrValidation }

// FieldTooLongError reports a field exceeding its length limit.
type FieldTooLongError struct {
	Field string
	Len   int
	Max   int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s is %d characters long, maximum is %d", e.Field, e.Len, e.Max)
}
func (e *FieldTooLongError) Unwrap() error { return ErrValidation }

// InvalidPriceError reports a price that does not parse or falls outside the
// accepted bounds.
type InvalidPriceError struct {
	Input  string
	Reason string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %q: %s", e.Input, e.Reason)
}
func (e *InvalidPriceError) Unwrap() error { return ErrValidation }

// InvalidDateError reports an observation date that does not parse or lies
// too far in the future.
type InvalidDateError struct {
	Input  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Input, e.Reason)
}
func (e *InvalidDateError) Unwrap() error { return ErrValidation }

// InvalidCurrencyError reports a currency code unknown to the formatting
// tables.
type InvalidCurrencyError struct {
	Code string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency code %q", e.Code)
}
func (e *InvalidCurrencyError) Unwrap() error { return ErrValidation }

// StoreIOError reports a filesystem failure while reading or writing the
// store. The underlying OS error is preserved for errors.Is checks like
// fs.ErrNotExist.
type StoreIOError struct {
	Op   string // "open", "append", "save", "backup"
	Path string
	Err  error
}

func (e *StoreIOError) Error() string { return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err) }
func (e *StoreIOError) Unwrap() error { return e.Err }

// CorruptStoreError reports a store file whose header or structure does not
// match the expected schema. Unlike a skippable bad row, this aborts loading.
type CorruptStoreError struct {
	Path   string
	Detail string
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt store %s: %s", e.Path, e.Detail)
}

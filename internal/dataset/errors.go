package dataset

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is returned when a column the pipeline depends on is absent
// from the normalized source.
var ErrMissingColumn = errors.New("missing column")

type missingColumnError struct{ name string }

func missing(name string) error { return &missingColumnError{name: name} }

func (e *missingColumnError) Error() string { return fmt.Sprintf("%v %q", ErrMissingColumn, e.name) }
func (e *missingColumnError) Unwrap() error { return ErrMissingColumn }

// DataSourceError means the source could not be read or is not tabular data.
type DataSourceError struct {
	Source string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// UnknownCountryCodeError is fatal: a row carries a code missing from the
// country table.
type UnknownCountryCodeError struct {
	Row  int
	Code string
}

func (e *UnknownCountryCodeError) Error() string {
	return fmt.Sprintf("row %d: unknown country code %q", e.Row, e.Code)
}

// UnknownColorCodeError is fatal: a row carries a rating color missing from the
// color table.
type UnknownColorCodeError struct {
	Row  int
	Code string
}

func (e *UnknownColorCodeError) Error() string {
	return fmt.Sprintf("row %d: unknown rating color %q", e.Row, e.Code)
}

// FieldError reports a value that could not be decoded into its typed field.
type FieldError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("row %d: column %s: cannot decode %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

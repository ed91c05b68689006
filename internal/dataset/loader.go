package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Source is where the raw restaurant table comes from.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// FileSource reads the table from a local path.
type FileSource string

func (p FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(string(p))
}

func (p FileSource) String() string { return string(p) }

// naMarkers are the cell spellings treated as missing values.
var naMarkers = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

func cell(raw string) Value {
	if naMarkers[raw] {
		return Null()
	}
	return Text(raw)
}

// Load reads src as CSV. Columns come back exactly as the header spells them.
func Load(ctx context.Context, src Source) (*Table, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, &DataSourceError{Source: src.String(), Err: err}
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, &DataSourceError{Source: src.String(), Err: err}
	}

	t, err := parseCSV(b)
	if err != nil {
		return nil, &DataSourceError{Source: src.String(), Err: err}
	}
	return t, nil
}

func parseCSV(b []byte) (*Table, error) {
	b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("no columns to parse")
	}
	if err != nil {
		return nil, err
	}

	t := &Table{Columns: header}
	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(header) {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(rec))
		}

		row := make([]Value, len(header))
		for i := range header {
			if i < len(rec) {
				row[i] = cell(rec[i])
			} else {
				row[i] = Null()
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

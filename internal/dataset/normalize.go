package dataset

import (
	"regexp"
	"strings"

	"gorm.io/gorm/schema"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	camelBoundary   = regexp.MustCompile(`([a-z\d])([A-Z])`)
	wordStart       = regexp.MustCompile(`\b('?\w)`)

	// column names share gorm's convention so table columns and the sqlite
	// model fields agree
	naming = schema.NamingStrategy{}
)

// NormalizeColumn turns a raw label into its canonical snake_case form:
// title-case every word, drop the spaces, then split the camel case back out
// with underscores.
func NormalizeColumn(label string) string {
	titled := titleize(label)
	compact := strings.ReplaceAll(titled, " ", "")
	if compact == "" {
		return ""
	}
	return naming.ColumnName("", compact)
}

// NormalizeColumns rewrites every column label, keeping column order and rows.
func NormalizeColumns(t *Table) *Table {
	out := &Table{
		Columns: make([]string, len(t.Columns)),
		Rows:    t.Rows,
	}
	for i, c := range t.Columns {
		out.Columns[i] = NormalizeColumn(c)
	}
	return out
}

func titleize(s string) string {
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", " ")

	return wordStart.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w)
	})
}

package dataset

import "strings"

// Value is one cell of a raw table.
type Value struct {
	Text string
	Null bool
}

// Text builds a non-null cell.
func Text(s string) Value { return Value{Text: s} }

// Null builds a missing cell.
func Null() Value { return Value{Null: true} }

// Table is the untyped, column-ordered form the pipeline stages pass along.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of a column, or -1.
func (t *Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// column returns every value of one column in row order.
func (t *Table) column(name string) ([]Value, bool) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, true
}

// clone copies the column list and every row, so a stage can return a new
// table without touching its input.
func (t *Table) clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]Value, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]Value(nil), row...)
	}
	return out
}

// rowKey renders a row so that two rows share a key only when every cell is
// identical.
func rowKey(row []Value) string {
	var b strings.Builder
	for _, v := range row {
		if v.Null {
			b.WriteString("\x00N")
		} else {
			b.WriteString("\x00S")
			b.WriteString(v.Text)
		}
		b.WriteByte('\x1f')
	}
	return b.String()
}

package dataset

// Clean keeps only rows without a missing value and collapses exact duplicate
// rows to their first occurrence. Surviving rows keep their relative order.
// Rows are compared on their raw cell text, so "4.5" and "4.50" differ.
func Clean(t *Table) *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	seen := make(map[string]bool, len(t.Rows))

	for _, row := range t.Rows {
		if hasNull(row) {
			continue
		}
		key := rowKey(row)
		if seen[key] {
			continue
		}
		seen[key] = true
		out.Rows = append(out.Rows, row)
	}
	return out
}

func hasNull(row []Value) bool {
	for _, v := range row {
		if v.Null {
			return true
		}
	}
	return false
}

package domain

// Record is one data row of a CSV file keyed by header column.
// It is the reader's output before entity parsing and is discarded after.
type Record struct {
	// Row is the 1-based line number of the row in its source file.
	Row int

	values map[string]string
}

// NewRecord builds a record from a header and a row of values.
// Missing trailing values are empty; extra values are ignored.
// Later duplicate header names win.
func NewRecord(row int, header, values []string) Record {
	r := Record{
		Row:    row,
		values: make(map[string]string, len(header)),
	}
	for i, name := range header {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		r.values[name] = v
	}
	return r
}

// Get returns the value of a column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r.values[column]
}

// Has reports whether the header declared the column.
func (r Record) Has(column string) bool {
	_, ok := r.values[column]
	return ok
}

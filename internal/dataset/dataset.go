package dataset

import (
	"fmt"
)

// Dataset is an ordered, in-memory table of rows over a fixed field list.
// It is safe for concurrent reads; callers must not mutate rows returned by
// Row while a validation run is in progress.
type Dataset struct {
	fields []string
	index  map[string]int
	rows   [][]Value
}

// New creates an empty dataset with the given field names.
func New(fields []string) (*Dataset, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("dataset requires at least one field")
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("field %d has an empty name", i)
		}
		if _, dup := index[f]; dup {
			return nil, fmt.Errorf("duplicate field name %q", f)
		}
		index[f] = i
	}
	return &Dataset{
		fields: append([]string(nil), fields...),
		index:  index,
	}, nil
}

// Fields returns a copy of the field names in column order.
func (d *Dataset) Fields() []string {
	return append([]string(nil), d.fields...)
}

// HasField reports whether the dataset schema contains the named field.
func (d *Dataset) HasField(name string) bool {
	_, ok := d.index[name]
	return ok
}

// FieldIndex returns the column index of the named field.
func (d *Dataset) FieldIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Append adds a row. The row length must match the schema.
func (d *Dataset) Append(row []Value) error {
	if len(row) != len(d.fields) {
		return fmt.Errorf("row has %d values, schema has %d fields", len(row), len(d.fields))
	}
	d.rows = append(d.rows, row)
	return nil
}

// At returns the value at the given row for the named field. The second
// return is false when the field is not part of the schema.
func (d *Dataset) At(row int, field string) (Value, bool) {
	i, ok := d.index[field]
	if !ok {
		return Value{}, false
	}
	return d.rows[row][i], true
}

// Row returns the i-th row. The returned slice is owned by the dataset and
// must be treated as read-only.
func (d *Dataset) Row(i int) []Value {
	return d.rows[i]
}

// Column returns all values of the named field in row order.
func (d *Dataset) Column(field string) ([]Value, bool) {
	i, ok := d.index[field]
	if !ok {
		return nil, false
	}
	col := make([]Value, len(d.rows))
	for r, row := range d.rows {
		col[r] = row[i]
	}
	return col, true
}

// NumericColumn returns the non-missing numeric values of the named field
// in row order. String and time cells are skipped.
func (d *Dataset) NumericColumn(field string) ([]float64, bool) {
	i, ok := d.index[field]
	if !ok {
		return nil, false
	}
	out := make([]float64, 0, len(d.rows))
	for _, row := range d.rows {
		if f, ok := row[i].AsFloat(); ok {
			out = append(out, f)
		}
	}
	return out, true
}

// Clone returns a deep copy of the dataset. Cleaning operations work on
// clones so the source dataset stays untouched.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		fields: append([]string(nil), d.fields...),
		index:  make(map[string]int, len(d.index)),
		rows:   make([][]Value, len(d.rows)),
	}
	for k, v := range d.index {
		out.index[k] = v
	}
	for i, row := range d.rows {
		out.rows[i] = append([]Value(nil), row...)
	}
	return out
}

// Set overwrites the value at the given row and field. It is used by the
// cleaning package on cloned datasets only.
func (d *Dataset) Set(row int, field string, v Value) error {
	i, ok := d.index[field]
	if !ok {
		return fmt.Errorf("field %q is not in the dataset", field)
	}
	d.rows[row][i] = v
	return nil
}

// Filter returns a new dataset containing the rows for which keep returns
// true, preserving row order.
func (d *Dataset) Filter(keep func(row []Value) bool) *Dataset {
	out := &Dataset{
		fields: append([]string(nil), d.fields...),
		index:  make(map[string]int, len(d.index)),
	}
	for k, v := range d.index {
		out.index[k] = v
	}
	for _, row := range d.rows {
		if keep(row) {
			out.rows = append(out.rows, append([]Value(nil), row...))
		}
	}
	return out
}

package dataset

// Record is a single row keyed by column name. Columns absent from the
// source file simply read as the empty string.
type Record map[string]string

// Get returns the value for a column, or "" when the column is missing.
func (r Record) Get(col string) string {
	return r[col]
}

// Set stores a value, overwriting any existing one.
func (r Record) Set(col, value string) {
	r[col] = value
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset is an ordered set of records with a stable column order.
type Dataset struct {
	Columns []string
	Rows    []Record
}

// New creates an empty dataset with the given columns.
func New(columns ...string) *Dataset {
	return &Dataset{Columns: columns}
}

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the column order if not already present.
func (d *Dataset) AddColumn(name string) {
	if !d.HasColumn(name) {
		d.Columns = append(d.Columns, name)
	}
}

// Append adds a row to the dataset.
func (d *Dataset) Append(r Record) {
	d.Rows = append(d.Rows, r)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

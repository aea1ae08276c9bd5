// Package columnmap resolves a header row into positions of the known
// expense fields.
package columnmap

import (
	"strings"

	"github.com/Kjohnson1213/outfitter-finance/internal/apperror"
)

// Field is a semantic column of an expense file.
type Field string

const (
	FieldDate        Field = "date"
	FieldAmount      Field = "amount"
	FieldVendor      Field = "vendor"
	FieldDescription Field = "description"
	FieldCategory    Field = "category"
	FieldExternalID  Field = "external_id"
)

var (
	requiredFields = []Field{FieldDate, FieldAmount}
	optionalFields = []Field{FieldVendor, FieldDescription, FieldCategory, FieldExternalID}
)

// Column is the position of a field in a row. Present is false when the
// header did not name the field at all.
type Column struct {
	Index   int
	Present bool
}

// ColumnIndex maps fields to their columns for one file.
type ColumnIndex struct {
	columns map[Field]Column
}

// Build reads a header row. Header names are matched case-insensitively
// after trimming; when a name repeats, its first position wins. A header
// without date or amount yields a *apperror.MissingColumnsError.
func Build(header []string) (ColumnIndex, error) {
	idx := ColumnIndex{columns: make(map[Field]Column)}

	known := make(map[Field]bool, len(requiredFields)+len(optionalFields))
	for _, f := range requiredFields {
		known[f] = true
	}
	for _, f := range optionalFields {
		known[f] = true
	}

	for i, name := range header {
		f := Field(strings.ToLower(strings.TrimSpace(name)))
		if !known[f] {
			continue
		}
		if _, seen := idx.columns[f]; seen {
			continue
		}
		idx.columns[f] = Column{Index: i, Present: true}
	}

	var missing []string
	for _, f := range requiredFields {
		if !idx.Has(f) {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		var available []string
		for _, f := range optionalFields {
			if idx.Has(f) {
				available = append(available, string(f))
			}
		}
		return ColumnIndex{}, &apperror.MissingColumnsError{
			Required:  fieldNames(requiredFields),
			Missing:   missing,
			Optional:  fieldNames(optionalFields),
			Available: available,
		}
	}

	return idx, nil
}

// Column returns the column of f.
func (c ColumnIndex) Column(f Field) Column {
	return c.columns[f]
}

// Has reports whether the header named f.
func (c ColumnIndex) Has(f Field) bool {
	return c.columns[f].Present
}

// Lookup returns the cell for f in row. The bool is false only when the
// column is absent from the file; a row too short to reach a present column
// yields "".
func (c ColumnIndex) Lookup(row []string, f Field) (string, bool) {
	col := c.columns[f]
	if !col.Present {
		return "", false
	}
	if col.Index >= len(row) {
		return "", true
	}
	return row[col.Index], true
}

func fieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}

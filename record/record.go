// Package record defines the wire format shared by every stage: one
// newline-terminated line of comma separated fields (name, quantity,
// attribute). There is no quoting or escaping, a comma inside a field value
// is indistinguishable from a field separator.
package record

import (
	"fmt"
	"strconv"
	"strings"
)

// MinFields is the number of fields a line must carry to be structurally
// well formed. Fields beyond the third are dropped on parse.
const MinFields = 3

// FieldCountError is returned when a line splits into fewer than MinFields
// fields. Stages decide their own policy for it, the transformer skips the
// line with a diagnostic, the consumer discards it silently.
type FieldCountError struct {
	Line  string
	Count int
}

func (e FieldCountError) Error() string {
	return fmt.Sprintf("malformed record %q, expected at least %d fields, got %d", e.Line, MinFields, e.Count)
}

// QuantityError is returned when the quantity field does not parse as an
// integer. The transformer substitutes 0 for it, the consumer treats it as
// fatal.
type QuantityError struct {
	Field string
	Err   error
}

func (e QuantityError) Error() string {
	return fmt.Sprintf("unparseable quantity %q (%s)", e.Field, e.Err)
}

// Record is a single line of pipeline data.
type Record struct {
	Name      string
	Quantity  int
	Attribute string
}

// Encode returns the wire form of r without a trailing newline.
func (r Record) Encode() string {
	return fmt.Sprintf("%s,%d,%s", r.Name, r.Quantity, r.Attribute)
}

func (r Record) String() string {
	return r.Encode()
}

// Fields splits a wire line into its raw fields.
func Fields(line string) []string {
	return strings.Split(line, ",")
}

// Parse decodes a wire line strictly. It returns FieldCountError when the
// line has fewer than MinFields fields and QuantityError when the quantity
// field is not an integer.
func Parse(line string) (Record, error) {
	fields := Fields(line)
	if len(fields) < MinFields {
		return Record{}, FieldCountError{Line: line, Count: len(fields)}
	}
	qty, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Record{}, QuantityError{Field: fields[1], Err: err}
	}
	return Record{Name: fields[0], Quantity: qty, Attribute: fields[2]}, nil
}

// ParseLenient decodes a wire line with the transformer's policy, a
// structural defect is still an error but an unparseable quantity defaults
// to 0 and never fails.
func ParseLenient(line string) (Record, error) {
	fields := Fields(line)
	if len(fields) < MinFields {
		return Record{}, FieldCountError{Line: line, Count: len(fields)}
	}
	qty, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		qty = 0
	}
	return Record{Name: fields[0], Quantity: qty, Attribute: fields[2]}, nil
}

// AsMap converts r to a generic map for transform functions that operate on
// documents rather than typed records.
func (r Record) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"name":      r.Name,
		"quantity":  int64(r.Quantity),
		"attribute": r.Attribute,
	}
}

// FromMap rebuilds a Record from the generic map form. Missing or mistyped
// keys fall back to the zero value for that field.
func FromMap(m map[string]interface{}) Record {
	r := Record{}
	if v, ok := m["name"].(string); ok {
		r.Name = v
	}
	switch v := m["quantity"].(type) {
	case int64:
		r.Quantity = int(v)
	case int:
		r.Quantity = v
	case float64:
		r.Quantity = int(v)
	}
	if v, ok := m["attribute"].(string); ok {
		r.Attribute = v
	}
	return r
}

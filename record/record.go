// Package record defines the product record and the static field schema
// used to look up record fields by name.
//
// The schema is fixed: every product has a name, a brand, an integer price
// and a floating-point rating. Field descriptors carry accessor functions so
// that filters and aggregates can address a field by its column name without
// reflection.
//
// Example usage:
//
//	field, err := record.Lookup("price")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range products {
//	    fmt.Println(field.Text(p))
//	}
package record

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownField is returned when a field name is not part of the schema
var ErrUnknownField = errors.New("unknown field")

// Product is one row of the product table
type Product struct {
	Name   string  `json:"name" parquet:"name"`
	Brand  string  `json:"brand" parquet:"brand"`
	Price  int64   `json:"price" parquet:"price"`
	Rating float64 `json:"rating" parquet:"rating"`
}

// FieldType is the declared type of a product field
type FieldType int

const (
	TypeString FieldType = iota
	TypeInt
	TypeFloat
)

// String returns the type name used in schema listings
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// FieldDescriptor describes one field of the product schema.
//
// Descriptors are created once at package initialization and never change.
// The zero value is not usable; obtain descriptors from Lookup or Fields.
type FieldDescriptor struct {
	Name     string
	Type     FieldType
	Required bool

	value func(Product) interface{}
}

// Numeric reports whether the field holds an integer or float
func (d FieldDescriptor) Numeric() bool {
	return d.Type == TypeInt || d.Type == TypeFloat
}

// Value returns the typed value of the field: string, int64 or float64
func (d FieldDescriptor) Value(p Product) interface{} {
	return d.value(p)
}

// Number returns the value of a numeric field as float64.
// The second result is false for text fields.
func (d FieldDescriptor) Number(p Product) (float64, bool) {
	switch v := d.value(p).(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// Text returns the textual form of the field value
func (d FieldDescriptor) Text(p Product) string {
	return FormatValue(d.value(p))
}

var schema = []FieldDescriptor{
	{Name: "name", Type: TypeString, Required: true, value: func(p Product) interface{} { return p.Name }},
	{Name: "brand", Type: TypeString, Required: true, value: func(p Product) interface{} { return p.Brand }},
	{Name: "price", Type: TypeInt, Required: true, value: func(p Product) interface{} { return p.Price }},
	{Name: "rating", Type: TypeFloat, Required: true, value: func(p Product) interface{} { return p.Rating }},
}

var byName = func() map[string]FieldDescriptor {
	m := make(map[string]FieldDescriptor, len(schema))
	for _, d := range schema {
		m[d.Name] = d
	}
	return m
}()

// Fields returns the field descriptors in schema order
func Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(schema))
	copy(out, schema)
	return out
}

// Columns returns the field names in schema order
func Columns() []string {
	names := make([]string, len(schema))
	for i, d := range schema {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the descriptor for the named field
func Lookup(name string) (FieldDescriptor, error) {
	d, ok := byName[name]
	if !ok {
		return FieldDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return d, nil
}

// ToRow converts a product to a column-keyed row for the output formatters
func ToRow(p Product) map[string]interface{} {
	row := make(map[string]interface{}, len(schema))
	for _, d := range schema {
		row[d.Name] = d.value(p)
	}
	return row
}

// ToRows converts products to rows, preserving order
func ToRows(products []Product) []map[string]interface{} {
	rows := make([]map[string]interface{}, len(products))
	for i, p := range products {
		rows[i] = ToRow(p)
	}
	return rows
}

// FormatValue returns the textual form of a field value.
//
// Floats always carry a decimal point or an exponent, so 799 renders as
// "799.0" and 4.6 as "4.6".
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return FormatFloat(val)
	case float32:
		return FormatFloat(float64(val))
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// FormatFloat formats f in the shortest form that round-trips
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

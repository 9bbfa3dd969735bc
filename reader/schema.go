package reader

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/prodcat/record"
)

// columnIndex maps each required product field to its position in header.
// Extra columns are ignored. When a column name repeats, the last one wins.
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	index := make(map[string]int)
	var missing []string
	for _, field := range record.Fields() {
		i, ok := positions[field.Name]
		if !ok {
			if field.Required {
				missing = append(missing, field.Name)
			}
			continue
		}
		index[field.Name] = i
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s", ErrSchema, strings.Join(missing, ", "))
	}
	return index, nil
}

// checkParquetSchema verifies that every required product field is a
// top-level leaf column with a physical type it can be converted from.
func checkParquetSchema(schema *parquet.Schema) error {
	columns := make(map[string]parquet.Field)
	for _, field := range schema.Fields() {
		columns[field.Name()] = field
	}

	var missing []string
	for _, desc := range record.Fields() {
		field, ok := columns[desc.Name]
		if !ok {
			if desc.Required {
				missing = append(missing, desc.Name)
			}
			continue
		}
		if !acceptsKind(desc.Type, field) {
			return fmt.Errorf("%w: column %q has type %s, want %s", ErrSchema, desc.Name, getPhysicalType(field), desc.Type)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required columns: %s", ErrSchema, strings.Join(missing, ", "))
	}
	return nil
}

// acceptsKind reports whether a parquet column can hold values of t
func acceptsKind(t record.FieldType, field parquet.Field) bool {
	if field.Type() == nil || field.Repeated() {
		return false
	}

	switch field.Type().Kind() {
	case parquet.ByteArray, parquet.FixedLenByteArray:
		// strings, and numbers stored as text
		return true
	case parquet.Int32, parquet.Int64:
		return t == record.TypeInt || t == record.TypeFloat
	case parquet.Float, parquet.Double:
		return t == record.TypeFloat
	default:
		return false
	}
}

// getPhysicalType returns the physical type name of a Parquet field.
func getPhysicalType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

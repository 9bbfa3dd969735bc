package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/vegasq/prodcat/record"
)

// ErrUnsupportedFormat is returned by NewFormatter for unknown format names
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to convert rows to the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format, emitting
	// columns in the given order
	Format(columns []string, rows []map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the names accepted by NewFormatter
var Formats = []string{"grid", "csv", "json", "jsonl"}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "grid", "":
		return NewGridFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// formatValue converts a value to its display string
func formatValue(v interface{}) string {
	return record.FormatValue(v)
}

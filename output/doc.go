// Package output provides formatters for rendering product rows.
//
// This package defines the Formatter interface and provides implementations
// for a human-readable grid table, CSV and JSON Lines. All formatters work
// with rows represented as []map[string]interface{} plus an explicit column
// order.
//
// # Supported Formats
//
//   - Grid: bordered text table with a separator line between rows (default)
//   - CSV: Comma-separated values with header row
//   - JSON Lines: One JSON object per line (suitable for streaming)
//
// # Basic Usage
//
// Using the grid formatter:
//
//	formatter := output.NewGridFormatter(os.Stdout)
//	if err := formatter.Format(record.Columns(), record.ToRows(products)); err != nil {
//	    log.Fatal(err)
//	}
//
// Selecting a formatter by name:
//
//	formatter, err := output.NewFormatter("csv", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Using as String
//
// Write to a bytes buffer to get string output:
//
//	var buf bytes.Buffer
//	formatter := output.NewGridFormatter(&buf)
//	if err := formatter.Format([]string{"avg"}, rows); err != nil {
//	    log.Fatal(err)
//	}
//	table := buf.String()
//
// # Type Handling
//
// Values are rendered with record.FormatValue: floats always keep a
// decimal point (799.0), integers are printed in base 10 and nil becomes
// an empty cell. The CSV formatter additionally guards text cells against
// spreadsheet formula injection.
package output

package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// GridFormatter renders rows as a bordered text table with a line between
// every row
type GridFormatter struct {
	writer io.Writer
}

// NewGridFormatter creates a new grid table formatter
func NewGridFormatter(w io.Writer) *GridFormatter {
	return &GridFormatter{writer: w}
}

// SetOutput sets the output writer
func (g *GridFormatter) SetOutput(w io.Writer) {
	g.writer = w
}

// Format writes rows as a grid table.
//
// Numeric columns are right-aligned, everything else is left-aligned.
// Empty input renders nothing.
func (g *GridFormatter) Format(columns []string, rows []map[string]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(g.writer)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment(columnAlignment(columns, rows[0]))

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = formatValue(row[col])
		}
		table.Append(cells)
	}

	table.Render()
	return nil
}

// columnAlignment picks an alignment per column from the sample row
func columnAlignment(columns []string, sample map[string]interface{}) []int {
	alignment := make([]int, len(columns))
	for i, col := range columns {
		switch sample[col].(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			alignment[i] = tablewriter.ALIGN_RIGHT
		default:
			alignment[i] = tablewriter.ALIGN_LEFT
		}
	}
	return alignment
}

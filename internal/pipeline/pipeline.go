// Package pipeline runs the load, filter, aggregate and render steps of a
// prodcat invocation in their fixed order.
package pipeline

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/vegasq/prodcat/output"
	"github.com/vegasq/prodcat/query"
	"github.com/vegasq/prodcat/reader"
	"github.com/vegasq/prodcat/record"
)

// NoDataMessage is printed instead of a table when no products remain
const NoDataMessage = "no matching data"

// Options selects the input and the operations of one run.
// Empty Filter or Aggregate skips that step; Limit 0 renders every row.
type Options struct {
	File      string
	Filter    string
	Aggregate string
	Limit     int
}

// Pipeline renders products to out using formatter
type Pipeline struct {
	out       io.Writer
	formatter output.Formatter
	log       *zap.Logger
}

// New creates a pipeline. A nil logger disables logging.
func New(out io.Writer, formatter output.Formatter, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	formatter.SetOutput(out)
	return &Pipeline{out: out, formatter: formatter, log: log}
}

// Run loads opts.File, applies the filter and then the aggregate, and
// renders the result.
//
// When no product survives the filter, NoDataMessage is printed and the
// aggregate is skipped. For avg, a one-column avg table with the mean is
// rendered before the product table.
func (p *Pipeline) Run(opts Options) error {
	products, err := p.load(opts.File)
	if err != nil {
		return err
	}

	if opts.Filter != "" {
		cond, err := query.ParseCondition(opts.Filter)
		if err != nil {
			return err
		}
		products = query.ApplyFilter(products, cond)
		p.log.Debug("applied filter",
			zap.Stringer("condition", cond),
			zap.Int("matched", len(products)))
	}

	if len(products) == 0 {
		_, err := fmt.Fprintln(p.out, NoDataMessage)
		return err
	}

	if opts.Aggregate != "" {
		agg, err := query.Aggregate(products, opts.Aggregate)
		if err != nil {
			return err
		}
		p.log.Debug("applied aggregate", zap.Stringer("aggregate", agg.Request))

		if agg.HasMean {
			if err := p.formatter.Format([]string{"avg"}, []map[string]interface{}{{"avg": agg.Mean}}); err != nil {
				return fmt.Errorf("failed to render average: %w", err)
			}
		}
		products = agg.Records
	}

	if opts.Limit > 0 && len(products) > opts.Limit {
		products = products[:opts.Limit]
	}

	if err := p.formatter.Format(record.Columns(), record.ToRows(products)); err != nil {
		return fmt.Errorf("failed to render products: %w", err)
	}
	return nil
}

// Schema renders the product field descriptors
func (p *Pipeline) Schema() error {
	fields := record.Fields()
	rows := make([]map[string]interface{}, len(fields))
	for i, f := range fields {
		rows[i] = map[string]interface{}{
			"field":    f.Name,
			"type":     f.Type.String(),
			"required": f.Required,
		}
	}
	return p.formatter.Format([]string{"field", "type", "required"}, rows)
}

// load reads every product from path, releasing the file on all paths
func (p *Pipeline) load(path string) ([]record.Product, error) {
	r, err := reader.NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	products, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	p.log.Debug("loaded products",
		zap.String("file", path),
		zap.Stringer("format", r.Format()),
		zap.String("size", humanize.Bytes(uint64(r.Size()))),
		zap.Int("count", len(products)))
	return products, nil
}

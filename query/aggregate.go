package query

import (
	"fmt"
	"math"

	"github.com/vegasq/prodcat/record"
)

// ApplyAggregate reduces products to a single product.
//
// min and max return the product with the smallest or largest field value.
// avg computes the arithmetic mean of the field and returns the product
// whose value is closest to it. Ties go to the product that comes first.
// An empty input fails with ErrEmptyInput.
func ApplyAggregate(products []record.Product, req *AggregateRequest) (*Aggregation, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, req)
	}
	if !req.Field.Numeric() {
		return nil, fmt.Errorf("%w: cannot aggregate %s field %q", ErrTypeMismatch, req.Field.Type, req.Field.Name)
	}

	values := make([]float64, len(products))
	for i, p := range products {
		values[i], _ = req.Field.Number(p)
	}

	result := &Aggregation{Request: req}

	var idx int
	switch req.Func {
	case FuncMin:
		idx = firstBest(values, func(v, best float64) bool { return v < best })
	case FuncMax:
		idx = firstBest(values, func(v, best float64) bool { return v > best })
	case FuncAvg:
		result.Mean = mean(values)
		result.HasMean = true
		idx = closestTo(values, result.Mean)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, string(req.Func))
	}

	result.Records = []record.Product{products[idx]}
	return result, nil
}

// Aggregate parses raw with ParseAggregate and applies it to products
func Aggregate(products []record.Product, raw string) (*Aggregation, error) {
	req, err := ParseAggregate(raw)
	if err != nil {
		return nil, err
	}
	return ApplyAggregate(products, req)
}

// firstBest returns the index of the first value for which no later value
// is strictly better
func firstBest(values []float64, better func(v, best float64) bool) int {
	idx := 0
	for i := 1; i < len(values); i++ {
		if better(values[i], values[idx]) {
			idx = i
		}
	}
	return idx
}

// mean computes the arithmetic mean of a non-empty slice
func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// closestTo returns the index of the first value nearest to target
func closestTo(values []float64, target float64) int {
	idx := 0
	best := math.Abs(values[0] - target)
	for i := 1; i < len(values); i++ {
		if d := math.Abs(values[i] - target); d < best {
			idx, best = i, d
		}
	}
	return idx
}

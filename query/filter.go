package query

import (
	"github.com/vegasq/prodcat/record"
)

// Match reports whether p satisfies the condition.
//
// < and > compare numerically. = compares the textual form of the record
// value with the textual form of the comparand, for numeric fields too.
func (c *Condition) Match(p record.Product) bool {
	switch c.Operator {
	case OpLess, OpGreater:
		if c.Field.Type == record.TypeInt {
			if n, ok := c.Field.Value(p).(int64); ok {
				return compareInt(n, c.Operator, c.Value)
			}
		}
		left, ok := c.Field.Number(p)
		if !ok {
			return false
		}
		right, ok := toFloat64(c.Value)
		if !ok {
			return false
		}
		return compareNumbers(left, c.Operator, right)
	case OpEqual:
		return c.Field.Text(p) == record.FormatValue(c.Value)
	default:
		return false
	}
}

// ApplyFilter returns the products matching cond, in input order.
// The input slice is not modified.
func ApplyFilter(products []record.Product, cond *Condition) []record.Product {
	result := make([]record.Product, 0, len(products))
	for _, p := range products {
		if cond.Match(p) {
			result = append(result, p)
		}
	}
	return result
}

// Filter parses raw with ParseCondition and applies it to products
func Filter(products []record.Product, raw string) ([]record.Product, error) {
	cond, err := ParseCondition(raw)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(products, cond), nil
}

// toFloat64 converts a comparand to float64 if possible
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}

// compareInt compares an integer field value with a comparand without
// going through float64, so values above 2^53 keep their order
func compareInt(left int64, operator Operator, comparand interface{}) bool {
	switch right := comparand.(type) {
	case int64:
		switch operator {
		case OpLess:
			return left < right
		case OpGreater:
			return left > right
		}
		return false
	case float64:
		switch {
		case right >= maxInt64Float:
			return operator == OpLess
		case right < -maxInt64Float:
			return operator == OpGreater
		}
		return compareNumbers(float64(left), operator, right)
	default:
		return false
	}
}

// maxInt64Float is 2^63, the first float64 above every int64
const maxInt64Float = float64(1 << 63)

// compareNumbers compares two numbers
func compareNumbers(left float64, operator Operator, right float64) bool {
	switch operator {
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	case OpEqual:
		return left == right
	default:
		return false
	}
}

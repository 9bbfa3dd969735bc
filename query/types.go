package query

import (
	"fmt"

	"github.com/vegasq/prodcat/record"
)

// Operator is a comparison operator in a filter condition
type Operator int

const (
	OpLess    Operator = iota // <
	OpGreater                 // >
	OpEqual                   // =
)

// operatorPriority is the order in which operator symbols are searched for
// in a condition string. The first symbol present anywhere wins.
var operatorPriority = []Operator{OpLess, OpGreater, OpEqual}

// Symbol returns the operator as written in a condition
func (o Operator) Symbol() string {
	switch o {
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpEqual:
		return "="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// String implements fmt.Stringer
func (o Operator) String() string {
	return o.Symbol()
}

// Condition is a parsed single comparison such as price>1000
type Condition struct {
	Field    record.FieldDescriptor
	Operator Operator
	// Value is the comparand converted to the field's type: int64 or
	// float64 for numeric fields, string for text fields.
	Value interface{}
}

// String renders the condition in its canonical form
func (c *Condition) String() string {
	return c.Field.Name + c.Operator.Symbol() + record.FormatValue(c.Value)
}

// AggregateFunc is a reduction applied to a numeric field
type AggregateFunc string

const (
	FuncMin AggregateFunc = "min"
	FuncMax AggregateFunc = "max"
	FuncAvg AggregateFunc = "avg"
)

// aggregateFuncs lists the supported aggregate functions
var aggregateFuncs = map[AggregateFunc]bool{
	FuncMin: true,
	FuncMax: true,
	FuncAvg: true,
}

// AggregateRequest is a parsed aggregate expression such as price=max
type AggregateRequest struct {
	Field record.FieldDescriptor
	Func  AggregateFunc
}

// String renders the request in its canonical form
func (a *AggregateRequest) String() string {
	return a.Field.Name + "=" + string(a.Func)
}

// Aggregation is the result of applying an aggregate function.
//
// Records always holds exactly one product. For avg, Mean is the
// arithmetic mean of the field and HasMean is true.
type Aggregation struct {
	Request *AggregateRequest
	Records []record.Product
	Mean    float64
	HasMean bool
}

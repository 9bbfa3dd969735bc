package query

import (
	"errors"
	"fmt"
)

// MaxExpressionLength is the maximum accepted length of a filter or
// aggregate expression
const MaxExpressionLength = 4096

var (
	// ErrUnknownOperator is returned when a condition contains none of <, > or =
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrTypeMismatch is returned when an operator or function does not
	// apply to the type of the referenced field
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValueConversion is returned when a comparand cannot be converted
	// to the type of the referenced field
	ErrValueConversion = errors.New("invalid value")

	// ErrUnknownFunction is returned for aggregate functions other than
	// min, max and avg
	ErrUnknownFunction = errors.New("unknown aggregate function")

	// ErrEmptyInput is returned when aggregating an empty set of records
	ErrEmptyInput = errors.New("no records to aggregate")

	// ErrExpressionTooLong is returned when an expression exceeds MaxExpressionLength
	ErrExpressionTooLong = errors.New("expression too long")
)

// ValidateExpression performs size validation on expression input
func ValidateExpression(expr string) error {
	if len(expr) > MaxExpressionLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrExpressionTooLong, len(expr), MaxExpressionLength)
	}
	return nil
}

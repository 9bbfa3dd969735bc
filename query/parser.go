package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vegasq/prodcat/record"
)

// ParseCondition parses a filter condition such as "price>1000" or
// "brand=apple".
//
// Operator symbols are searched for in the fixed order <, >, = and the
// string is split at the first occurrence of the first symbol found, so a
// comparand that itself contains an earlier symbol is split in the wrong
// place ("name=a<b" parses as name=a < b). Field and value are trimmed of
// surrounding whitespace.
//
// For numeric fields the value is parsed as a float when it contains a
// decimal point and as an integer otherwise. Text fields only support =.
func ParseCondition(raw string) (*Condition, error) {
	if err := ValidateExpression(raw); err != nil {
		return nil, err
	}

	op, key, value, found := splitOperator(raw)
	if !found {
		return nil, fmt.Errorf("%w in condition %q", ErrUnknownOperator, raw)
	}

	field, err := record.Lookup(key)
	if err != nil {
		return nil, err
	}

	if !field.Numeric() && op != OpEqual {
		return nil, fmt.Errorf("%w: operator %s applies only to numeric fields, %q is %s",
			ErrTypeMismatch, op, field.Name, field.Type)
	}

	comparand, err := convertValue(field, value)
	if err != nil {
		return nil, err
	}

	return &Condition{Field: field, Operator: op, Value: comparand}, nil
}

// splitOperator finds the first operator symbol by priority and splits
// raw around its first occurrence
func splitOperator(raw string) (Operator, string, string, bool) {
	for _, op := range operatorPriority {
		key, value, found := strings.Cut(raw, op.Symbol())
		if found {
			return op, strings.TrimSpace(key), strings.TrimSpace(value), true
		}
	}
	return 0, "", "", false
}

// convertValue converts a condition comparand to the field's type
func convertValue(field record.FieldDescriptor, value string) (interface{}, error) {
	if !field.Numeric() {
		return value, nil
	}

	if strings.Contains(value, ".") {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot convert %q to %s", ErrValueConversion, value, record.TypeFloat)
		}
		return f, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// Integers outside the int64 range still compare correctly as floats
		if errors.Is(err, strconv.ErrRange) {
			if f, ferr := strconv.ParseFloat(value, 64); ferr == nil {
				return f, nil
			}
		}
		return nil, fmt.Errorf("%w: cannot convert %q to %s", ErrValueConversion, value, record.TypeInt)
	}
	return n, nil
}

// ParseAggregate parses an aggregate expression such as "price=max".
//
// The expression is split at the first =. The field must exist and be
// numeric; the function must be one of min, max or avg.
func ParseAggregate(raw string) (*AggregateRequest, error) {
	if err := ValidateExpression(raw); err != nil {
		return nil, err
	}

	key, name, found := strings.Cut(raw, "=")
	key, name = strings.TrimSpace(key), strings.TrimSpace(name)
	if !found || name == "" {
		return nil, fmt.Errorf("%w: expected field=function, got %q", ErrUnknownFunction, raw)
	}

	field, err := record.Lookup(key)
	if err != nil {
		return nil, err
	}
	if !field.Numeric() {
		return nil, fmt.Errorf("%w: cannot aggregate %s field %q", ErrTypeMismatch, field.Type, field.Name)
	}

	fn := AggregateFunc(name)
	if !aggregateFuncs[fn] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}

	return &AggregateRequest{Field: field, Func: fn}, nil
}

package reader

import (
	"fmt"
	"strconv"
	"strings"
)

// parseInt converts a text cell to an integer, ignoring surrounding spaces
func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

// parseFloat converts a text cell to a float, ignoring surrounding spaces
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float %q", s)
	}
	return f, nil
}

// toText converts a decoded parquet value to a string
func toText(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	case nil:
		return "", fmt.Errorf("null value")
	default:
		return "", fmt.Errorf("expected text, got %T", v)
	}
}

// toInt64 converts a decoded parquet value to an integer
func toInt64(v interface{}) (int64, error) {
	switch val := v.(type) {
	case int64:
		return val, nil
	case int32:
		return int64(val), nil
	case int:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint8:
		return int64(val), nil
	case string:
		return parseInt(val)
	case []byte:
		return parseInt(string(val))
	case nil:
		return 0, fmt.Errorf("null value")
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

// toFloat64 converts a decoded parquet value to a float
func toFloat64(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case int32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case string:
		return parseFloat(val)
	case []byte:
		return parseFloat(string(val))
	case nil:
		return 0, fmt.Errorf("null value")
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

package nutrition

import (
	"errors"
	"math"
)

var (
	// ErrInvalidArgument is returned for malformed numeric or enum input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedConversion is returned by ConvertUnits for unknown unit pairs.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

func positive(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

package nutrition

import (
	"fmt"
	"math"
	"strings"
)

type unitPair struct{ from, to string }

func times1000(v float64) float64 { return v * 1000 }
func per1000(v float64) float64   { return v / 1000 }

var conversions = map[unitPair]func(float64) float64{
	{"g", "kg"}:     per1000,
	{"kg", "g"}:     times1000,
	{"mg", "g"}:     per1000,
	{"g", "mg"}:     times1000,
	{"kcal", "cal"}: times1000,
	{"cal", "kcal"}: per1000,
}

// ConvertUnits converts between mass (mg, g, kg) and energy (cal, kcal) units.
func ConvertUnits(value float64, from, to string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: value must be a finite number", ErrInvalidArgument)
	}
	f := strings.ToLower(strings.TrimSpace(from))
	t := strings.ToLower(strings.TrimSpace(to))
	if f == t {
		return value, nil
	}
	convert, ok := conversions[unitPair{f, t}]
	if !ok {
		return 0, fmt.Errorf("%w: %s -> %s", ErrUnsupportedConversion, from, to)
	}
	return convert(value), nil
}

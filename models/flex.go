package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number or numeric string. Anything else, including
// null and non-numeric strings, decodes to NaN so the calculators reject it.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = FlexFloat(math.NaN())
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil || string(data) == "null" {
		*f = FlexFloat(math.NaN())
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the decoded value; a field that was never set is NaN.
func (f *FlexFloat) Float64() float64 {
	if f == nil {
		return math.NaN()
	}
	return float64(*f)
}

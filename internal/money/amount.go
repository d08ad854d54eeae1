package money

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Amount is a whole-currency value. It encodes as a JSON number and decodes
// from numbers, numeric strings (with separators) and null.
type Amount int64

// Int64 returns the amount as a plain integer.
func (a Amount) Int64() int64 { return int64(a) }

// String renders the amount with locale grouping.
func (a Amount) String() string { return Format(int64(a)) }

// UnmarshalJSON implements json.Unmarshaler. It never fails on well-formed
// JSON; values it cannot read become 0.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*a = 0
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(SafeInt(s))
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = Amount(truncFloat(f))
	}
	return nil
}

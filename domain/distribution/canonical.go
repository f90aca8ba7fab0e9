package distribution

import (
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// NullValue is the distinguished bucket for records where the selected
// field is absent (missing JSON key, non-object record, empty cell).
const NullValue = "null"

// Canonicalize converts a loosely-typed field value to the stable
// textual form used for grouping and display. Values compare equal in
// the distribution exactly when their canonical forms are equal.
func Canonicalize(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return NullValue
	case string:
		if t == "" {
			return NullValue
		}
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		// JSON numbers decode as float64; keep integral values free of
		// a trailing fraction so 3 and 3.0 land in the same bucket.
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	default:
		// Nested objects and arrays group by their compact encoding.
		b, err := json.Marshal(t)
		if err != nil {
			return NullValue
		}
		return string(b)
	}
}

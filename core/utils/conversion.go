package utils

import (
	"math"
	"strconv"
	"strings"
)

// ToInt32 converts a decoded cell value to int32. JSON cells arrive as
// float64 numbers or strings; anything else, and any value that is not an
// integer fitting into 32 bits, reports false.
func ToInt32(val any) (int32, bool) {
	switch v := val.(type) {
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return 0, false
		}
		return int32(v), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return 0, false
		}
		return int32(i), true
	default:
		return 0, false
	}
}

// Package safe provides helpers for numeric conversions with range checks.
package safe

import "fmt"

// Signed lists the signed integer kinds accepted by Uint64.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Uint64 converts a signed integer to uint64, rejecting negative values.
func Uint64[T Signed](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Package convert turns loosely typed values into debug strings and normalized element values.
package convert

import (
	"fmt"
	"strconv"
)

// Repr returns a debug representation of v. Strings are quoted, Stringers render themselves.
// Integers of every width, int32 included, render as numbers.
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

package api

import "bytes"
import "strings"

// Binarycmp comparator for byte-slice keys.
func Binarycmp(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Stringcmp comparator for string keys.
func Stringcmp(a, b string) int {
	return strings.Compare(a, b)
}

// Int64cmp comparator for integer keys.
func Int64cmp(a, b int64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

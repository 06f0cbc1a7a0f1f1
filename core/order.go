// SPDX-License-Identifier: MIT
//
// File: order.go
// Role: Natural ordering of vertex IDs shared by every deterministic iteration.
// Policy:
//   - Two IDs that both parse as base-10 integers compare numerically.
//   - An integer ID sorts before a non-integer ID.
//   - Otherwise plain byte-wise string comparison.
//   - Equal numeric values with different spellings ("7", "007") fall back to
//     string comparison so the order stays total.

package core

import (
	"sort"
	"strconv"
)

// CompareIDs returns -1, 0 or +1 comparing a and b in natural order.
// Complexity: O(len(a)+len(b)).
func CompareIDs(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		if ai < bi {
			return -1
		}
		if ai > bi {
			return 1
		}
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortIDs sorts ids in place in natural order and returns the same slice.
// Complexity: O(n log n).
func SortIDs(ids []string) []string {
	sort.SliceStable(ids, func(i, j int) bool { return CompareIDs(ids[i], ids[j]) < 0 })

	return ids
}

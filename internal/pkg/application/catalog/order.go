package catalog

import (
	"slices"
	"strings"
)

// orderBy sorts records by name, case insensitively. Only "asc" and "desc"
// are recognised; any other order leaves records as they are. Both
// directions are stable, so records with equal names keep their relative
// order.
func orderBy[H any](records []H, order string, name func(H) string) []H {
	ascending := func(a, b H) int {
		return strings.Compare(strings.ToLower(name(a)), strings.ToLower(name(b)))
	}

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "asc":
		slices.SortStableFunc(records, ascending)
	case "desc":
		slices.SortStableFunc(records, func(a, b H) int { return ascending(b, a) })
	}

	return records
}

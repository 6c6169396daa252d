// internal/utils/sort.go
package utils

import (
	"strings"
)

// OrderClause resolves client-supplied sort input against an allow-list of
// column references. The sort key is looked up in sortColumns and never
// interpolated directly; unknown keys silently fall back to the given
// column, and anything other than "asc"/"ASC" orders descending.
func OrderClause(sortColumns map[string]string, sort, order, fallback string) string {
	column, ok := sortColumns[sort]
	if !ok {
		column = fallback
	}

	direction := "DESC"
	if strings.EqualFold(order, "ASC") {
		direction = "ASC"
	}

	return column + " " + direction
}

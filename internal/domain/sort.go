package domain

import "fmt"

// SortKey identifies the field the view list is ordered by.
type SortKey int

const (
	SortTitle SortKey = iota
	SortYear
	SortRuntime
)

// String returns the display name for the sort key
func (k SortKey) String() string {
	switch k {
	case SortTitle:
		return "Title"
	case SortYear:
		return "Year"
	case SortRuntime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

// SortKeys returns all selectable sort keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortTitle, SortYear, SortRuntime}
}

// ParseSortKey maps a config string ("title", "year", "runtime") to a
// SortKey. Matching is exact and lowercase.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "title":
		return SortTitle, nil
	case "year":
		return SortYear, nil
	case "runtime":
		return SortRuntime, nil
	default:
		return SortTitle, fmt.Errorf("unknown sort key %q", s)
	}
}

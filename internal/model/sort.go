package model

// SortOrder selects how the entry list is ordered for display.
type SortOrder string

const (
	// SortNewest shows all entries, newest first. This is the default.
	SortNewest SortOrder = "newest"
	// SortOldest shows all entries, oldest first.
	SortOldest SortOrder = "oldest"
	// SortFavorites shows only favorited entries, newest first.
	SortFavorites SortOrder = "favorites"
)

// ParseSortOrder maps a string to a SortOrder.
// Unknown values fall back to SortNewest.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortOldest:
		return SortOldest
	case SortFavorites:
		return SortFavorites
	default:
		return SortNewest
	}
}

// Next cycles through the sort orders in display order.
func (o SortOrder) Next() SortOrder {
	switch o {
	case SortNewest:
		return SortOldest
	case SortOldest:
		return SortFavorites
	default:
		return SortNewest
	}
}

// Label returns the human-readable name for the sort order.
func (o SortOrder) Label() string {
	switch o {
	case SortOldest:
		return "Oldest"
	case SortFavorites:
		return "Favorites"
	default:
		return "Newest"
	}
}

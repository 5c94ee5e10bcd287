package account

import "fmt"

type SortKey string

const (
	SortPrice      SortKey = "price"
	SortFollowers  SortKey = "followers"
	SortEngagement SortKey = "engagement"
	SortCreatedAt  SortKey = "createdAt"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ParseSortKey maps a query value onto the closed set of sort keys.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortPrice, SortFollowers, SortEngagement, SortCreatedAt:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case Asc, Desc:
		return o, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Filters restricts and orders the browsable catalog. Zero-valued fields
// place no restriction on their dimension; set fields combine with AND.
type Filters struct {
	Platform     string
	Category     string
	MinFollowers *int
	MaxPrice     *float64

	// SortBy empty means insertion order. Order defaults to ascending.
	SortBy    SortKey
	SortOrder SortOrder
}

func (f Filters) match(a Account) bool {
	if f.Platform != "" && a.Platform != f.Platform {
		return false
	}
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if f.MinFollowers != nil && a.Followers < *f.MinFollowers {
		return false
	}
	if f.MaxPrice != nil && a.Price > *f.MaxPrice {
		return false
	}
	return true
}

// less compares two accounts under the requested sort key in ascending
// order. A missing engagement rate sorts as zero.
func (f Filters) less(a, b Account) bool {
	switch f.SortBy {
	case SortPrice:
		return a.Price < b.Price
	case SortFollowers:
		return a.Followers < b.Followers
	case SortEngagement:
		return engagement(a) < engagement(b)
	case SortCreatedAt:
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return false
}

func engagement(a Account) float64 {
	if a.Engagement == nil {
		return 0
	}
	return *a.Engagement
}

package account

import (
	"net/http/httptest"
	"testing"
)

func TestParseFiltersCoercion(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/accounts?platform=instagram&minFollowers=5000&maxPrice=99.5", nil)

	f, err := parseFilters(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Platform != "instagram" || f.Category != "" {
		t.Fatalf("unexpected string filters: %+v", f)
	}
	if f.MinFollowers == nil || *f.MinFollowers != 5000 {
		t.Fatalf("minFollowers not parsed: %+v", f.MinFollowers)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 99.5 {
		t.Fatalf("maxPrice not parsed: %+v", f.MaxPrice)
	}
}

func TestParseFiltersDropsUnparseableNumerics(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/accounts?minFollowers=abc&maxPrice=", nil)

	f, err := parseFilters(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MinFollowers != nil || f.MaxPrice != nil {
		t.Fatalf("unparseable numeric filters should be dropped: %+v", f)
	}
}

func TestParseFiltersRejectsUnknownSortKey(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/accounts?sortBy=sellerName", nil)
	if _, err := parseFilters(r); err == nil {
		t.Fatal("expected an error for an unknown sort key")
	}

	r = httptest.NewRequest("GET", "/api/accounts?sortBy=price&sortOrder=sideways", nil)
	if _, err := parseFilters(r); err == nil {
		t.Fatal("expected an error for an unknown sort order")
	}
}

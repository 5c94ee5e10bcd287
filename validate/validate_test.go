package validate

import (
	"testing"
)

type payload struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Rate  float64 `json:"rate" validate:"omitempty,gte=0,lte=5"`
}

func TestCheckReportsWireNames(t *testing.T) {
	err := Check(payload{Rate: 9})
	if err == nil {
		t.Fatal("expected an error for an empty payload")
	}

	fields, ok := Fields(err)
	if !ok {
		t.Fatalf("expected field errors, got %T", err)
	}

	for _, f := range []string{"name", "price", "rate"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("missing field error for %q: %v", f, fields)
		}
	}
}

func TestCheckValid(t *testing.T) {
	if err := Check(payload{Name: "x", Price: 10, Rate: 4.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

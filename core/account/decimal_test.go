package account

import (
	"encoding/json"
	"testing"
)

func TestDecimalUnmarshal(t *testing.T) {
	cases := []struct {
		in      string
		want    Decimal
		wantErr bool
	}{
		{in: `100`, want: 100},
		{in: `100.5`, want: 100.5},
		{in: `"2500.00"`, want: 2500},
		{in: `"3.2"`, want: 3.2},
		{in: `"abc"`, wantErr: true},
		{in: `""`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, c := range cases {
		var d Decimal
		err := json.Unmarshal([]byte(c.in), &d)
		if c.wantErr {
			if err == nil {
				t.Errorf("input %s: expected an error, got %v", c.in, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %s: unexpected error: %v", c.in, err)
			continue
		}
		if d != c.want {
			t.Errorf("input %s: expected %v, got %v", c.in, c.want, d)
		}
	}
}

func TestDecimalInPayload(t *testing.T) {
	// The storefront serializes decimal columns as strings; both forms
	// must decode.
	raw := `{"sellerId":1,"platform":"twitter","accountHandle":"@h","followers":5000,` +
		`"price":"100.00","engagement":"3.2","sellerRating":4.8,` +
		`"category":"technology","sellerName":"Test Seller"}`

	var na AccountNew
	if err := json.Unmarshal([]byte(raw), &na); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if na.Price != 100 {
		t.Fatalf("expected price 100, got %v", na.Price)
	}
	if na.Engagement == nil || *na.Engagement != 3.2 {
		t.Fatalf("expected engagement 3.2, got %v", na.Engagement)
	}
	if na.SellerRating == nil || *na.SellerRating != 4.8 {
		t.Fatalf("expected sellerRating 4.8, got %v", na.SellerRating)
	}
}

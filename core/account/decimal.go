package account

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Decimal is a float64 that also accepts the JSON string form ("2500.00")
// the storefront uses on the wire for decimal columns.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}

	if len(raw) >= 2 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid decimal value %s", data)
	}

	*d = Decimal(v)
	return nil
}

package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Product is one record from the remote catalog. The four fields below are
// the ones the assistant reasons about; anything else the API returns is
// kept in Extra and passed through untouched.
type Product struct {
	Name        string `mapstructure:"productName"`
	Description string `mapstructure:"description"`
	Category    string `mapstructure:"category"`
	Price       int64  `mapstructure:"price"` // integer cents

	Extra map[string]any `mapstructure:"-"`
}

// UnmarshalJSON decodes the known fields and collects every unrecognized
// key into Extra. Missing fields are left at their zero values rather than
// failing the decode.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         &md,
		Result:           p,
		WeaklyTypedInput: true, // JSON numbers arrive as float64
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid product record: %w", err)
	}

	if len(md.Unused) > 0 {
		p.Extra = make(map[string]any, len(md.Unused))
		for _, key := range md.Unused {
			p.Extra[key] = raw[key]
		}
	}
	return nil
}

// MarshalJSON re-emits the known fields under their wire names together
// with the passthrough extras.
func (p Product) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+4)
	for key, value := range p.Extra {
		out[key] = value
	}
	out["productName"] = p.Name
	out["description"] = p.Description
	out["category"] = p.Category
	out["price"] = p.Price
	return json.Marshal(out)
}

// searchText returns the lower-cased text the substring filter runs over:
// name, description and category joined with single spaces.
func (p Product) searchText() string {
	return strings.ToLower(strings.Join([]string{p.Name, p.Description, p.Category}, " "))
}

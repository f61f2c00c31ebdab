package catalog

import "encoding/json"

// Result is the outcome of one catalog fetch. Exactly one variant is
// populated per call: either Data, or Error (optionally with the raw body
// that failed to decode into the expected shape).
type Result struct {
	Data  []Product
	Error string
	Raw   json.RawMessage
}

// MarshalJSON emits exactly one variant. A successful fetch always carries
// a "data" key, even when the filtered list is empty.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Error != "" {
		return json.Marshal(struct {
			Error string          `json:"error"`
			Raw   json.RawMessage `json:"raw_response,omitempty"`
		}{Error: r.Error, Raw: r.Raw})
	}

	data := r.Data
	if data == nil {
		data = []Product{}
	}
	return json.Marshal(struct {
		Data []Product `json:"data"`
	}{Data: data})
}

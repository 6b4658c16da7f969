package growth

import (
	"bytes"
	"encoding/json"
)

// Response mirrors the payload returned by GET /growth.
type Response struct {
	Values Values `json:"Values"`
}

// Values wraps the item list.
type Values struct {
	Items []Item `json:"items"`
}

// Item is one product's growth figures: a "product" label plus year-keyed
// values. Numbers decode as json.Number so they survive a round trip.
type Item map[string]any

// UnmarshalJSON decodes numbers as json.Number instead of float64.
func (i *Item) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*i = raw
	return nil
}

// Product returns the item's product label, or "" when missing or not a string.
func (i Item) Product() string {
	s, _ := i["product"].(string)
	return s
}

// errorBody is the JSON error envelope the growth service returns on failure.
type errorBody struct {
	Error string `json:"error"`
}

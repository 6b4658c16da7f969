package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Reserved row field names. Every other field is a year value.
const (
	FieldID        = "id"
	FieldRowNumber = "rowNumber"
	FieldProduct   = "product"
)

// Row is one product's figures across a dynamic set of year columns.
type Row struct {
	ID        int
	RowNumber int // 1-based display ordinal; zero means absent
	Product   string
	// Values maps a year label to either a json.Number or a string.
	Values map[string]any
}

// Field returns the value stored under name, including the reserved fields.
func (r Row) Field(name string) (any, bool) {
	switch name {
	case FieldID:
		return r.ID, true
	case FieldRowNumber:
		if r.RowNumber == 0 {
			return nil, false
		}
		return r.RowNumber, true
	case FieldProduct:
		return r.Product, true
	}
	v, ok := r.Values[name]
	return v, ok
}

// Text renders a field for display; missing fields render as "".
func (r Row) Text(name string) string {
	v, ok := r.Field(name)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Number parses a field as a decimal. It reports false for text and missing values.
func (r Row) Number(name string) (decimal.Decimal, bool) {
	switch v := r.Values[name].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

// Years returns the row's year field names in sorted order.
func (r Row) Years() []string {
	return slices.Sorted(maps.Keys(r.Values))
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	dup := r
	dup.Values = maps.Clone(r.Values)
	return dup
}

// Equal reports whether both rows hold the same fields and values.
func (r Row) Equal(other Row) bool {
	if r.ID != other.ID || r.RowNumber != other.RowNumber || r.Product != other.Product {
		return false
	}
	return maps.EqualFunc(r.Values, other.Values, func(a, b any) bool { return a == b })
}

// With returns a copy of the row with field set to value. Reserved numeric
// fields cannot be set this way.
func (r Row) With(field string, value any) (Row, error) {
	dup := r.Clone()
	switch field {
	case FieldID, FieldRowNumber:
		return Row{}, fmt.Errorf("%w: %s", ErrReadOnlyField, field)
	case FieldProduct:
		dup.Product = fmt.Sprint(value)
		return dup, nil
	}
	if dup.Values == nil {
		dup.Values = make(map[string]any)
	}
	dup.Values[field] = normalizeValue(value)
	return dup, nil
}

// MarshalJSON writes the row as a flat object: id, rowNumber, product, then years.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	fmt.Fprintf(&buf, `"id":%d`, r.ID)
	if r.RowNumber != 0 {
		fmt.Fprintf(&buf, `,"rowNumber":%d`, r.RowNumber)
	}
	product, err := json.Marshal(r.Product)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"product":`)
	buf.Write(product)

	for _, year := range r.Years() {
		key, err := json.Marshal(year)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Values[year])
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", year, err)
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the flat object form written by MarshalJSON.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("row is null")
	}

	id, err := intField(raw[FieldID])
	if err != nil {
		return fmt.Errorf("row id: %w", err)
	}
	out := Row{ID: id}

	if v, ok := raw[FieldRowNumber]; ok && v != nil {
		n, err := intField(v)
		if err != nil {
			return fmt.Errorf("row %d rowNumber: %w", id, err)
		}
		out.RowNumber = n
	}
	if v, ok := raw[FieldProduct]; ok && v != nil {
		out.Product = fmt.Sprint(v)
	}
	for key, v := range raw {
		if key == FieldID || key == FieldRowNumber || key == FieldProduct || v == nil {
			continue
		}
		if out.Values == nil {
			out.Values = make(map[string]any)
		}
		out.Values[key] = normalizeValue(v)
	}
	*r = out
	return nil
}

// RowFromItem builds the row for the index-th item of a remote dataset.
// The id is the zero-based position and rowNumber is position+1; id and
// rowNumber keys carried by the item are ignored.
func RowFromItem(index int, item map[string]any) Row {
	row := Row{ID: index, RowNumber: index + 1}
	for key, v := range item {
		switch key {
		case FieldID, FieldRowNumber:
			continue
		case FieldProduct:
			if v != nil {
				row.Product = fmt.Sprint(v)
			}
			continue
		}
		if v == nil {
			continue
		}
		if row.Values == nil {
			row.Values = make(map[string]any)
		}
		row.Values[key] = normalizeValue(v)
	}
	return row
}

// ParseValue turns user input into a cell value: numeric text becomes a
// json.Number, anything else stays a string.
func ParseValue(text string) any {
	trimmed := strings.TrimSpace(text)
	if d, err := decimal.NewFromString(trimmed); err == nil && trimmed != "" {
		return json.Number(d.String())
	}
	return text
}

// normalizeValue narrows a decoded JSON value to json.Number or string.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case json.Number, string:
		return val
	case int:
		return json.Number(strconv.Itoa(val))
	case int64:
		return json.Number(strconv.FormatInt(val, 10))
	case float64:
		return json.Number(strconv.FormatFloat(val, 'f', -1, 64))
	case decimal.Decimal:
		return json.Number(val.String())
	case bool:
		return strconv.FormatBool(val)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func intField(v any) (int, error) {
	switch val := v.(type) {
	case json.Number:
		n, err := strconv.Atoi(val.String())
		if err != nil {
			return 0, fmt.Errorf("not an integer: %s", val)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", val)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("missing")
	}
	return 0, fmt.Errorf("unexpected type %T", v)
}

package domain

import (
	"encoding/json"
	"strconv"
)

// RequiredPropertyFields must all be present when a property is created.
// Bulk-loaded records are taken as-is.
var RequiredPropertyFields = []string{
	"title",
	"location",
	"total_area",
	"total_units",
	"bedrooms",
	"bathrooms",
	"price",
}

// Property is a map-backed record: listings carry caller-defined free-form
// fields that must survive storage and shallow-merge updates, so a fixed
// struct would silently drop unknown keys. The store guarantees "id" is an
// int64 and "owner" an Owner after insert or bulk load.
type Property map[string]any

func (p Property) ID() int64 {
	switch v := p["id"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

func (p Property) SetID(id int64) {
	p["id"] = id
}

func (p Property) Title() string {
	return stringField(p, "title")
}

func (p Property) Location() string {
	return stringField(p, "location")
}

func (p Property) Owner() (Owner, bool) {
	v, ok := p["owner"]
	if !ok {
		return Owner{}, false
	}
	return OwnerFromValue(v)
}

func (p Property) SetOwner(o Owner) {
	p["owner"] = o
}

// PriceValue coerces the price field to a number, defaulting to 0 when the
// field is absent or non-numeric.
func (p Property) PriceValue() float64 {
	switch v := p["price"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

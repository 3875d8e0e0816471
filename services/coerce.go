package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/LovationAdmin/calc-api/models"
)

// MaxMonths is the longest horizon that fits an int on every platform.
const MaxMonths = math.MaxInt32

// Payload is a decoded flat JSON request object. Calculators never read it
// directly; they go through the typed accessors below, which coerce bad values
// to documented defaults instead of failing.
type Payload map[string]any

// DecodePayload tolerates empty bodies, invalid JSON and non-object JSON by
// returning an empty payload.
func DecodePayload(body []byte) Payload {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Payload{}
	}

	var p Payload
	if err := json.Unmarshal(body, &p); err != nil || p == nil {
		return Payload{}
	}
	return p
}

// Number returns the field as a float64. Numeric strings are parsed, booleans
// map to 1/0, everything else (including NaN and infinities) becomes 0.
func (p Payload) Number(key string) float64 {
	return toNumber(p[key])
}

// Months returns a whole number of months in [1, MaxMonths], defaulting to 1.
func (p Payload) Months(key string) int {
	if _, ok := p[key]; !ok {
		return 1
	}
	n := math.Floor(p.Number(key))
	if n < 1 {
		return 1
	}
	if n > MaxMonths {
		return MaxMonths
	}
	return int(n)
}

// String returns def when the key is absent and "" when it holds a non-string.
func (p Payload) String(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// Items reads an ordered list of {name, cost} objects. Entries that are not
// objects are skipped; a missing cost counts as 0.
func (p Payload) Items(key string) []models.SpendItem {
	raw, ok := p[key].([]any)
	if !ok {
		return []models.SpendItem{}
	}

	items := make([]models.SpendItem, 0, len(raw))
	for _, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := Payload(obj)
		items = append(items, models.SpendItem{
			Name: item.String("name", ""),
			Cost: item.Number("cost"),
		})
	}
	return items
}

func toNumber(v any) float64 {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if val {
			return 1
		}
		return 0
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

package services

import "testing"

func TestDecodePayload_Tolerant(t *testing.T) {
	bodies := []string{"", "   ", "not json", "[1,2,3]", "42", "null", `{"a":`}
	for _, body := range bodies {
		p := DecodePayload([]byte(body))
		if p == nil {
			t.Fatalf("body %q: expected empty payload, got nil", body)
		}
		if len(p) != 0 {
			t.Errorf("body %q: expected empty payload, got %v", body, p)
		}
	}
}

func TestPayload_Number(t *testing.T) {
	p := DecodePayload([]byte(`{
		"num": 12.5,
		"str": " 7.25 ",
		"bad": "abc",
		"yes": true,
		"no": false,
		"nil": null,
		"obj": {"x": 1},
		"nan": "NaN",
		"inf": "Inf"
	}`))

	tests := []struct {
		key  string
		want float64
	}{
		{"num", 12.5},
		{"str", 7.25},
		{"bad", 0},
		{"yes", 1},
		{"no", 0},
		{"nil", 0},
		{"obj", 0},
		{"nan", 0},
		{"inf", 0},
		{"missing", 0},
	}

	for _, tt := range tests {
		if got := p.Number(tt.key); got != tt.want {
			t.Errorf("Number(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestPayload_Months(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{`{}`, 1},
		{`{"months": 12}`, 12},
		{`{"months": 12.9}`, 12},
		{`{"months": "6"}`, 6},
		{`{"months": 0}`, 1},
		{`{"months": -4}`, 1},
		{`{"months": "abc"}`, 1},
		{`{"months": 2400}`, 2400},
		{`{"months": 1e12}`, MaxMonths},
	}

	for _, tt := range tests {
		if got := DecodePayload([]byte(tt.body)).Months("months"); got != tt.want {
			t.Errorf("%s: Months() = %d, want %d", tt.body, got, tt.want)
		}
	}
}

func TestPayload_String(t *testing.T) {
	p := DecodePayload([]byte(`{"s": "Rent", "n": 5, "z": null}`))

	if got := p.String("s", "Food"); got != "Rent" {
		t.Errorf("expected Rent, got %q", got)
	}
	if got := p.String("missing", "Food"); got != "Food" {
		t.Errorf("expected default Food, got %q", got)
	}
	if got := p.String("z", "Food"); got != "Food" {
		t.Errorf("expected default for null, got %q", got)
	}
	if got := p.String("n", "Food"); got != "" {
		t.Errorf("expected empty string for non-string, got %q", got)
	}
}

func TestPayload_Items(t *testing.T) {
	p := DecodePayload([]byte(`{
		"items": [
			{"name": "groceries", "cost": 50},
			{"name": "snacks"},
			"junk",
			{"cost": "10.5"}
		],
		"notList": {"cost": 3}
	}`))

	items := p.Items("items")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Name != "groceries" || items[0].Cost != 50 {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Cost != 0 {
		t.Errorf("missing cost should be 0, got %v", items[1].Cost)
	}
	if items[2].Cost != 10.5 {
		t.Errorf("expected 10.5, got %v", items[2].Cost)
	}

	if got := p.Items("notList"); len(got) != 0 {
		t.Errorf("expected no items for non-list, got %v", got)
	}
	if got := p.Items("missing"); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

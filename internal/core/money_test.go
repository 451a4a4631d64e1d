package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"0", 0, true},
		{".5", 50, true},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{".", 0, false},
		{"", 0, false},
		{"1.٣", 0, false},
		{"1.٣٣", 0, false},
		{"١٢", 0, false},
		{"1.2a", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := map[int64]string{
		0:     "0.00",
		5:     "0.05",
		99500: "995.00",
		-1205: "-12.05",
	}
	for cents, want := range cases {
		if got := (Money{Cents: cents}).String(); got != want {
			t.Fatalf("Money{%d}.String() = %q, want %q", cents, got, want)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	cases := []struct {
		cents int64
		json  string
	}{
		{0, "0"},
		{500, "5"},
		{1250, "12.5"},
		{1234, "12.34"},
		{-50, "-0.5"},
	}
	for _, tc := range cases {
		b, err := json.Marshal(Money{Cents: tc.cents})
		if err != nil || string(b) != tc.json {
			t.Fatalf("marshal %d: got %s (err=%v), want %s", tc.cents, b, err, tc.json)
		}
		var m Money
		if err := json.Unmarshal(b, &m); err != nil || m.Cents != tc.cents {
			t.Fatalf("unmarshal %s: got %d (err=%v)", b, m.Cents, err)
		}
	}

	var m Money
	if err := json.Unmarshal([]byte(`"7,5"`), &m); err != nil || m.Cents != 750 {
		t.Fatalf("string amount: got %d (err=%v)", m.Cents, err)
	}
	if err := json.Unmarshal([]byte(`true`), &m); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
	if err := json.Unmarshal([]byte(`"1.٣"`), &m); err == nil {
		t.Fatalf("expected error for non-ASCII digits, got %d", m.Cents)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	budget := Money{Cents: 100000}
	spent := Money{Cents: 500}.Add(Money{Cents: 1000})
	if got := budget.Sub(spent); got.Cents != 98500 {
		t.Fatalf("expected 98500, got %d", got.Cents)
	}
	if got := spent.Sub(budget); got.Cents != -98500 {
		t.Fatalf("expected -98500, got %d", got.Cents)
	}
}
